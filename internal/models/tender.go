package models

import "time"

// TenderStatus is the publication state of a tender.
type TenderStatus string

const (
	TenderStatusActive TenderStatus = "Active"
	TenderStatusDraft  TenderStatus = "Draft"
)

// Tender is a procurement notice as stored in the tenders table.
//
// BidEndTS is the canonical closing instant and the only field used to classify a tender as
// active, archived, latest or closing soon. BidSubmissionEnd and TenderValue are display strings.
type Tender struct {
	ID                 string       `db:"id" json:"id"`
	Title              string       `db:"title" json:"title"`
	Description        string       `db:"description" json:"description"`
	Authority          string       `db:"authority" json:"authority"`
	OrganisationChain  string       `db:"organisation_chain" json:"organisation_chain"`
	Location           string       `db:"location" json:"location"`
	State              string       `db:"state" json:"state"`
	Category           string       `db:"tender_category" json:"tender_category"`
	TenderType         string       `db:"tender_type" json:"tender_type"`
	TenderValue        string       `db:"tender_value" json:"tender_value"`
	TenderValueNumeric *int64       `db:"tender_value_numeric" json:"tender_value_numeric,omitempty"`
	PublishedDate      *time.Time   `db:"published_date" json:"published_date,omitempty"`
	BidSubmissionEnd   string       `db:"bid_submission_end" json:"bid_submission_end"`
	BidEndTS           *time.Time   `db:"bid_end_ts" json:"bid_end_ts,omitempty"`
	ReferenceNo        string       `db:"reference_no" json:"reference_no"`
	Status             TenderStatus `db:"status" json:"status"`
	CreatedBy          *string      `db:"created_by" json:"created_by,omitempty"`
	CreatedAt          time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether the tender was posted by the given user.
func (t *Tender) OwnedBy(userID string) bool {
	return t != nil && t.CreatedBy != nil && userID != "" && *t.CreatedBy == userID
}

// IsOpen reports whether bids are still accepted at the given instant.
func (t *Tender) IsOpen(now time.Time) bool {
	return t != nil && t.BidEndTS != nil && t.BidEndTS.After(now)
}
