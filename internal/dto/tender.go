package dto

import "time"

// TenderCard is the presentation shape of a tender in listings.
type TenderCard struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Authority        string     `json:"authority"`
	Location         string     `json:"location"`
	State            string     `json:"state"`
	Category         string     `json:"category"`
	TenderType       string     `json:"tenderType"`
	TenderValue      string     `json:"tenderValue"`
	ValueNumeric     *int64     `json:"valueNumeric,omitempty"`
	PublishedDate    string     `json:"publishedDate,omitempty"`
	BidSubmissionEnd string     `json:"bidSubmissionEnd"`
	BidEndTS         *time.Time `json:"bidEndTs,omitempty"`
	ReferenceNo      string     `json:"referenceNo"`
	Status           string     `json:"status"`
	DaysLeft         int        `json:"daysLeft"`
	ClosingSoon      bool       `json:"closingSoon"`
	Closed           bool       `json:"closed"`
}

// ListingResult is the page returned by every listing route. Error is set when the tenders could
// not be loaded, in which case Items is empty.
type ListingResult struct {
	Items      []TenderCard `json:"items"`
	TotalCount int          `json:"totalCount"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
	Error      string       `json:"error,omitempty"`
}

// UpsertTenderRequest is the payload for creating or replacing a posted tender.
type UpsertTenderRequest struct {
	Title              string     `json:"title" validate:"required,max=300"`
	Description        string     `json:"description" validate:"max=10000"`
	Authority          string     `json:"authority" validate:"required,max=300"`
	OrganisationChain  string     `json:"organisationChain" validate:"max=500"`
	Location           string     `json:"location" validate:"max=200"`
	State              string     `json:"state" validate:"required"`
	Category           string     `json:"category" validate:"required"`
	TenderType         string     `json:"tenderType" validate:"omitempty"`
	TenderValue        string     `json:"tenderValue" validate:"max=100"`
	TenderValueNumeric *int64     `json:"tenderValueNumeric" validate:"omitempty,gte=0"`
	PublishedDate      string     `json:"publishedDate" validate:"omitempty,datetime=2006-01-02"`
	BidSubmissionEnd   string     `json:"bidSubmissionEnd" validate:"max=100"`
	BidEndTS           *time.Time `json:"bidEndTs"`
	ReferenceNo        string     `json:"referenceNo" validate:"max=100"`
	Publish            bool       `json:"publish"`
}

// TenderDetail is a single tender as shown on its own page.
type TenderDetail struct {
	TenderCard
	Description       string `json:"description"`
	OrganisationChain string `json:"organisationChain"`
	Draft             bool   `json:"draft"`
	Owned             bool   `json:"owned"`
}
