package models

import (
	"time"

	"github.com/lib/pq"
)

// AlertFrequency controls how often matches are sent to a subscriber.
type AlertFrequency string

// AlertDaily is reserved for a digest job; subscriptions cannot select it and the dispatcher
// only reads AlertInstant rows.
const (
	AlertInstant AlertFrequency = "instant"
	AlertDaily   AlertFrequency = "daily"
)

// AlertPreference is the single alert subscription of a user.
type AlertPreference struct {
	UserID         string         `db:"user_id" json:"user_id"`
	WhatsAppNumber string         `db:"whatsapp_number" json:"whatsapp_number"`
	Enabled        bool           `db:"enabled" json:"enabled"`
	Frequency      AlertFrequency `db:"frequency" json:"frequency"`
	Categories     pq.StringArray `db:"categories" json:"categories"`
	States         pq.StringArray `db:"states" json:"states"`
	Keywords       pq.StringArray `db:"keywords" json:"keywords"`
	MinValue       *int64         `db:"min_value" json:"min_value,omitempty"`
	MaxValue       *int64         `db:"max_value" json:"max_value,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// AlertMatch is the message handed to the outbound exchange for one subscriber and tender.
type AlertMatch struct {
	UserID         string    `json:"user_id"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	TenderID       string    `json:"tender_id"`
	Title          string    `json:"title"`
	ReferenceNo    string    `json:"reference_no"`
	Authority      string    `json:"authority"`
	State          string    `json:"state"`
	TenderValue    string    `json:"tender_value"`
	ClosesAt       time.Time `json:"closes_at"`
	MatchedAt      time.Time `json:"matched_at"`
}
