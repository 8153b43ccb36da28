package models

import "time"

// SavedTender links a user to a tender they bookmarked.
type SavedTender struct {
	UserID   string    `db:"user_id" json:"user_id"`
	TenderID string    `db:"tender_id" json:"tender_id"`
	SavedAt  time.Time `db:"saved_at" json:"saved_at"`
}
