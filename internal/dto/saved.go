package dto

// SavedStatus reports whether the current user bookmarked a tender.
type SavedStatus struct {
	TenderID string `json:"tenderId"`
	Saved    bool   `json:"saved"`
}
