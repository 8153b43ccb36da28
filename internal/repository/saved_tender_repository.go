package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

// SavedTenderRepository persists user bookmarks.
type SavedTenderRepository struct {
	db *sqlx.DB
}

// NewSavedTenderRepository constructs a SavedTenderRepository.
func NewSavedTenderRepository(db *sqlx.DB) *SavedTenderRepository {
	return &SavedTenderRepository{db: db}
}

// Save bookmarks a tender. Saving twice keeps the original timestamp.
func (r *SavedTenderRepository) Save(ctx context.Context, userID, tenderID string, at time.Time) error {
	const query = `INSERT INTO saved_tenders (user_id, tender_id, saved_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, tender_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID, tenderID, at); err != nil {
		return fmt.Errorf("save tender: %w", err)
	}
	return nil
}

// Remove deletes a bookmark if present.
func (r *SavedTenderRepository) Remove(ctx context.Context, userID, tenderID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_tenders WHERE user_id = $1 AND tender_id = $2`, userID, tenderID); err != nil {
		return fmt.Errorf("remove saved tender: %w", err)
	}
	return nil
}

// Exists reports whether the user saved the tender.
func (r *SavedTenderRepository) Exists(ctx context.Context, userID, tenderID string) (bool, error) {
	var exists bool
	const query = `SELECT EXISTS (SELECT 1 FROM saved_tenders WHERE user_id = $1 AND tender_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, userID, tenderID); err != nil {
		return false, fmt.Errorf("check saved tender: %w", err)
	}
	return exists, nil
}

// List returns the saved tenders of a user, most recently saved first. Drafts of other users
// that were unpublished after saving are hidden.
func (r *SavedTenderRepository) List(ctx context.Context, userID string, page int) ([]models.Tender, int, error) {
	if page < 1 {
		page = 1
	}
	columns := prefixColumns("t.", tenderColumns)
	const from = `FROM saved_tenders s JOIN tenders t ON t.id = s.tender_id
        WHERE s.user_id = $1 AND (t.status = $2 OR t.created_by = $1)`

	tenders := []models.Tender{}
	if offset, ok := models.PageOffset(page); ok {
		query := fmt.Sprintf("SELECT %s %s ORDER BY s.saved_at DESC, t.id ASC LIMIT %d OFFSET %d",
			columns, from, models.ListingPageSize, offset)
		if err := r.db.SelectContext(ctx, &tenders, query, userID, models.TenderStatusActive); err != nil {
			return nil, 0, fmt.Errorf("list saved tenders: %w", err)
		}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+from, userID, models.TenderStatusActive); err != nil {
		return nil, 0, fmt.Errorf("count saved tenders: %w", err)
	}
	return tenders, total, nil
}

func prefixColumns(prefix, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = prefix + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
