package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

const alertColumns = `user_id, whatsapp_number, enabled, frequency, categories, states, keywords, min_value, max_value, created_at, updated_at`

// AlertRepository persists alert subscriptions.
type AlertRepository struct {
	db *sqlx.DB
}

// NewAlertRepository constructs an AlertRepository.
func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Get returns the preference of a user or sql.ErrNoRows.
func (r *AlertRepository) Get(ctx context.Context, userID string) (*models.AlertPreference, error) {
	var pref models.AlertPreference
	if err := r.db.GetContext(ctx, &pref, "SELECT "+alertColumns+" FROM alert_preferences WHERE user_id = $1", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("get alert preference: %w", err)
	}
	return &pref, nil
}

// Upsert creates or replaces the preference of a user.
func (r *AlertRepository) Upsert(ctx context.Context, pref *models.AlertPreference) error {
	now := time.Now().UTC()
	if pref.CreatedAt.IsZero() {
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	for _, list := range []*pq.StringArray{&pref.Categories, &pref.States, &pref.Keywords} {
		if *list == nil {
			*list = pq.StringArray{}
		}
	}

	const query = `INSERT INTO alert_preferences (user_id, whatsapp_number, enabled, frequency, categories, states, keywords, min_value, max_value, created_at, updated_at)
        VALUES (:user_id, :whatsapp_number, :enabled, :frequency, :categories, :states, :keywords, :min_value, :max_value, :created_at, :updated_at)
        ON CONFLICT (user_id) DO UPDATE SET whatsapp_number = EXCLUDED.whatsapp_number, enabled = EXCLUDED.enabled, frequency = EXCLUDED.frequency,
        categories = EXCLUDED.categories, states = EXCLUDED.states, keywords = EXCLUDED.keywords, min_value = EXCLUDED.min_value,
        max_value = EXCLUDED.max_value, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, pref); err != nil {
		return fmt.Errorf("upsert alert preference: %w", err)
	}
	return nil
}

// Delete removes the preference of a user.
func (r *AlertRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alert_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete alert preference: %w", err)
	}
	return expectAffected(res)
}

// ListEnabled returns every enabled preference with the given frequency.
func (r *AlertRepository) ListEnabled(ctx context.Context, frequency models.AlertFrequency) ([]models.AlertPreference, error) {
	var prefs []models.AlertPreference
	query := "SELECT " + alertColumns + " FROM alert_preferences WHERE enabled = TRUE AND frequency = $1 ORDER BY user_id"
	if err := r.db.SelectContext(ctx, &prefs, query, frequency); err != nil {
		return nil, fmt.Errorf("list alert preferences: %w", err)
	}
	return prefs, nil
}
