package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/catalog"
	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
)

type alertPreferenceRepository interface {
	Get(ctx context.Context, userID string) (*models.AlertPreference, error)
	Upsert(ctx context.Context, pref *models.AlertPreference) error
	Delete(ctx context.Context, userID string) error
}

// AlertService manages the alert subscription of each user.
type AlertService struct {
	repo      alertPreferenceRepository
	catalog   *catalog.Catalog
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAlertService constructs an AlertService.
func NewAlertService(repo alertPreferenceRepository, cat *catalog.Catalog, validate *validator.Validate, logger *zap.Logger) *AlertService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cat == nil {
		cat = catalog.MustDefault()
	}
	return &AlertService{repo: repo, catalog: cat, validator: validate, logger: logger}
}

// Get returns the subscription of a user.
func (s *AlertService) Get(ctx context.Context, userID string) (*models.AlertPreference, error) {
	pref, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no alert subscription")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load alert subscription")
	}
	return pref, nil
}

// Upsert replaces the subscription of a user. Enabled defaults to true and frequency to instant.
func (s *AlertService) Upsert(ctx context.Context, userID string, req dto.AlertPreferenceRequest) (*models.AlertPreference, error) {
	req.WhatsAppNumber = strings.TrimSpace(req.WhatsAppNumber)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Invalid(err, "invalid alert subscription")
	}
	if req.MinValue != nil && req.MaxValue != nil && *req.MinValue > *req.MaxValue {
		return nil, appErrors.Clone(appErrors.ErrValidation, "minValue must not exceed maxValue")
	}

	categories, err := canonicalList(req.Categories, s.catalog.CanonicalCategory, "category")
	if err != nil {
		return nil, err
	}
	states, err := canonicalList(req.States, s.catalog.CanonicalState, "state")
	if err != nil {
		return nil, err
	}

	pref := &models.AlertPreference{
		UserID:         userID,
		WhatsAppNumber: req.WhatsAppNumber,
		Enabled:        req.Enabled == nil || *req.Enabled,
		Frequency:      req.Frequency,
		Categories:     categories,
		States:         states,
		Keywords:       keywordList(req.Keywords),
		MinValue:       req.MinValue,
		MaxValue:       req.MaxValue,
	}
	if pref.Frequency == "" {
		pref.Frequency = models.AlertInstant
	}

	if err := s.repo.Upsert(ctx, pref); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save alert subscription")
	}
	s.logger.Info("alert subscription saved",
		zap.String("user_id", userID),
		zap.Bool("enabled", pref.Enabled),
		zap.String("frequency", string(pref.Frequency)))
	return pref, nil
}

// Delete removes the subscription of a user.
func (s *AlertService) Delete(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "no alert subscription")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete alert subscription")
	}
	return nil
}

func canonicalList(values []string, canonical func(string) (string, bool), kind string) (pq.StringArray, error) {
	out := make(pq.StringArray, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		name, ok := canonical(v)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown "+kind+": "+v)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

func keywordList(values []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		k := strings.ToLower(v)
		if v == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
