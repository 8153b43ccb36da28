package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
)

type savedTenderRepository interface {
	Save(ctx context.Context, userID, tenderID string, at time.Time) error
	Remove(ctx context.Context, userID, tenderID string) error
	Exists(ctx context.Context, userID, tenderID string) (bool, error)
	List(ctx context.Context, userID string, page int) ([]models.Tender, int, error)
}

type tenderFinder interface {
	FindByID(ctx context.Context, id string) (*models.Tender, error)
}

// SavedTenderService manages user bookmarks.
type SavedTenderService struct {
	repo    savedTenderRepository
	tenders tenderFinder
	logger  *zap.Logger
	now     func() time.Time
}

// NewSavedTenderService constructs a SavedTenderService.
func NewSavedTenderService(repo savedTenderRepository, tenders tenderFinder, logger *zap.Logger) *SavedTenderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavedTenderService{repo: repo, tenders: tenders, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Save bookmarks a tender visible to the user. Saving twice is a no-op.
func (s *SavedTenderService) Save(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error) {
	tender, err := s.tenders.FindByID(ctx, tenderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tender")
	}
	if tender.Status != models.TenderStatusActive && !tender.OwnedBy(userID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
	}

	if err := s.repo.Save(ctx, userID, tenderID, s.now()); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save tender")
	}
	return &dto.SavedStatus{TenderID: tenderID, Saved: true}, nil
}

// Remove drops a bookmark. Removing an absent bookmark is a no-op.
func (s *SavedTenderService) Remove(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error) {
	if err := s.repo.Remove(ctx, userID, tenderID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove saved tender")
	}
	return &dto.SavedStatus{TenderID: tenderID, Saved: false}, nil
}

// Status reports whether the user saved the tender.
func (s *SavedTenderService) Status(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error) {
	saved, err := s.repo.Exists(ctx, userID, tenderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check saved tender")
	}
	return &dto.SavedStatus{TenderID: tenderID, Saved: saved}, nil
}

// List returns one page of saved tenders as listing cards.
func (s *SavedTenderService) List(ctx context.Context, userID string, page int) (*dto.ListingResult, error) {
	if page < 1 {
		page = 1
	}
	tenders, total, err := s.repo.List(ctx, userID, page)
	if err != nil {
		s.logger.Error("saved tenders listing failed", zap.String("user_id", userID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list saved tenders")
	}
	return &dto.ListingResult{
		Items:      toCards(tenders, s.now()),
		TotalCount: total,
		Page:       page,
		PageSize:   models.ListingPageSize,
		TotalPages: models.TotalPages(total),
	}, nil
}
