package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/catalog"
	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
)

type tenderStore interface {
	FindByID(ctx context.Context, id string) (*models.Tender, error)
	ListByCreator(ctx context.Context, userID string, page int) ([]models.Tender, int, error)
	Create(ctx context.Context, tender *models.Tender) error
	Update(ctx context.Context, tender *models.Tender) error
	Delete(ctx context.Context, id string) error
}

type auditWriter interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type listingInvalidator interface {
	InvalidateListings(ctx context.Context)
}

// PublishNotifier is told about every tender that becomes Active.
type PublishNotifier interface {
	NotifyPublished(ctx context.Context, tenderID string)
}

// Actor identifies the caller of a write.
type Actor struct {
	UserID    string
	Role      models.UserRole
	IP        string
	UserAgent string
}

func (a Actor) canManage(t *models.Tender) bool {
	return a.Role == models.RoleAdmin || t.OwnedBy(a.UserID)
}

// TenderService manages tenders posted by marketplace users.
type TenderService struct {
	repo      tenderStore
	audit     auditWriter
	listings  listingInvalidator
	notifier  PublishNotifier
	catalog   *catalog.Catalog
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTenderService constructs a TenderService. audit, listings and notifier may be nil.
func NewTenderService(repo tenderStore, audit auditWriter, listings listingInvalidator, notifier PublishNotifier, cat *catalog.Catalog, validate *validator.Validate, logger *zap.Logger) *TenderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cat == nil {
		cat = catalog.MustDefault()
	}
	return &TenderService{
		repo:      repo,
		audit:     audit,
		listings:  listings,
		notifier:  notifier,
		catalog:   cat,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get returns a tender. Drafts are only visible to their author and to admins.
func (s *TenderService) Get(ctx context.Context, id string, actor Actor) (*dto.TenderDetail, error) {
	tender, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if tender.Status != models.TenderStatusActive && !actor.canManage(tender) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
	}
	return s.detail(tender, actor), nil
}

// ListMine returns one page of the caller's postings, drafts included.
func (s *TenderService) ListMine(ctx context.Context, actor Actor, page int) (*dto.ListingResult, error) {
	if page < 1 {
		page = 1
	}
	tenders, total, err := s.repo.ListByCreator(ctx, actor.UserID, page)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list your tenders")
	}
	return &dto.ListingResult{
		Items:      toCards(tenders, s.now()),
		TotalCount: total,
		Page:       page,
		PageSize:   models.ListingPageSize,
		TotalPages: models.TotalPages(total),
	}, nil
}

// Create stores a new tender as a draft, or publishes it straight away when req.Publish is set.
func (s *TenderService) Create(ctx context.Context, req dto.UpsertTenderRequest, actor Actor) (*dto.TenderDetail, error) {
	tender := &models.Tender{Status: models.TenderStatusDraft}
	if actor.UserID != "" {
		creator := actor.UserID
		tender.CreatedBy = &creator
	}
	if err := s.apply(tender, req); err != nil {
		return nil, err
	}
	if req.Publish {
		if err := s.publishable(tender); err != nil {
			return nil, err
		}
		s.markActive(tender)
	}

	if err := s.repo.Create(ctx, tender); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tender")
	}

	action := models.AuditActionTenderCreate
	if tender.Status == models.TenderStatusActive {
		action = models.AuditActionTenderPublish
	}
	s.record(ctx, actor, action, tender.ID, nil, tender)
	s.afterWrite(ctx, tender, req.Publish)
	return s.detail(tender, actor), nil
}

// Update replaces the editable fields of a tender the caller manages. Setting req.Publish on a
// draft publishes it.
func (s *TenderService) Update(ctx context.Context, id string, req dto.UpsertTenderRequest, actor Actor) (*dto.TenderDetail, error) {
	tender, err := s.managed(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	before := *tender

	if err := s.apply(tender, req); err != nil {
		return nil, err
	}
	publishing := req.Publish && tender.Status != models.TenderStatusActive
	if publishing || tender.Status == models.TenderStatusActive {
		if err := s.publishable(tender); err != nil {
			return nil, err
		}
	}
	if publishing {
		s.markActive(tender)
	}

	if err := s.repo.Update(ctx, tender); err != nil {
		return nil, s.writeError(err, "failed to update tender")
	}

	action := models.AuditActionTenderUpdate
	if publishing {
		action = models.AuditActionTenderPublish
	}
	s.record(ctx, actor, action, tender.ID, &before, tender)
	s.afterWrite(ctx, tender, publishing)
	return s.detail(tender, actor), nil
}

// Publish makes a draft visible in the public listings. Publishing an Active tender is a no-op.
func (s *TenderService) Publish(ctx context.Context, id string, actor Actor) (*dto.TenderDetail, error) {
	tender, err := s.managed(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if tender.Status == models.TenderStatusActive {
		return s.detail(tender, actor), nil
	}
	if err := s.publishable(tender); err != nil {
		return nil, err
	}

	before := *tender
	s.markActive(tender)
	if err := s.repo.Update(ctx, tender); err != nil {
		return nil, s.writeError(err, "failed to publish tender")
	}

	s.record(ctx, actor, models.AuditActionTenderPublish, tender.ID, &before, tender)
	s.afterWrite(ctx, tender, true)
	return s.detail(tender, actor), nil
}

// Delete removes a tender the caller manages.
func (s *TenderService) Delete(ctx context.Context, id string, actor Actor) error {
	tender, err := s.managed(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.writeError(err, "failed to delete tender")
	}
	s.record(ctx, actor, models.AuditActionTenderDelete, id, tender, nil)
	s.afterWrite(ctx, tender, false)
	return nil
}

func (s *TenderService) find(ctx context.Context, id string) (*models.Tender, error) {
	tender, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tender")
	}
	return tender, nil
}

func (s *TenderService) managed(ctx context.Context, id string, actor Actor) (*models.Tender, error) {
	tender, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canManage(tender) {
		if tender.Status != models.TenderStatusActive {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the author can modify this tender")
	}
	return tender, nil
}

// apply validates req and copies it onto tender, canonicalising catalog values and deriving the
// display strings that were left blank.
func (s *TenderService) apply(tender *models.Tender, req dto.UpsertTenderRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Authority = strings.TrimSpace(req.Authority)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Invalid(err, "invalid tender payload")
	}

	state, ok := s.catalog.CanonicalState(req.State)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "unknown state: "+req.State)
	}
	category, ok := s.catalog.CanonicalCategory(req.Category)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "unknown category: "+req.Category)
	}
	tenderType := ""
	if req.TenderType != "" {
		if tenderType, ok = s.catalog.CanonicalTenderType(req.TenderType); !ok {
			return appErrors.Clone(appErrors.ErrValidation, "unknown tender type: "+req.TenderType)
		}
	}

	var published *time.Time
	if req.PublishedDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.PublishedDate, models.IST)
		if err != nil {
			return appErrors.Invalid(err, "invalid published date")
		}
		published = &d
	}

	tender.Title = req.Title
	tender.Description = strings.TrimSpace(req.Description)
	tender.Authority = req.Authority
	tender.OrganisationChain = strings.TrimSpace(req.OrganisationChain)
	tender.Location = strings.TrimSpace(req.Location)
	tender.State = state
	tender.Category = category
	tender.TenderType = tenderType
	tender.TenderValueNumeric = req.TenderValueNumeric
	tender.TenderValue = strings.TrimSpace(req.TenderValue)
	if tender.TenderValue == "" && req.TenderValueNumeric != nil {
		tender.TenderValue = FormatINR(*req.TenderValueNumeric)
	}
	tender.PublishedDate = published
	tender.ReferenceNo = strings.TrimSpace(req.ReferenceNo)
	tender.BidEndTS = nil
	tender.BidSubmissionEnd = strings.TrimSpace(req.BidSubmissionEnd)
	if req.BidEndTS != nil {
		end := req.BidEndTS.UTC()
		tender.BidEndTS = &end
		if tender.BidSubmissionEnd == "" {
			tender.BidSubmissionEnd = FormatBidEnd(end)
		}
	}
	return nil
}

func (s *TenderService) publishable(tender *models.Tender) error {
	switch {
	case tender.BidEndTS == nil:
		return appErrors.Clone(appErrors.ErrTenderNotPublishable, "bid submission end is required to publish")
	case !tender.BidEndTS.After(s.now()):
		return appErrors.Clone(appErrors.ErrTenderNotPublishable, "bid submission end must be in the future")
	}
	return nil
}

func (s *TenderService) markActive(tender *models.Tender) {
	tender.Status = models.TenderStatusActive
	if tender.PublishedDate == nil {
		y, m, d := s.now().In(models.IST).Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, models.IST)
		tender.PublishedDate = &today
	}
}

func (s *TenderService) afterWrite(ctx context.Context, tender *models.Tender, published bool) {
	if s.listings != nil {
		s.listings.InvalidateListings(ctx)
	}
	if published && s.notifier != nil {
		s.notifier.NotifyPublished(ctx, tender.ID)
	}
}

func (s *TenderService) writeError(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, "tender not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func (s *TenderService) record(ctx context.Context, actor Actor, action, tenderID string, before, after *models.Tender) {
	if s.audit == nil {
		return
	}
	entry := &models.AuditLog{
		Action:     action,
		Resource:   "tender",
		ResourceID: &tenderID,
		IPAddress:  actor.IP,
		UserAgent:  actor.UserAgent,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		entry.UserID = &userID
	}
	if before != nil {
		entry.OldValues, _ = json.Marshal(before)
	}
	if after != nil {
		entry.NewValues, _ = json.Marshal(after)
	}
	if err := s.audit.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to record tender audit log", zap.String("action", action), zap.String("tender_id", tenderID), zap.Error(err))
	}
}

func (s *TenderService) detail(t *models.Tender, actor Actor) *dto.TenderDetail {
	return &dto.TenderDetail{
		TenderCard:        toCard(*t, s.now()),
		Description:       t.Description,
		OrganisationChain: t.OrganisationChain,
		Draft:             t.Status != models.TenderStatusActive,
		Owned:             t.OwnedBy(actor.UserID),
	}
}
