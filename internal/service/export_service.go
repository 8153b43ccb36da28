package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/export"
)

type tenderExportRepository interface {
	ListForExport(ctx context.Context, filter models.TenderFilter, now time.Time, limit int) ([]models.Tender, error)
}

type renderer interface {
	Render(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	MaxRows int
}

// ExportFile is a rendered export ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

// ExportService renders listing results as downloadable documents.
type ExportService struct {
	repo      tenderExportRepository
	renderers map[string]renderer
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       ExportConfig
	now       func() time.Time
}

// NewExportService constructs an ExportService with the CSV and PDF renderers.
func NewExportService(repo tenderExportRepository, metrics *MetricsService, logger *zap.Logger, cfg ExportConfig) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 500
	}
	return &ExportService{
		repo: repo,
		renderers: map[string]renderer{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

var exportHeaders = []string{"Reference No", "Title", "Authority", "Category", "State", "Location", "Type", "Value", "Published", "Bid Submission End", "Status"}

// Export renders up to MaxRows tenders of a listing in the requested format.
func (s *ExportService) Export(ctx context.Context, filter models.TenderFilter, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, "unsupported export format: "+format)
	}

	filter = NormalizeFilter(filter)
	now := s.now().UTC()
	start := time.Now()
	tenders, err := s.repo.ListForExport(ctx, filter, now, s.cfg.MaxRows)
	s.metrics.ObserveDBQuery("tenders_export", time.Since(start))
	if err != nil {
		s.logger.Error("tender export query failed", zap.String("type", string(filter.Type)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrListingUnavailable.Code, appErrors.ErrListingUnavailable.Status, appErrors.ErrListingUnavailable.Message)
	}

	table := export.Table{
		Title:   exportTitle(filter.Type, now),
		Headers: exportHeaders,
		Rows:    make([][]string, 0, len(tenders)),
	}
	for _, t := range tenders {
		card := toCard(t, now)
		table.Rows = append(table.Rows, []string{
			card.ReferenceNo, card.Title, card.Authority, card.Category, card.State, card.Location,
			card.TenderType, card.TenderValue, card.PublishedDate, card.BidSubmissionEnd, card.Status,
		})
	}

	body, err := r.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("tenders-%s-%s.%s", filter.Type, now.In(models.IST).Format("20060102-1504"), r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
		Rows:        len(table.Rows),
	}, nil
}

func exportTitle(listing models.ListingType, now time.Time) string {
	name := map[models.ListingType]string{
		models.ListingDefault:     "Active tenders",
		models.ListingArchive:     "Archived tenders",
		models.ListingLatest:      "Latest tenders",
		models.ListingClosingSoon: "Tenders closing soon",
	}[listing]
	return name + " as of " + now.In(models.IST).Format("02-Jan-2006 03:04 PM") + " IST"
}
