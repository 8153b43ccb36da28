package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

// TenderRepository reads and writes the tenders table.
type TenderRepository struct {
	db *sqlx.DB
}

// NewTenderRepository constructs a TenderRepository.
func NewTenderRepository(db *sqlx.DB) *TenderRepository {
	return &TenderRepository{db: db}
}

// List returns one page of active tenders matching filter and the total match count. The page
// and the count are fetched concurrently. A page below 1 returns no rows but still counts.
func (r *TenderRepository) List(ctx context.Context, filter models.TenderFilter, now time.Time) ([]models.Tender, int, error) {
	q := buildTenderQuery(filter, now)
	where := q.where()

	var (
		tenders []models.Tender
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)

	if offset, ok := filter.Offset(); ok {
		g.Go(func() error {
			query := fmt.Sprintf("SELECT %s FROM tenders %s %s LIMIT %d OFFSET %d",
				tenderColumns, where, orderBy(filter.Sort), models.ListingPageSize, offset)
			if err := r.db.SelectContext(gctx, &tenders, query, q.args...); err != nil {
				return fmt.Errorf("list tenders: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		if err := r.db.GetContext(gctx, &total, "SELECT COUNT(*) FROM tenders "+where, q.args...); err != nil {
			return fmt.Errorf("count tenders: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if tenders == nil {
		tenders = []models.Tender{}
	}
	return tenders, total, nil
}

// ListForExport returns up to limit matching tenders in listing order.
func (r *TenderRepository) ListForExport(ctx context.Context, filter models.TenderFilter, now time.Time, limit int) ([]models.Tender, error) {
	q := buildTenderQuery(filter, now)
	query := fmt.Sprintf("SELECT %s FROM tenders %s %s LIMIT %d", tenderColumns, q.where(), orderBy(filter.Sort), limit)

	var tenders []models.Tender
	if err := r.db.SelectContext(ctx, &tenders, query, q.args...); err != nil {
		return nil, fmt.Errorf("export tenders: %w", err)
	}
	return tenders, nil
}

// FindByID fetches a tender regardless of status.
func (r *TenderRepository) FindByID(ctx context.Context, id string) (*models.Tender, error) {
	query := "SELECT " + tenderColumns + " FROM tenders WHERE id = $1"
	var tender models.Tender
	if err := r.db.GetContext(ctx, &tender, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find tender: %w", err)
	}
	return &tender, nil
}

// ListByCreator returns the postings of a user, drafts included, newest first.
func (r *TenderRepository) ListByCreator(ctx context.Context, userID string, page int) ([]models.Tender, int, error) {
	if page < 1 {
		page = 1
	}

	tenders := []models.Tender{}
	if offset, ok := models.PageOffset(page); ok {
		query := fmt.Sprintf("SELECT %s FROM tenders WHERE created_by = $1 ORDER BY updated_at DESC, id ASC LIMIT %d OFFSET %d",
			tenderColumns, models.ListingPageSize, offset)
		if err := r.db.SelectContext(ctx, &tenders, query, userID); err != nil {
			return nil, 0, fmt.Errorf("list user tenders: %w", err)
		}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tenders WHERE created_by = $1", userID); err != nil {
		return nil, 0, fmt.Errorf("count user tenders: %w", err)
	}
	return tenders, total, nil
}

// Create inserts a tender.
func (r *TenderRepository) Create(ctx context.Context, tender *models.Tender) error {
	if tender.ID == "" {
		tender.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if tender.CreatedAt.IsZero() {
		tender.CreatedAt = now
	}
	tender.UpdatedAt = now

	const query = `INSERT INTO tenders (id, title, description, authority, organisation_chain, location, state, tender_category, tender_type,
        tender_value, tender_value_numeric, published_date, bid_submission_end, bid_end_ts, reference_no, status, created_by, created_at, updated_at)
        VALUES (:id, :title, :description, :authority, :organisation_chain, :location, :state, :tender_category, :tender_type,
        :tender_value, :tender_value_numeric, :published_date, :bid_submission_end, :bid_end_ts, :reference_no, :status, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tender); err != nil {
		return fmt.Errorf("create tender: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a tender.
func (r *TenderRepository) Update(ctx context.Context, tender *models.Tender) error {
	tender.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tenders SET title = :title, description = :description, authority = :authority, organisation_chain = :organisation_chain,
        location = :location, state = :state, tender_category = :tender_category, tender_type = :tender_type, tender_value = :tender_value,
        tender_value_numeric = :tender_value_numeric, published_date = :published_date, bid_submission_end = :bid_submission_end,
        bid_end_ts = :bid_end_ts, reference_no = :reference_no, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, tender)
	if err != nil {
		return fmt.Errorf("update tender: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a tender.
func (r *TenderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tenders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	return expectAffected(res)
}

// MaxValue returns the largest numeric value among active tenders, or 0 when none is set.
func (r *TenderRepository) MaxValue(ctx context.Context) (int64, error) {
	var highest int64
	const query = `SELECT COALESCE(MAX(tender_value_numeric), 0) FROM tenders WHERE status = $1`
	if err := r.db.GetContext(ctx, &highest, query, models.TenderStatusActive); err != nil {
		return 0, fmt.Errorf("max tender value: %w", err)
	}
	return highest, nil
}

var facetColumns = map[models.FacetColumn]bool{
	models.FacetCategory:   true,
	models.FacetState:      true,
	models.FacetAuthority:  true,
	models.FacetTenderType: true,
}

// Facets counts open active tenders per distinct value of column.
func (r *TenderRepository) Facets(ctx context.Context, column models.FacetColumn, now time.Time) ([]models.Facet, error) {
	if !facetColumns[column] {
		return nil, fmt.Errorf("facet column %q not allowed", column)
	}
	query := fmt.Sprintf(`SELECT %[1]s AS value, COUNT(*) AS count FROM tenders
        WHERE status = $1 AND bid_end_ts > $2 AND %[1]s <> '' GROUP BY %[1]s ORDER BY count DESC, value ASC`, column)

	var facets []models.Facet
	if err := r.db.SelectContext(ctx, &facets, query, models.TenderStatusActive, now); err != nil {
		return nil, fmt.Errorf("facet %s: %w", column, err)
	}
	return facets, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
