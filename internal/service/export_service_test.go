package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
)

type fakeExportRepo struct {
	tenders   []models.Tender
	err       error
	lastLimit int
	lastSort  models.SortKey
}

func (f *fakeExportRepo) ListForExport(ctx context.Context, filter models.TenderFilter, now time.Time, limit int) ([]models.Tender, error) {
	f.lastLimit = limit
	f.lastSort = filter.Sort
	if f.err != nil {
		return nil, f.err
	}
	if len(f.tenders) > limit {
		return f.tenders[:limit], nil
	}
	return f.tenders, nil
}

func newTestExportService(repo *fakeExportRepo, maxRows int) *ExportService {
	svc := NewExportService(repo, nil, nil, ExportConfig{MaxRows: maxRows})
	svc.now = func() time.Time { return matchNow }
	return svc
}

func TestExportServiceCSV(t *testing.T) {
	value := int64(45_000_000)
	repo := &fakeExportRepo{tenders: []models.Tender{
		openTender(func(t *models.Tender) { t.ReferenceNo = "DDA/1"; t.TenderValueNumeric = &value }),
		openTender(func(t *models.Tender) { t.ReferenceNo = "DDA/2" }),
		openTender(func(t *models.Tender) { t.ReferenceNo = "DDA/3" }),
	}}
	svc := newTestExportService(repo, 2)

	file, err := svc.Export(context.Background(), models.TenderFilter{Type: models.ListingClosingSoon}, "CSV")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lastLimit)
	assert.Equal(t, models.SortClosing, repo.lastSort)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "tenders-closing-soon-20240301-1530.csv", file.Filename)
	assert.Equal(t, 2, file.Rows)

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "DDA/1", records[1][0])
	assert.Equal(t, "₹4.5 Cr", records[1][7])
}

func TestExportServicePDF(t *testing.T) {
	svc := newTestExportService(&fakeExportRepo{tenders: []models.Tender{openTender(nil)}}, 0)

	file, err := svc.Export(context.Background(), models.TenderFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
	assert.Contains(t, file.Filename, "tenders-default-")
}

func TestExportServiceErrors(t *testing.T) {
	svc := newTestExportService(&fakeExportRepo{}, 10)
	_, err := svc.Export(context.Background(), models.TenderFilter{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedFormat.Code, appErrors.FromError(err).Code)

	svc = newTestExportService(&fakeExportRepo{err: errors.New("timeout")}, 10)
	_, err = svc.Export(context.Background(), models.TenderFilter{}, "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrListingUnavailable.Code, appErrors.FromError(err).Code)
}
