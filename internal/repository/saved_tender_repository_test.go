package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

func TestSavedTenderRepositorySaveIsIdempotent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSavedTenderRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, tender_id) DO NOTHING")).
		WithArgs("u1", "t1", queryNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, tender_id) DO NOTHING")).
		WithArgs("u1", "t1", queryNow).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Save(context.Background(), "u1", "t1", queryNow))
	require.NoError(t, repo.Save(context.Background(), "u1", "t1", queryNow))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedTenderRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSavedTenderRepository(db)

	rows := tenderRow(sqlmock.NewRows(tenderRowColumns), "t1", "Hospital equipment", queryNow)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.id, t.title, t.description")).
		WithArgs("u1", models.TenderStatusActive).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM saved_tenders s JOIN tenders t")).
		WithArgs("u1", models.TenderStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	tenders, total, err := repo.List(context.Background(), "u1", 1)
	require.NoError(t, err)
	require.Len(t, tenders, 1)
	assert.Equal(t, "Hospital equipment", tenders[0].Title)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedTenderRepositoryListHugePage(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSavedTenderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM saved_tenders s JOIN tenders t")).
		WithArgs("u1", models.TenderStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	tenders, total, err := repo.List(context.Background(), "u1", 500_000_000_000_000_000)
	require.NoError(t, err)
	assert.Empty(t, tenders)
	assert.NotNil(t, tenders)
	assert.Equal(t, 2, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedTenderRepositoryExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSavedTenderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM saved_tenders")).
		WithArgs("u1", "t2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	saved, err := repo.Exists(context.Background(), "u1", "t2")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestPrefixColumns(t *testing.T) {
	assert.Equal(t, "t.id, t.title, t.created_at", prefixColumns("t.", "id, title,\n        created_at"))
}
