package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

var alertRowColumns = []string{"user_id", "whatsapp_number", "enabled", "frequency", "categories", "states", "keywords", "min_value", "max_value", "created_at", "updated_at"}

func TestAlertRepositoryListEnabled(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAlertRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(alertRowColumns).
		AddRow("u1", "+919876543210", true, "instant", `{Construction,"IT & Software"}`, "{Delhi}", "{}", int64(100000000), nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM alert_preferences WHERE enabled = TRUE AND frequency = $1")).
		WithArgs(models.AlertInstant).
		WillReturnRows(rows)

	prefs, err := repo.ListEnabled(context.Background(), models.AlertInstant)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, pq.StringArray{"Construction", "IT & Software"}, prefs[0].Categories)
	assert.Equal(t, pq.StringArray{"Delhi"}, prefs[0].States)
	assert.Empty(t, prefs[0].Keywords)
	require.NotNil(t, prefs[0].MinValue)
	assert.Nil(t, prefs[0].MaxValue)
}

func TestAlertRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAlertRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).WillReturnResult(sqlmock.NewResult(0, 1))

	pref := &models.AlertPreference{UserID: "u1", WhatsAppNumber: "+919876543210", Enabled: true, Frequency: models.AlertDaily}
	require.NoError(t, repo.Upsert(context.Background(), pref))
	assert.False(t, pref.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAlertRepository(db)

	mock.ExpectExec("DELETE FROM alert_preferences").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
