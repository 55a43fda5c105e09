package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

func TestGetUserSettings_NeverSaved(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewSettingsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_settings WHERE user_id = $1`)).
		WithArgs("u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserSettings(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertUserSettings_ReturnsMergedRow(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewSettingsRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET`)).
		WithArgs("u1", nil, "UTC", nil).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "company_name", "timezone", "business_type", "updated_at"}).
			AddRow("u1", "Acme", "UTC", nil, now))

	merged, err := repo.UpsertUserSettings(context.Background(), &models.UserSettings{
		UserID:   "u1",
		Timezone: utils.NewNullString("UTC"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", utils.Deref(merged.CompanyName))
	assert.Equal(t, "UTC", utils.Deref(merged.Timezone))
	assert.Nil(t, merged.BusinessType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
