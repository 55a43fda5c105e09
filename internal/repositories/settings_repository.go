package repositories

import (
	"context"

	"bizdesk_backend/internal/models"
)

// SettingsRepository reads and merges per-user settings.
type SettingsRepository interface {
	GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpsertUserSettings(ctx context.Context, settings *models.UserSettings) (*models.UserSettings, error)
}

type settingsRepository struct {
	db SQLExecutor
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db SQLExecutor) SettingsRepository {
	return &settingsRepository{db: db}
}

const settingsColumns = `user_id, company_name, timezone, business_type, updated_at`

func scanSettings(row scanner) (*models.UserSettings, error) {
	s := &models.UserSettings{}
	if err := row.Scan(&s.UserID, &s.CompanyName, &s.Timezone, &s.BusinessType, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

// GetUserSettings returns ErrNotFound when the user never saved anything.
func (r *settingsRepository) GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM user_settings WHERE user_id = $1`
	s, err := scanSettings(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, wrapDBError(err, "getting settings for user "+userID)
	}
	return s, nil
}

// UpsertUserSettings creates the row or merges into it. Nil fields keep the
// stored value; fields absent from both stay NULL.
func (r *settingsRepository) UpsertUserSettings(ctx context.Context, settings *models.UserSettings) (*models.UserSettings, error) {
	query := `INSERT INTO user_settings (user_id, company_name, timezone, business_type, updated_at)
	          VALUES ($1, $2, $3, $4, now())
	          ON CONFLICT (user_id) DO UPDATE SET
	            company_name  = COALESCE(EXCLUDED.company_name, user_settings.company_name),
	            timezone      = COALESCE(EXCLUDED.timezone, user_settings.timezone),
	            business_type = COALESCE(EXCLUDED.business_type, user_settings.business_type),
	            updated_at    = EXCLUDED.updated_at
	          RETURNING ` + settingsColumns

	merged, err := scanSettings(r.db.QueryRowContext(ctx, query,
		settings.UserID, settings.CompanyName, settings.Timezone, settings.BusinessType,
	))
	if err != nil {
		return nil, wrapDBError(err, "saving settings for user "+settings.UserID)
	}
	return merged, nil
}
