package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// SettingsService reads and merges per-user settings.
type SettingsService interface {
	// GetUserSettings returns nil when nothing was ever saved.
	GetUserSettings(ctx context.Context, session models.Session) (*models.UserSettings, error)
	SaveUserSettings(ctx context.Context, session models.Session, form validation.SettingsForm) (*models.UserSettings, error)
	BusinessTypes() []string
	// Location is the user's timezone, or the default one.
	Location(ctx context.Context, session models.Session) *time.Location
}

type settingsService struct {
	repo            repositories.SettingsRepository
	defaultLocation *time.Location
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(repo repositories.SettingsRepository, defaultTimezone string) (SettingsService, error) {
	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("load default timezone %q: %w", defaultTimezone, err)
	}
	return &settingsService{repo: repo, defaultLocation: loc}, nil
}

func (s *settingsService) GetUserSettings(ctx context.Context, session models.Session) (*models.UserSettings, error) {
	if !session.Authenticated() {
		return nil, nil
	}
	settings, err := s.repo.GetUserSettings(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

// SaveUserSettings creates the record or merges into it; nil form fields
// keep their stored value.
func (s *settingsService) SaveUserSettings(ctx context.Context, session models.Session, form validation.SettingsForm) (*models.UserSettings, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	merged, err := s.repo.UpsertUserSettings(ctx, &models.UserSettings{
		UserID:       session.UserID,
		CompanyName:  form.CompanyName,
		Timezone:     form.Timezone,
		BusinessType: form.BusinessType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user settings: %w", err)
	}
	return merged, nil
}

func (s *settingsService) BusinessTypes() []string {
	out := make([]string, len(models.BusinessTypes))
	copy(out, models.BusinessTypes)
	return out
}

func (s *settingsService) Location(ctx context.Context, session models.Session) *time.Location {
	settings, err := s.GetUserSettings(ctx, session)
	if err != nil {
		utils.LogWarn(err, "Falling back to default timezone", map[string]interface{}{"user_id": session.UserID})
		return s.defaultLocation
	}
	if settings == nil || settings.Timezone == nil {
		return s.defaultLocation
	}
	loc, err := time.LoadLocation(*settings.Timezone)
	if err != nil {
		return s.defaultLocation
	}
	return loc
}
