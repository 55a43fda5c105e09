package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

func TestSaveUserSettings_MergesFields(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc, err := NewSettingsService(repo, "UTC")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.SaveUserSettings(ctx, alice, validation.SettingsForm{CompanyName: strPtr("Acme")})
	require.NoError(t, err)
	_, err = svc.SaveUserSettings(ctx, alice, validation.SettingsForm{Timezone: strPtr("UTC")})
	require.NoError(t, err)

	got, err := svc.GetUserSettings(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", utils.Deref(got.CompanyName))
	assert.Equal(t, "UTC", utils.Deref(got.Timezone))
	assert.Len(t, repo.rows, 1)
}

func TestGetUserSettings_NeverSavedIsNil(t *testing.T) {
	svc, err := NewSettingsService(newFakeSettingsRepo(), "UTC")
	require.NoError(t, err)

	got, err := svc.GetUserSettings(context.Background(), alice)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveUserSettings_Validation(t *testing.T) {
	svc, err := NewSettingsService(newFakeSettingsRepo(), "UTC")
	require.NoError(t, err)

	_, err = svc.SaveUserSettings(context.Background(), alice, validation.SettingsForm{Timezone: strPtr("Mars/Olympus")})
	fields, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "timezone")

	_, err = svc.SaveUserSettings(context.Background(), anon, validation.SettingsForm{CompanyName: strPtr("Acme")})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	svc, err := NewSettingsService(newFakeSettingsRepo(), "Europe/Madrid")
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, "Europe/Madrid", svc.Location(ctx, alice).String())

	_, err = svc.SaveUserSettings(ctx, alice, validation.SettingsForm{Timezone: strPtr("Asia/Tokyo")})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", svc.Location(ctx, alice).String())
}

func TestNewSettingsService_BadDefault(t *testing.T) {
	_, err := NewSettingsService(newFakeSettingsRepo(), "Nowhere/City")
	assert.Error(t, err)
}
