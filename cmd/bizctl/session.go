package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "bizctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bizctl")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(tokenFile{AccessToken: tok, ExpiresAt: exp}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(tokenPath(), b, 0o600)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

func removeToken() error {
	err := os.Remove(tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// sessionFromToken reads the identity claims without verifying the
// signature; the server verifies it on every call.
func sessionFromToken(token string) models.Session {
	if token == "" {
		return models.Session{}
	}
	var claims utils.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return models.Session{}
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return models.Session{}
	}
	return models.Session{UserID: claims.UserID, Email: claims.Email, Name: claims.Name, Role: claims.Role}
}
