// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App is the full server configuration.
type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DB
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"bizdesk_user"`
	DBPassword    string `envconfig:"DB_PASSWORD" default:"bizdesk_password"`
	DBName        string `envconfig:"DB_NAME" default:"bizdesk_db"`
	DBSSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	DBAutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	// JWT
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"168h"`
	AdminEmails     []string      `envconfig:"ADMIN_EMAILS"`

	// HTTP
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`

	DefaultTimezone string `envconfig:"DEFAULT_TIMEZONE" default:"UTC"`

	// AI chat
	AIAPIURL       string        `envconfig:"AI_API_URL" default:"https://openrouter.ai/api/v1/chat/completions"`
	AIAPIKey       string        `envconfig:"AI_API_KEY"`
	AIDefaultModel string        `envconfig:"AI_DEFAULT_MODEL" default:"mistralai/devstral-small"`
	AITimeout      time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`

	// Messaging; empty URL disables mail-queued events
	RabbitURL    string `envconfig:"RABBIT_URL"`
	MailExchange string `envconfig:"MAIL_EXCHANGE" default:"mail.exchange"`

	// Tracing; empty endpoint disables export
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"bizdesk-backend"`
	Environment  string `envconfig:"ENV" default:"dev"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Load reads an optional .env file, then the process environment.
func Load() (App, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("process env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks values envconfig cannot express.
func (c App) Validate() error {
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE: %w", err)
	}
	return nil
}

// DSN builds the lib/pq connection string.
func (c App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsAdminEmail reports whether email is listed in ADMIN_EMAILS (case-insensitive).
func (c App) IsAdminEmail(email string) bool {
	for _, e := range c.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
