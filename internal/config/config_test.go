package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("BOOKING_WINDOW_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.VerifyCodeTTL)
	assert.Equal(t, 30, cfg.BookingWindowDays)
	assert.False(t, cfg.MailEnabled())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "eight hours")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_TTL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SMTPFromFallsBackToUser(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "noreply@example.com")
	t.Setenv("SMTP_FROM", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "noreply@example.com", cfg.SMTPFrom)
	assert.True(t, cfg.MailEnabled())
}
