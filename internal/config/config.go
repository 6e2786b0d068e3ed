package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultDatabaseURL      = "creativeconnect.db"
	defaultSessionSecret    = "change-me-session-secret"
	defaultSessionTTL       = "8h"
	defaultVerifyCodeTTL    = "5m"
	defaultVerifyCodePepper = "change-me-verification-pepper"
	defaultSMTPPort         = 587
	defaultBookingWindow    = 30
)

type Config struct {
	AppEnv      string
	DatabaseURL string
	LogOutput   string

	SessionSecret string
	SessionTTL    time.Duration

	VerifyCodeTTL    time.Duration
	VerifyCodePepper string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	BookingWindowDays int
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		DatabaseURL:      strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		LogOutput:        strings.TrimSpace(getEnv("LOG_OUTPUT", "stderr")),
		SessionSecret:    strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret)),
		VerifyCodePepper: strings.TrimSpace(getEnv("VERIFY_CODE_PEPPER", defaultVerifyCodePepper)),
		SMTPHost:         strings.TrimSpace(getEnv("SMTP_HOST", "")),
		SMTPPort:         getEnvInt("SMTP_PORT", defaultSMTPPort),
		SMTPUser:         strings.TrimSpace(getEnv("SMTP_USER", "")),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:         strings.TrimSpace(getEnv("SMTP_FROM", "")),

		BookingWindowDays: getEnvInt("BOOKING_WINDOW_DAYS", defaultBookingWindow),
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.VerifyCodeTTL, err = parseDurationEnv("VERIFY_CODE_TTL", defaultVerifyCodeTTL)
	if err != nil {
		return nil, err
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MailEnabled reports whether an SMTP relay is configured. Without one the
// verification codes are written to the log instead.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

// Validate warns about settings that are fine for local use only.
func (c *Config) Validate(log *zap.Logger) {
	if c.SessionSecret == defaultSessionSecret {
		log.Warn("SESSION_SECRET is default, change in production")
	}
	if c.VerifyCodePepper == defaultVerifyCodePepper {
		log.Warn("VERIFY_CODE_PEPPER is default, change in production")
	}
	if !c.MailEnabled() {
		log.Warn("SMTP is not configured, verification codes are logged")
	}
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.VerifyCodeTTL <= 0 {
		return fmt.Errorf("VERIFY_CODE_TTL must be > 0")
	}
	if cfg.BookingWindowDays <= 0 {
		return fmt.Errorf("BOOKING_WINDOW_DAYS must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.VerifyCodePepper, defaultVerifyCodePepper) {
			return fmt.Errorf("in prod/release VERIFY_CODE_PEPPER must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	s := os.Getenv(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
