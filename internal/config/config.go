package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCurrency     = "USD"
	defaultReminderSpec = "@every 1h"
	defaultStaleWarn    = "48h"
)

type Config struct {
	AppEnv          string
	DefaultCurrency string
	ReminderEnabled bool
	ReminderSpec    string
	StaleWarnAfter  time.Duration
}

// Load builds the runtime config from the environment, reading a local
// .env first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(getEnv("DEFAULT_CURRENCY", defaultCurrency)))
	cfg.ReminderEnabled = parseBoolEnv("REMINDER_ENABLED", "true")
	cfg.ReminderSpec = strings.TrimSpace(getEnv("REMINDER_SPEC", defaultReminderSpec))

	var err error
	cfg.StaleWarnAfter, err = parseDurationEnv("STALE_WARN_AFTER", defaultStaleWarn)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DefaultCurrency == "" {
		return fmt.Errorf("DEFAULT_CURRENCY must not be empty")
	}
	if cfg.ReminderSpec == "" {
		return fmt.Errorf("REMINDER_SPEC must not be empty")
	}
	if cfg.StaleWarnAfter <= 0 {
		return fmt.Errorf("STALE_WARN_AFTER must be > 0")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key, defaultValue string) bool {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, defaultValue)))
	return raw == "true" || raw == "1" || raw == "yes"
}

func parseDurationEnv(key, defaultValue string) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, defaultValue))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}
