package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys. A .env file in the working directory is honored but
// never required.
const (
	envBaseURL      = "COINCLUB_API_BASE"
	envDatabase     = "COINCLUB_DB"
	envSyncInterval = "COINCLUB_SYNC_INTERVAL"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envDatabase); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envSyncInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SyncPollInterval = d
		}
	}
}
