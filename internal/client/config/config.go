// Package config assembles the client's runtime settings by layering, in
// order of precedence: defaults, environment (.env honored), a JSON config
// file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the coinclub client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend, e.g. "http://localhost:8080".
//   - DatabasePath: client SQLite database (credentials, notifications).
//   - SyncPollInterval: polling fallback period of the session sync watcher.
//   - RefreshOnStart: fire an asynchronous /private/me refresh at startup.
//   - InviteLink: invite URL whose ref parameter is captured at first run.
type Config struct {
	ServerBaseURL    string
	DatabasePath     string
	SyncPollInterval time.Duration
	RefreshOnStart   bool
	InviteLink       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabasePath = "coinclub.db"
	c.SyncPollInterval = 2 * time.Second
	c.RefreshOnStart = true
}

// LoadConfig constructs a Config. Later sources override earlier ones:
// defaults, then environment, then JSON (if a -c/-config path was given),
// then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
