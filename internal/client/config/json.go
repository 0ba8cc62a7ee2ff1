package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dangtv/coinclub/internal/flagx"
	"github.com/dangtv/coinclub/internal/timex"
)

// JsonConfig is the DTO for config-file unmarshalling. Intervals may be
// duration strings ("3s") or integer nanoseconds via timex.Duration.
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	DatabasePath     string         `json:"database_path"`
	SyncPollInterval timex.Duration `json:"sync_poll_interval"`
	RefreshOnStart   *bool          `json:"refresh_on_start"`
}

// parseJson overlays Config with values from the file named by the -c or
// -config flag. Without the flag nothing is loaded. Read or unmarshal
// errors panic; a bad config file should stop startup visibly.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}
	loadJsonFile(cfg, path)
}

func loadJsonFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SyncPollInterval.Duration != 0 {
		cfg.SyncPollInterval = time.Duration(jc.SyncPollInterval.Duration)
	}
	if jc.RefreshOnStart != nil {
		cfg.RefreshOnStart = *jc.RefreshOnStart
	}
}
