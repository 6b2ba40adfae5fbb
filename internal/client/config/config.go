package config

import (
	"time"
)

// Config holds runtime settings for the stellar-burgers CLI.
//
// Fields:
//   - APIBaseURL: base URL of the burger shop REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - FeedRefreshInterval: how often the public feed is re-fetched; 0 disables it.
//   - DataDir, DatabaseFile: where the local SQLite database lives.
//   - LogLevel, LogBackend: logger settings (see logging.Options).
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	FeedRefreshInterval time.Duration
	DataDir             string
	DatabaseFile        string
	LogLevel            string
	LogBackend          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://norma.nomoreparties.space/api"
	c.RequestTimeout = 15 * time.Second
	c.FeedRefreshInterval = 30 * time.Second
	c.DataDir = ".stellar"
	c.DatabaseFile = "client.db"
	c.LogLevel = "warn"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
