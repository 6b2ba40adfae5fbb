package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvConfig is a DTO for the STELLAR_* environment variables.
type EnvConfig struct {
	APIBaseURL          string         `env:"STELLAR_API_BASE_URL"`
	RequestTimeout      time.Duration  `env:"STELLAR_REQUEST_TIMEOUT"`
	FeedRefreshInterval *time.Duration `env:"STELLAR_FEED_REFRESH_INTERVAL, noinit"`
	DataDir             string         `env:"STELLAR_DATA_DIR"`
	DatabaseFile        string         `env:"STELLAR_DATABASE_FILE"`
	LogLevel            string         `env:"STELLAR_LOG_LEVEL"`
	LogBackend          string         `env:"STELLAR_LOG_BACKEND"`
}

// parseEnv overlays Config with the variables that are set in the process
// environment.
func parseEnv(cfg *Config) {
	applyEnv(cfg, envconfig.OsLookuper())
}

// applyEnv panics when a variable cannot be parsed, like the other loaders.
// FeedRefreshInterval is a pointer so that an explicit "0" can disable the
// feed watcher.
func applyEnv(cfg *Config, l envconfig.Lookuper) {
	var ec EnvConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: l,
	}); err != nil {
		panic(err)
	}

	overlayString(&cfg.APIBaseURL, ec.APIBaseURL)
	overlayString(&cfg.DataDir, ec.DataDir)
	overlayString(&cfg.DatabaseFile, ec.DatabaseFile)
	overlayString(&cfg.LogLevel, ec.LogLevel)
	overlayString(&cfg.LogBackend, ec.LogBackend)
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.FeedRefreshInterval != nil {
		cfg.FeedRefreshInterval = *ec.FeedRefreshInterval
	}
}
