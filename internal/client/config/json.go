package config

import (
	"encoding/json"
	"os"

	"github.com/Under67/stellar-burgers/internal/flagx"
	"github.com/Under67/stellar-burgers/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they can be written as "15s" or as
// integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	FeedRefreshInterval timex.Duration `json:"feed_refresh_interval"`
	DataDir             string         `json:"data_dir"`
	DatabaseFile        string         `json:"database_file"`
	LogLevel            string         `json:"log_level"`
	LogBackend          string         `json:"log_backend"`
}

// parseJson overlays Config with the non-empty values of the JSON file given
// by -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlayString(&cfg.APIBaseURL, jc.APIBaseURL)
	overlayString(&cfg.DataDir, jc.DataDir)
	overlayString(&cfg.DatabaseFile, jc.DatabaseFile)
	overlayString(&cfg.LogLevel, jc.LogLevel)
	overlayString(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FeedRefreshInterval.Duration != 0 {
		cfg.FeedRefreshInterval = jc.FeedRefreshInterval.Duration
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
