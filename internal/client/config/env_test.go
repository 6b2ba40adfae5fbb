package config

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name:     "nothing set keeps values",
			env:      map[string]string{},
			expected: Config{APIBaseURL: "http://base", FeedRefreshInterval: 30 * time.Second, LogLevel: "warn"},
		},
		{
			name: "overrides set values",
			env: map[string]string{
				"STELLAR_API_BASE_URL":    "http://env/api",
				"STELLAR_REQUEST_TIMEOUT": "2s",
				"STELLAR_LOG_BACKEND":     "zerolog",
			},
			expected: Config{
				APIBaseURL:          "http://env/api",
				RequestTimeout:      2 * time.Second,
				FeedRefreshInterval: 30 * time.Second,
				LogLevel:            "warn",
				LogBackend:          "zerolog",
			},
		},
		{
			name:     "explicit zero disables the feed watcher",
			env:      map[string]string{"STELLAR_FEED_REFRESH_INTERVAL": "0s"},
			expected: Config{APIBaseURL: "http://base", LogLevel: "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{APIBaseURL: "http://base", FeedRefreshInterval: 30 * time.Second, LogLevel: "warn"}
			applyEnv(&cfg, envconfig.MapLookuper(tt.env))
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestApplyEnv_InvalidValuePanics(t *testing.T) {
	cfg := Config{}
	require.Panics(t, func() {
		applyEnv(&cfg, envconfig.MapLookuper(map[string]string{"STELLAR_REQUEST_TIMEOUT": "soon"}))
	})
}
