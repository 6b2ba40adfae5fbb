// Package config loads runtime configuration for the stellar-burgers CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. STELLAR_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-i int      feed refresh interval (seconds, 0 disables)
//	-d string   data directory
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://norma.nomoreparties.space/api",
//	  "request_timeout": "15s",
//	  "feed_refresh_interval": "30s",
//	  "data_dir": ".stellar",
//	  "database_file": "client.db",
//	  "log_level": "info",
//	  "log_backend": "zerolog"
//	}
//
// # Environment
//
//	STELLAR_API_BASE_URL, STELLAR_REQUEST_TIMEOUT, STELLAR_FEED_REFRESH_INTERVAL,
//	STELLAR_DATA_DIR, STELLAR_DATABASE_FILE, STELLAR_LOG_LEVEL, STELLAR_LOG_BACKEND
package config
