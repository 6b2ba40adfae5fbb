package config

import (
	"flag"
	"os"
	"time"

	"github.com/Under67/stellar-burgers/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST API
//	-i int      feed refresh interval in seconds, 0 disables it
//	-d string   data directory for the local database
//	-l string   log level (debug, info, warn, error)
//
// os.Args is narrowed with flagx.FilterArgs first so flags owned by other
// loaders (-c) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	feedInterval := fs.Int("i", int(cfg.FeedRefreshInterval.Seconds()), "feed refresh interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -i only wins when given; the default is truncated to whole seconds.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.FeedRefreshInterval = time.Duration(*feedInterval) * time.Second
		}
	})
}
