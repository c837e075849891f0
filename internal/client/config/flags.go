package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the story API
//	-d string   local storage database path
//	-t int      request timeout in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config and unknown
// flags do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the story API")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "local storage database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
