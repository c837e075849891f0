package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL     = "SNOOZER_API_URL"
	EnvStoragePath    = "SNOOZER_STORAGE_PATH"
	EnvRequestTimeout = "SNOOZER_REQUEST_TIMEOUT"
	EnvLogLevel       = "SNOOZER_LOG_LEVEL"
)

// dotenvFile is loaded into the process environment, if it exists, before
// the variables are read. Variables already set are not overridden.
var dotenvFile = ".env"

// parseEnv overlays Config with SNOOZER_* environment variables. The timeout
// uses time.ParseDuration syntax. Panics on a malformed timeout.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFile)

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStoragePath); ok && v != "" {
		cfg.StoragePath = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
