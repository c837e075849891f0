package config

import "time"

// Config holds runtime settings for the snoozer terminal client.
//
// Fields:
//   - APIBaseURL: root URL of the story API (login, signup, users, stories).
//   - StoragePath: SQLite file backing the local storage area.
//   - RequestTimeout: upper bound for a single API request.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.StoragePath = "snoozer.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
