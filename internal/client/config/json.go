package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/flagx"
	"github.com/dmitrijs2005/snoozer/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is a timex.Duration so it may be written as "10s" or as nanoseconds.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	StoragePath    string          `json:"storage_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Keys missing from the file leave the current value alone.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
