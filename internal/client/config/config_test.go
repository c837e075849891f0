package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://hack-or-snooze-v3.herokuapp.com", c.APIBaseURL)
	assert.Equal(t, "snoozer.db", c.StoragePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	useDotenv(t, "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://hack-or-snooze-v3.herokuapp.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "http://json.example",
		"storage_path":    "/tmp/json.db",
		"request_timeout": "3s",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag.example", "-l", "debug"}
	useDotenv(t, "")
	t.Setenv(EnvAPIBaseURL, "http://env.example")
	t.Setenv(EnvLogLevel, "error")

	cfg := LoadConfig()

	assert.Equal(t, "http://flag.example", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/json.db", cfg.StoragePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}
