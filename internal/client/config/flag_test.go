package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-d", "x.db", "-t", "5", "-l", "warn"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://127.0.0.1:9090", StoragePath: "x.db", RequestTimeout: 5 * time.Second, LogLevel: "warn"}},
		{name: "config flag is ignored", args: []string{"cmd", "-config", "cfg.json", "-t", "7"}, expectPanic: false,
			expected: &Config{RequestTimeout: 7 * time.Second}},
		{name: "incorrect timeout", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
