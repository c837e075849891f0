// Package config loads runtime configuration for the snoozer terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. SNOOZER_* environment variables, optionally from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the story API
//	-d string   path of the local storage database
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds. Absent keys keep the default:
//
//	{
//	  "api_base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "storage_path": "snoozer.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
