// Package common contains shared constants and small helpers used across
// the snoozer client layers.
package common

// Keys of the remembered credentials inside the local storage area.
const (
	TokenKey    = "token"
	UsernameKey = "username"
)

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"
