package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Reason is the enumerated cause of a failed API call.
type Reason int

const (
	ReasonUnknown Reason = iota
	// ReasonUnauthorized: credentials or token were rejected.
	ReasonUnauthorized
	// ReasonConflict: the username is already taken.
	ReasonConflict
	// ReasonUnavailable: the server could not be reached or failed (5xx, timeout).
	ReasonUnavailable
)

func (r Reason) String() string {
	switch r {
	case ReasonUnauthorized:
		return "unauthorized"
	case ReasonConflict:
		return "conflict"
	case ReasonUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is returned by every failed HTTPClient call.
type Error struct {
	Op      string
	Reason  Reason
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Reason, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnauthorized) and friends match on Reason.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Reason == ReasonUnauthorized
	case ErrConflict:
		return e.Reason == ReasonConflict
	case ErrUnavailable:
		return e.Reason == ReasonUnavailable
	}
	return false
}

// ReasonOf extracts the failure reason from err. Bare sentinels are
// recognised as well, so fakes in tests may return them directly.
func ReasonOf(err error) Reason {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	switch {
	case errors.Is(err, ErrUnauthorized):
		return ReasonUnauthorized
	case errors.Is(err, ErrConflict):
		return ReasonConflict
	case errors.Is(err, ErrUnavailable):
		return ReasonUnavailable
	}
	return ReasonUnknown
}

func reasonForStatus(status int) Reason {
	switch {
	case status == 401 || status == 403:
		return ReasonUnauthorized
	case status == 409:
		return ReasonConflict
	case status >= 500:
		return ReasonUnavailable
	default:
		return ReasonUnknown
	}
}
