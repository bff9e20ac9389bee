package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all
	// (connection failure or timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the bearer token and the
	// recovery protocol could not restore the session.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx backend response other than 401. Detail carries the
// backend's structured error message when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.Status)
}
