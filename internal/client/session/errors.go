package session

import (
	"errors"

	"github.com/stadtwache/patrol/internal/client/api"
)

// loginFailedMessage is shown when the backend gives no structured error.
const loginFailedMessage = "Verbindung zum Server fehlgeschlagen. Bitte versuchen Sie es später erneut."

// AuthError is a login or registration rejection carrying a message fit for
// direct display to the officer.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// authErrorFrom prefers the backend's structured detail; anything else
// (timeouts, connection failures, malformed responses) becomes the generic
// connectivity message.
func authErrorFrom(err error) *AuthError {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return &AuthError{Message: apiErr.Detail, Err: err}
	}
	return &AuthError{Message: loginFailedMessage, Err: err}
}
