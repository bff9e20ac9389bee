package common

import "errors"

// Sentinel errors shared by client and server layers. Callers match them
// with errors.Is.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Input errors.
	ErrValidation    = errors.New("validation error")
	ErrAlreadyExists = errors.New("already exists")
)
