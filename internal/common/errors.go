// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Remote store errors (network/service failure).
	ErrorUnavailable = errors.New("remote store unavailable")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
