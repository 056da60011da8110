// Package common defines shared sentinel errors used across the Notehub
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Input validation errors (caught before storage access).
	ErrorValidation = errors.New("validation error")

	// Auth header errors.
	ErrorMalformedAuthHeader = errors.New("invalid auth header format")

	// Token lifecycle errors. Malformed, bad-signature and expired tokens are
	// kept distinct so the transport can report them separately.
	ErrTokenMalformed = errors.New("malformed token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Service-level auth errors.
	ErrorInvalidCredentials = errors.New("invalid login/password")
	ErrorUnauthenticated    = errors.New("authentication required")
	ErrorForbidden          = errors.New("forbidden")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)
