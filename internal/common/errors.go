// Package common defines shared constants and sentinel errors used across
// the Orbit backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Registration policy errors.
	ErrWeakPassword = errors.New("password does not meet complexity requirements")

	// Authentication errors. ErrInvalidCredentials covers both "unknown email"
	// and "wrong password" so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors (invalid signature, malformed payload, or expired).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
