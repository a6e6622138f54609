// Package common defines shared constants and sentinel errors used across
// the gophnotes server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrInvalidToken is returned for any token that fails signature, structure,
	// expiry or kind checks. The cause is never exposed.
	ErrInvalidToken = errors.New("invalid token")
)

// PublicError is a failure whose message is safe to return to the caller as is.
// It unwraps to its class sentinel, so errors.Is(err, ErrorUnauthorized) holds
// for every authentication failure.
type PublicError struct {
	Kind    error
	Message string
}

func (e *PublicError) Error() string { return e.Message }

func (e *PublicError) Unwrap() error { return e.Kind }

// Authentication failures. Each class has exactly one fixed message.
var (
	ErrEmailTaken = &PublicError{Kind: ErrorConflict, Message: "A user with that email already exists."}

	ErrInvalidCredentials = &PublicError{Kind: ErrorUnauthorized, Message: "Invalid email or password."}

	ErrInvalidRefreshToken = &PublicError{Kind: ErrorUnauthorized, Message: "Invalid refresh token."}

	ErrRefreshTokenNotRecognized = &PublicError{Kind: ErrorUnauthorized, Message: "Refresh token not recognized (maybe used or expired?)"}

	ErrInvalidAccessToken = &PublicError{Kind: ErrorUnauthorized, Message: "Invalid access token."}
)
