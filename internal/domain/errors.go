package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering with an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown-email and wrong-password logins
	// so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("unable to login")
	// ErrUnauthorized indicates a missing, forged, expired, or revoked bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)
