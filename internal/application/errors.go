package application

import "errors"

// Domain failures surfaced to HTTP handlers. Handlers own the mapping to
// status codes; services never touch HTTP.
var (
	// ErrInvalidCredentials deliberately covers unknown email, deactivated
	// account and wrong password alike, to resist account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized covers bad/expired tokens and missing or deactivated users.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("not allowed to view this video")

	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateVideo = errors.New("video already in catalogue")
	ErrInvalidURL     = errors.New("invalid youtube url")
)
