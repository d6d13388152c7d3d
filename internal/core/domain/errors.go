package domain

import "errors"

var (
	// ErrInvalidCredentials reports a login attempt with no exactly
	// matching account record.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation reports caller input missing a required field.
	ErrValidation = errors.New("validation failure")

	// ErrNoSession reports an operation that requires an established
	// session identity.
	ErrNoSession = errors.New("no session identity")

	// ErrNotFound reports an absent key or product identity.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable reports a durable storage read/write failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
