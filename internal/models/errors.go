package models

import "errors"

// Error classes shared by every storage backend and the services on top of them.
var (
	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a referenced habit or completion is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness invariant would be violated.
	ErrConflict = errors.New("conflict")
	// ErrStorage is returned when the underlying store is unreachable or corrupt.
	ErrStorage = errors.New("storage error")
)
