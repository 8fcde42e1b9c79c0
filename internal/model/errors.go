package model

import "errors"

var (
	// ErrNotFound is returned when a requested object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidUser is returned when a user payload cannot be accepted.
	ErrInvalidUser = errors.New("invalid user")
	// ErrUnknownSeedSource is returned for an unsupported seed source name.
	ErrUnknownSeedSource = errors.New("unknown seed source")
)
