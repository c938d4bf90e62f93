package domain

import "errors"

// Shared domain errors. Service-specific errors live next to their
// service; these are the cross-cutting ones.
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)
