package store

import (
	"errors"
)

// Infrastructure errors. Every failure coming out of a store implementation
// is, or wraps, exactly one of these two values.
var (
	// ErrNotFound is returned when a single-row lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrInternal is returned for every other storage fault: pool acquisition,
	// connection interaction, query building and row scanning failures.
	ErrInternal = errors.New("internal server error")
)

// IsNotFoundError checks if the error is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInternalError checks if the error is, or wraps, ErrInternal.
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
