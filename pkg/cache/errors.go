package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist in the cache.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrUnexpectedValue is returned when a de-duplicated load yields a value
	// of an unexpected type.
	ErrUnexpectedValue = errors.New("cache: unexpected loaded value type")
)
