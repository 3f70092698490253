package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrInvalidLookup is returned when a lookup has no keyword or an unknown outcome.
	ErrInvalidLookup = errors.New("keyword and a known outcome are required")
)
