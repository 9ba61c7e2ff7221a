package store

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrNotFound marks a lookup for an unknown or expired run ID.
	ErrNotFound = errors.New("run not found")
)
