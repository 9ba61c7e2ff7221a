package config

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrInvalidConfig marks a loaded configuration that fails validation,
	// e.g. a non-positive upload cap.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig marks a failure to read or parse a configuration layer.
	ErrLoadConfig = errors.New("load config failed")
)
