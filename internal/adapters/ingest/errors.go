package ingest

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrUnsupportedFormat marks an upload with an extension the service
	// cannot parse.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyFile marks an upload without even a header row.
	ErrEmptyFile = errors.New("empty file")
)
