// Package store keeps finished pipeline runs addressable between
// requests, replacing per-session result passing with opaque run IDs.
package store

import (
	"context"
	"time"

	"github.com/okian/hoopstat/internal/domain/pipeline"
)

// Record is one stored run. The result is immutable once stored.
type Record struct {
	RunID     string
	Filename  string
	CreatedAt time.Time
	Result    pipeline.Result
}

// Store provides read/write access to finished runs.
type Store interface {
	// Put stores a run result and returns its generated run ID.
	Put(ctx context.Context, filename string, res pipeline.Result) (string, error)

	// Get returns the stored run. Returns ErrNotFound for unknown or
	// expired IDs.
	Get(ctx context.Context, runID string) (Record, error)

	// Delete removes a run. Returns true if it was present.
	Delete(ctx context.Context, runID string) bool

	// Count returns the number of currently stored runs.
	Count(ctx context.Context) int
}
