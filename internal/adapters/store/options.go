package store

import "time"

// Default store configuration constants.
const (
	defaultTTL           = 30 * time.Minute
	defaultMaxRuns       = 1000
	defaultSweepInterval = time.Minute
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithTTL sets how long a stored run stays retrievable.
func WithTTL(ttl time.Duration) Option {
	return func(s *MemStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxRuns caps the number of stored runs; the oldest run is evicted
// when the cap is exceeded.
func WithMaxRuns(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.maxRuns = n
		}
	}
}

// WithSweepInterval sets how often expired runs are swept.
func WithSweepInterval(d time.Duration) Option {
	return func(s *MemStore) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// WithClock overrides the time source, used by tests to pin expiry.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}
