package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/hoopstat/internal/domain/pipeline"
)

// MemStore implements Store in memory with TTL expiry and a size cap.
type MemStore struct {
	mu   sync.RWMutex
	runs map[string]Record

	ttl           time.Duration
	maxRuns       int
	sweepInterval time.Duration
	now           func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an in-memory run store and starts its sweeper.
// Call Close to stop the sweeper.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		runs:          make(map[string]Record),
		ttl:           defaultTTL,
		maxRuns:       defaultMaxRuns,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweepLoop()
	return s
}

// Put stores a run result under a fresh run ID, evicting the oldest run
// when the cap is reached.
func (s *MemStore) Put(_ context.Context, filename string, res pipeline.Result) (string, error) {
	rec := Record{
		RunID:     uuid.NewString(),
		Filename:  filename,
		CreatedAt: s.now(),
		Result:    res,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.runs) >= s.maxRuns {
		s.evictOldestLocked()
	}
	s.runs[rec.RunID] = rec
	return rec.RunID, nil
}

// Get returns the stored run, treating expired entries as absent even if
// the sweeper has not collected them yet.
func (s *MemStore) Get(_ context.Context, runID string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.runs[runID]
	s.mu.RUnlock()
	if !ok || s.expired(rec) {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Delete removes a run.
func (s *MemStore) Delete(_ context.Context, runID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.runs[runID]
	delete(s.runs, runID)
	return ok
}

// Count returns the number of live (unexpired) runs.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.runs {
		if !s.expired(rec) {
			n++
		}
	}
	return n
}

// Close stops the background sweeper. Idempotent.
func (s *MemStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}

func (s *MemStore) expired(rec Record) bool {
	return s.now().Sub(rec.CreatedAt) > s.ttl
}

func (s *MemStore) evictOldestLocked() {
	var oldest string
	var oldestAt time.Time
	for id, rec := range s.runs {
		if oldest == "" || rec.CreatedAt.Before(oldestAt) {
			oldest = id
			oldestAt = rec.CreatedAt
		}
	}
	delete(s.runs, oldest)
}

func (s *MemStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.runs {
		if s.expired(rec) {
			delete(s.runs, id)
		}
	}
}
