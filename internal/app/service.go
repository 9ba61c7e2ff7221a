// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/hoopstat/internal/adapters/export"
	"github.com/okian/hoopstat/internal/adapters/ingest"
	"github.com/okian/hoopstat/internal/adapters/store"
	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/pipeline"
	"github.com/okian/hoopstat/internal/domain/validate"
	"github.com/okian/hoopstat/pkg/logger"
	"github.com/okian/hoopstat/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service implements upload analysis and run retrieval on top of the
// pipeline and the run store.
type Service struct {
	mu sync.Mutex

	runs store.Store

	// Configuration
	resultTTL     time.Duration
	maxStoredRuns int

	// State
	started       bool
	totalRuns     atomic.Int64
	totalFailures atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResultTTL sets how long stored runs stay retrievable.
func WithResultTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resultTTL = ttl
		}
	}
}

// WithMaxStoredRuns caps the number of stored runs.
func WithMaxStoredRuns(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxStoredRuns = n
		}
	}
}

// WithStore injects a run store, used by tests.
func WithStore(st store.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.runs = st
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		resultTTL:     30 * time.Minute,
		maxStoredRuns: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.runs == nil {
		s.runs = store.NewMemStore(
			store.WithTTL(s.resultTTL),
			store.WithMaxRuns(s.maxStoredRuns),
		)
	}
	s.started = true
	s.logger.Info(ctx, "analyzer service started",
		logger.Int("max_stored_runs", s.maxStoredRuns),
		logger.Any("result_ttl", s.resultTTL),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.runs.(io.Closer); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "analyzer service stopped")
}

// Analyze parses the upload, runs the full pipeline and stores the
// result. It returns the generated run ID alongside the result so the
// caller can link to later retrieval endpoints.
func (s *Service) Analyze(ctx context.Context, filename string, r io.Reader) (string, pipeline.Result, error) {
	table, err := ingest.File(filename, r)
	if err != nil {
		s.recordFailure(err)
		return "", pipeline.Result{}, fmt.Errorf("ingest %q: %w", filename, err)
	}
	return s.AnalyzeTable(ctx, filename, table)
}

// AnalyzeTable runs the pipeline on an already-parsed table.
func (s *Service) AnalyzeTable(ctx context.Context, filename string, t model.Table) (string, pipeline.Result, error) {
	start := time.Now()
	res, err := pipeline.Run(ctx, t)
	if err != nil {
		s.recordFailure(err)
		s.logger.Warn(ctx, "analysis aborted",
			logger.String("filename", filename),
			logger.Err(err),
		)
		return "", pipeline.Result{}, err
	}

	runID, err := s.runs.Put(ctx, filename, res)
	if err != nil {
		s.recordFailure(err)
		return "", pipeline.Result{}, fmt.Errorf("store run: %w", err)
	}

	s.totalRuns.Add(1)
	metrics.RecordRunProcessed()
	metrics.RecordRowsValidated(len(res.Players))
	metrics.RecordRowsDropped(res.Dropped)
	for _, w := range res.Warnings {
		metrics.RecordWarning(string(w.Kind))
	}
	metrics.RecordPipelineDuration(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	metrics.SetStoredRuns(s.runs.Count(ctx))

	s.logger.Info(ctx, "analysis complete",
		logger.String("run_id", runID),
		logger.String("filename", filename),
		logger.Int("players", res.Summary.TotalPlayers),
		logger.Int("dropped", res.Dropped),
		logger.Int("warnings", len(res.Warnings)),
		logger.String("top_scorer", res.Summary.TopScorer),
	)
	return runID, res, nil
}

// Run returns a stored run by ID.
func (s *Service) Run(ctx context.Context, runID string) (store.Record, error) {
	return s.runs.Get(ctx, runID)
}

// Leaderboard returns up to n ranked players of a stored run, in rank order.
func (s *Service) Leaderboard(ctx context.Context, runID string, n int) ([]model.RankedPlayer, error) {
	rec, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	players := rec.Result.Players
	if n < len(players) {
		players = players[:n]
	}
	return players, nil
}

// Summary returns the stored summary of a run.
func (s *Service) Summary(ctx context.Context, runID string) (model.Summary, error) {
	rec, err := s.runs.Get(ctx, runID)
	if err != nil {
		return model.Summary{}, err
	}
	return rec.Result.Summary, nil
}

// ExportCSV streams the ranked players of a run as CSV.
func (s *Service) ExportCSV(ctx context.Context, runID string, w io.Writer) error {
	rec, err := s.runs.Get(ctx, runID)
	if err != nil {
		return err
	}
	return export.CSV(w, rec.Result.Players)
}

// GetStats returns service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"stored_runs":    s.runs.Count(context.Background()),
		"total_runs":     s.totalRuns.Load(),
		"total_failures": s.totalFailures.Load(),
	}
}

func (s *Service) recordFailure(err error) {
	s.totalFailures.Add(1)
	metrics.RecordRunFailed(failureKind(err))
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, validate.ErrSchema):
		return "schema"
	case errors.Is(err, pipeline.ErrNoValidRecords):
		return "no_valid_records"
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ingest.ErrEmptyFile):
		return "empty_file"
	default:
		return "internal"
	}
}
