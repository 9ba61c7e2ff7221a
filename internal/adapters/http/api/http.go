// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/okian/hoopstat/internal/adapters/ingest"
	"github.com/okian/hoopstat/internal/adapters/store"
	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/pipeline"
	"github.com/okian/hoopstat/internal/domain/validate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze parses an upload, runs the pipeline and stores the result.
	Analyze(ctx context.Context, filename string, r io.Reader) (string, pipeline.Result, error)

	// Read operations expose stored runs.
	Leaderboard(ctx context.Context, runID string, n int) ([]model.RankedPlayer, error)
	Summary(ctx context.Context, runID string) (model.Summary, error)
	ExportCSV(ctx context.Context, runID string, w io.Writer) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	analyzeHandler *AnalyzeHandler
	runsHandler    *RunsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxUploadBytes int64, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		analyzeHandler: NewAnalyzeHandler(deps, maxUploadBytes),
		runsHandler:    NewRunsHandler(deps, maxLeaderboardLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
	mux.HandleFunc("/runs/", MetricsMiddleware(s.runsHandler.HandleRun, "runs"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps core error kinds onto HTTP responses so handlers
// share one propagation policy.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrSchema):
		writeError(w, http.StatusBadRequest, "schema_error", err)
	case errors.Is(err, pipeline.ErrNoValidRecords):
		writeError(w, http.StatusUnprocessableEntity, "no_valid_records", err)
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "unsupported_format", err)
	case errors.Is(err, ingest.ErrEmptyFile):
		writeError(w, http.StatusBadRequest, "empty_file", err)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "run_not_found", err)
	case isTooLarge(err):
		writeError(w, http.StatusRequestEntityTooLarge, "upload_too_large", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// isTooLarge detects the net/http body-limit error from MaxBytesReader.
func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "request body too large")
}
