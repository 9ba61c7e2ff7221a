// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// RunsHandler serves stored runs: leaderboard, summary, CSV export and
// the distribution chart.
type RunsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(deps Dependencies, maxLimit int) *RunsHandler {
	return &RunsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleRun handles GET /runs/{id}/{leaderboard|summary|export|chart}.
func (h *RunsHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_run"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/runs/")
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	runID, resource := parts[0], parts[1]

	switch resource {
	case "leaderboard":
		h.handleLeaderboard(w, r, runID)
	case "summary":
		h.handleSummary(w, r, runID)
	case "export":
		h.handleExport(w, r, runID)
	case "chart":
		h.handleChart(w, r, runID)
	default:
		http.NotFound(w, r)
	}
}

func (h *RunsHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request, runID string) {
	const op = "api.get_leaderboard"
	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if v > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = v
	}
	players, err := h.deps.Leaderboard(r.Context(), runID, n)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *RunsHandler) handleSummary(w http.ResponseWriter, r *http.Request, runID string) {
	summary, err := h.deps.Summary(r.Context(), runID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *RunsHandler) handleExport(w http.ResponseWriter, r *http.Request, runID string) {
	// The store lookup happens before any body byte is written, so a
	// missing run still turns into a clean 404 below.
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ranked_players.csv"))
	if err := h.deps.ExportCSV(r.Context(), runID, w); err != nil {
		w.Header().Del("Content-Disposition")
		writeDomainError(w, err)
		return
	}
}
