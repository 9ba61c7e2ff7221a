// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/hoopstat/internal/domain/model"
)

// AnalyzeHandler handles roster uploads.
type AnalyzeHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps, maxUploadBytes: maxUploadBytes}
}

// analyzeResponse links the stored run to the retrieval endpoints and
// carries everything the uploader usually wants immediately.
type analyzeResponse struct {
	RunID       string               `json:"run_id"`
	Filename    string               `json:"filename"`
	Summary     model.Summary        `json:"summary"`
	Players     []model.RankedPlayer `json:"players"`
	Warnings    []model.Warning      `json:"warnings"`
	DroppedRows int                  `json:"dropped_rows"`
}

// HandleAnalyze handles POST /analyze multipart uploads. The file part
// must be named "file"; CSV and XLSX are accepted.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload_too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	runID, res, err := h.deps.Analyze(r.Context(), header.Filename, file)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, analyzeResponse{
		RunID:       runID,
		Filename:    header.Filename,
		Summary:     res.Summary,
		Players:     res.Players,
		Warnings:    res.Warnings,
		DroppedRows: res.Dropped,
	})
}
