// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/okian/hoopstat/internal/domain/model"
)

// handleChart renders the run's score distribution as a standalone
// go-echarts HTML page for quick visual review without a frontend.
func (h *RunsHandler) handleChart(w http.ResponseWriter, r *http.Request, runID string) {
	summary, err := h.deps.Summary(r.Context(), runID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	labels := lo.Map(summary.ScoreDistribution, func(b model.Bucket, _ int) string {
		return b.Label
	})
	data := lo.Map(summary.ScoreDistribution, func(b model.Bucket, _ int) opts.BarData {
		return opts.BarData{Value: b.Count}
	})

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Score distribution",
			Subtitle: fmt.Sprintf("%d players, top scorer %s (%.2f)",
				summary.TotalPlayers, summary.TopScorer, summary.HighestScore),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "score band"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "players"}),
	)
	bar.SetXAxis(labels).AddSeries("players", data)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(w); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
