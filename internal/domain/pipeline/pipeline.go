// Package pipeline composes validation, scoring, aggregation and ranking
// into one deterministic transform over an in-memory table.
package pipeline

import (
	"context"

	"github.com/samber/lo"

	"github.com/okian/hoopstat/internal/domain/aggregate"
	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/ranking"
	"github.com/okian/hoopstat/internal/domain/scoring"
	"github.com/okian/hoopstat/internal/domain/validate"
)

// Result is the complete outcome of one run. Players are ordered by rank.
type Result struct {
	Players  []model.RankedPlayer `json:"players"`
	Summary  model.Summary        `json:"summary"`
	Warnings []model.Warning      `json:"warnings"`
	Dropped  int                  `json:"dropped_rows"`
}

// Run executes the full transform: validate -> score -> aggregate -> rank.
//
// Any stage failure aborts the run with no partial result. Run holds no
// state between invocations; concurrent runs on different inputs never
// interfere. The context is accepted per project convention and reserved
// for future use (the transform itself is bounded and synchronous).
func Run(_ context.Context, t model.Table) (Result, error) {
	validated, err := validate.Table(t)
	if err != nil {
		return Result{}, err
	}
	if len(validated.Players) == 0 {
		return Result{}, &NoValidRecordsError{Dropped: validated.Dropped}
	}

	scored := lo.Map(validated.Players, func(s model.PlayerStat, _ int) model.ScoredPlayer {
		return scoring.Apply(s)
	})

	annotated := aggregate.Players(scored)

	return Result{
		Players:  ranking.Assign(annotated.Players),
		Summary:  annotated.Summary,
		Warnings: validated.Warnings,
		Dropped:  validated.Dropped,
	}, nil
}
