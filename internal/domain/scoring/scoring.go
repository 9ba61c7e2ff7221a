// Package scoring computes the weighted performance score for one player.
package scoring

import (
	"math"

	"github.com/okian/hoopstat/internal/domain/model"
)

// Weights of the performance formula. Fixed at build time; turnovers
// carry a negative weight because they hurt performance.
const (
	PointsWeight    = 1.0
	AssistsWeight   = 1.5
	ReboundsWeight  = 1.2
	StealsWeight    = 2.0
	TurnoversWeight = -1.0
)

// Contribution category names used for strength derivation.
const (
	CategoryScoring    = "Scoring"
	CategoryPlaymaking = "Playmaking"
	CategoryRebounding = "Rebounding"
	CategoryDefense    = "Defense"
)

// CategoryPriority is the fixed tie-break order for strength derivation.
// Equal contributions resolve to the earlier category.
var CategoryPriority = []string{
	CategoryScoring,
	CategoryPlaymaking,
	CategoryRebounding,
	CategoryDefense,
}

// Score applies the weighted formula to one validated stat line:
//
//	Points*1.0 + Assists*1.5 + Rebounds*1.2 + Steals*2.0 - Turnovers*1.0
//
// The result is rounded to 2 decimals, half away from zero. Pure function:
// no state, no dependency on other players.
func Score(s model.PlayerStat) float64 {
	raw := s.Points*PointsWeight +
		s.Assists*AssistsWeight +
		s.Rebounds*ReboundsWeight +
		s.Steals*StealsWeight +
		s.Turnovers*TurnoversWeight
	return Round2(raw)
}

// Apply returns the stat line annotated with its score.
func Apply(s model.PlayerStat) model.ScoredPlayer {
	return model.ScoredPlayer{PlayerStat: s, Score: Score(s)}
}

// Contribution returns the weighted contribution of one category.
// Turnovers are excluded: they never count as a strength.
func Contribution(s model.PlayerStat, category string) float64 {
	switch category {
	case CategoryScoring:
		return s.Points * PointsWeight
	case CategoryPlaymaking:
		return s.Assists * AssistsWeight
	case CategoryRebounding:
		return s.Rebounds * ReboundsWeight
	case CategoryDefense:
		return s.Steals * StealsWeight
	}
	return 0
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
