// Package aggregate derives dataset-wide statistics and per-player labels
// from one run's scored players.
package aggregate

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/scoring"
)

// Tier thresholds as multiples of the dataset mean. Inclusive lower
// bounds, checked top down; first match wins.
const (
	eliteFactor   = 1.25
	strongFactor  = 1.05
	averageFactor = 0.85
)

// Histogram bucket labels. The lowest bucket also absorbs negative
// totals; the highest is unbounded above.
var bucketLabels = []string{"0-30", "30-40", "40-50", "50-60", "60+"}

// bucketFloors are the inclusive lower bounds of buckets 1..4.
var bucketFloors = []float64{30, 40, 50, 60}

const maxStrengths = 2

// Annotated pairs each player with its derived labels, rank still unset.
type Annotated struct {
	Players []model.RankedPlayer
	Summary model.Summary
}

// Players computes the summary and per-player tier/strength labels over
// all scored players of one run. Input order is the tie-break order for
// top scorer and category leaders. Scored must be non-empty; the
// orchestrator rejects empty runs before this stage.
//
// The mean stays unrounded for tier comparisons and is rounded to 2
// decimals only in the reported summary.
func Players(scored []model.ScoredPlayer) Annotated {
	scores := lo.Map(scored, func(p model.ScoredPlayer, _ int) float64 { return p.Score })
	avg := stat.Mean(scores, nil)

	annotated := lo.Map(scored, func(p model.ScoredPlayer, _ int) model.RankedPlayer {
		return model.RankedPlayer{
			ScoredPlayer: p,
			Tier:         tierOf(p.Score, avg),
			Strengths:    strengthsOf(p.PlayerStat),
		}
	})

	return Annotated{
		Players: annotated,
		Summary: model.Summary{
			HighestScore:      floats.Max(scores),
			LowestScore:       floats.Min(scores),
			AverageScore:      scoring.Round2(avg),
			TopScorer:         scored[argmax(scores)].Name,
			TotalPlayers:      len(scored),
			CategoryLeaders:   leaders(scored),
			ScoreDistribution: distribution(scores),
		},
	}
}

// tierOf labels a score relative to the unrounded dataset mean.
func tierOf(score, avg float64) model.Tier {
	switch {
	case score >= eliteFactor*avg:
		return model.TierElite
	case score >= strongFactor*avg:
		return model.TierStrong
	case score >= averageFactor*avg:
		return model.TierAverage
	default:
		return model.TierDeveloping
	}
}

// strengthsOf picks the top categories by weighted contribution. The sort
// is stable over scoring.CategoryPriority, so ties resolve to the
// higher-priority category and output stays reproducible.
func strengthsOf(s model.PlayerStat) []string {
	ranked := append([]string(nil), scoring.CategoryPriority...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoring.Contribution(s, ranked[i]) > scoring.Contribution(s, ranked[j])
	})
	return ranked[:maxStrengths]
}

// leaders finds the max holder of each raw stat category. First
// occurrence wins ties, so the strict > comparison is load-bearing.
func leaders(scored []model.ScoredPlayer) map[string]model.Leader {
	categories := map[string]func(model.PlayerStat) float64{
		model.ColumnPoints:   func(s model.PlayerStat) float64 { return s.Points },
		model.ColumnAssists:  func(s model.PlayerStat) float64 { return s.Assists },
		model.ColumnRebounds: func(s model.PlayerStat) float64 { return s.Rebounds },
		model.ColumnSteals:   func(s model.PlayerStat) float64 { return s.Steals },
	}
	out := make(map[string]model.Leader, len(categories))
	for cat, get := range categories {
		best := model.Leader{Name: scored[0].Name, Value: get(scored[0].PlayerStat)}
		for _, p := range scored[1:] {
			if v := get(p.PlayerStat); v > best.Value {
				best = model.Leader{Name: p.Name, Value: v}
			}
		}
		out[cat] = best
	}
	return out
}

// distribution buckets every score into the five fixed bands, reporting
// empty buckets as zero counts.
func distribution(scores []float64) []model.Bucket {
	counts := make([]int, len(bucketLabels))
	for _, s := range scores {
		counts[bucketIndex(s)]++
	}
	return lo.Map(bucketLabels, func(label string, i int) model.Bucket {
		return model.Bucket{Label: label, Count: counts[i]}
	})
}

func bucketIndex(score float64) int {
	idx := 0
	for i, floor := range bucketFloors {
		if score >= floor {
			idx = i + 1
		}
	}
	return idx
}

// argmax returns the index of the first maximum.
func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
