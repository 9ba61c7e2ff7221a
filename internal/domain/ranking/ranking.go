// Package ranking orders one run's players and assigns dense ranks.
package ranking

import (
	"sort"

	"github.com/okian/hoopstat/internal/domain/model"
)

// Assign sorts players by score descending and writes dense 1-based
// ranks. The sort is stable: equal scores keep their validated-input
// order, and tied players still receive distinct sequential ranks.
// The input slice is not mutated; a fresh slice is returned.
func Assign(players []model.RankedPlayer) []model.RankedPlayer {
	ranked := append([]model.RankedPlayer(nil), players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
