// Package export serializes ranked runs for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/hoopstat/internal/domain/model"
)

// Header is the fixed export column order.
var Header = []string{
	"Rank", "Name", "Points", "Assists", "Rebounds", "Steals", "Turnovers",
	"Performance Score",
}

// CSV writes the ranked players in rank order. Scores keep exactly two
// decimals so a re-parse reproduces the Name -> Score mapping; raw stats
// use the shortest exact representation.
func CSV(w io.Writer, players []model.RankedPlayer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, p := range players {
		row := []string{
			strconv.Itoa(p.Rank),
			p.Name,
			formatStat(p.Points),
			formatStat(p.Assists),
			formatStat(p.Rebounds),
			formatStat(p.Steals),
			formatStat(p.Turnovers),
			strconv.FormatFloat(p.Score, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

func formatStat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
