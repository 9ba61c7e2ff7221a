// Package validate turns raw heterogeneous input cells into clean numeric
// stat lines. It is the single point of coercion: later stages never see
// raw cells.
package validate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/hoopstat/internal/domain/model"
)

// Result carries the validated rows plus everything recovered along the way.
type Result struct {
	Players  []model.PlayerStat
	Warnings []model.Warning
	Dropped  int
}

// Table checks the schema and coerces every row of t.
//
// Policy:
//   - any required column absent from the header aborts with *SchemaError;
//   - a blank or missing Name drops the row with a missing_name warning;
//   - an unparsable stat cell coerces to 0 with an invalid_value warning;
//   - a negative stat clamps to 0 with a negative_value warning.
//
// Row order is preserved; it is the tie-break order for every later stage.
func Table(t model.Table) (Result, error) {
	if missing := missingColumns(t.Columns); len(missing) > 0 {
		return Result{}, &SchemaError{Missing: missing}
	}

	res := Result{Players: make([]model.PlayerStat, 0, len(t.Rows))}
	for i, row := range t.Rows {
		name := cellText(row[model.ColumnName])
		if name == "" {
			res.Dropped++
			res.Warnings = append(res.Warnings, model.Warning{
				Kind: model.WarnMissingName,
				Row:  i,
			})
			continue
		}

		stat := model.PlayerStat{Name: name}
		for _, col := range model.StatColumns {
			v, warn := coerce(row[col])
			if warn != "" {
				res.Warnings = append(res.Warnings, model.Warning{
					Kind:   warn,
					Row:    i,
					Field:  col,
					Player: name,
				})
			}
			switch col {
			case model.ColumnPoints:
				stat.Points = v
			case model.ColumnAssists:
				stat.Assists = v
			case model.ColumnRebounds:
				stat.Rebounds = v
			case model.ColumnSteals:
				stat.Steals = v
			case model.ColumnTurnovers:
				stat.Turnovers = v
			}
		}
		res.Players = append(res.Players, stat)
	}
	return res, nil
}

// missingColumns returns required columns absent from header, sorted for
// a stable error message.
func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, c := range header {
		present[strings.TrimSpace(c)] = true
	}
	var missing []string
	for _, c := range append([]string{model.ColumnName}, model.StatColumns...) {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	sort.Strings(missing)
	return missing
}

// coerce converts one raw stat cell to a non-negative float. The second
// return names the warning to emit, or "" when the cell was clean.
func coerce(c model.CellValue) (float64, model.WarningKind) {
	var v float64
	switch c.Kind {
	case model.CellNumber:
		v = c.Number
	case model.CellText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, model.WarnInvalidValue
		}
		v = f
	case model.CellMissing:
		return 0, model.WarnInvalidValue
	default:
		return 0, model.WarnInvalidValue
	}
	if v < 0 {
		return 0, model.WarnNegativeValue
	}
	return v, ""
}

func cellText(c model.CellValue) string {
	switch c.Kind {
	case model.CellText:
		return strings.TrimSpace(c.Text)
	case model.CellNumber:
		return strings.TrimSpace(strconv.FormatFloat(c.Number, 'f', -1, 64))
	default:
		return ""
	}
}
