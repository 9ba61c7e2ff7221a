// Package model contains domain models passed between pipeline stages.
package model

// Stat column names expected in the input table. Exact string match.
const (
	ColumnName      = "Name"
	ColumnPoints    = "Points"
	ColumnAssists   = "Assists"
	ColumnRebounds  = "Rebounds"
	ColumnSteals    = "Steals"
	ColumnTurnovers = "Turnovers"
)

// StatColumns lists the five numeric stat columns in canonical order.
var StatColumns = []string{
	ColumnPoints,
	ColumnAssists,
	ColumnRebounds,
	ColumnSteals,
	ColumnTurnovers,
}

// CellKind discriminates the raw cell sum type.
type CellKind int

// Cell kinds. Missing covers absent keys and truly empty cells.
const (
	CellMissing CellKind = iota
	CellText
	CellNumber
)

// CellValue is an untyped input cell. Only the validator inspects it;
// later stages never see raw cells.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Text cell constructor.
func TextCell(s string) CellValue { return CellValue{Kind: CellText, Text: s} }

// NumberCell constructs a numeric cell.
func NumberCell(f float64) CellValue { return CellValue{Kind: CellNumber, Number: f} }

// MissingCell constructs an absent/empty cell.
func MissingCell() CellValue { return CellValue{Kind: CellMissing} }

// RawRecord maps a column name to its untyped cell for one input row.
type RawRecord map[string]CellValue

// Table is the boundary structure handed over by the ingest collaborator.
// Columns carries the header in file order; Rows preserves file row order.
type Table struct {
	Columns []string
	Rows    []RawRecord
}

// PlayerStat is one validated row: non-empty trimmed name and
// non-negative numeric stats (invalid inputs coerced to zero upstream).
type PlayerStat struct {
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	Assists   float64 `json:"assists"`
	Rebounds  float64 `json:"rebounds"`
	Steals    float64 `json:"steals"`
	Turnovers float64 `json:"turnovers"`
}

// ScoredPlayer is a PlayerStat with its performance score, computed once.
type ScoredPlayer struct {
	PlayerStat
	Score float64 `json:"score"`
}

// Tier labels a player's score relative to the dataset mean.
type Tier string

// Tier labels in descending order.
const (
	TierElite      Tier = "Elite"
	TierStrong     Tier = "Strong"
	TierAverage    Tier = "Average"
	TierDeveloping Tier = "Developing"
)

// RankedPlayer is the final per-player shape: dense 1-based rank plus
// derived labels. Built once per pipeline run, never mutated afterward.
type RankedPlayer struct {
	ScoredPlayer
	Rank      int      `json:"rank"`
	Tier      Tier     `json:"tier"`
	Strengths []string `json:"strengths"`
}

// Leader identifies the max holder of one stat category.
type Leader struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Bucket is one bar of the score distribution histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates one pipeline run.
type Summary struct {
	HighestScore      float64           `json:"highest_score"`
	LowestScore       float64           `json:"lowest_score"`
	AverageScore      float64           `json:"average_score"`
	TopScorer         string            `json:"top_scorer"`
	TotalPlayers      int               `json:"total_players"`
	CategoryLeaders   map[string]Leader `json:"category_leaders"`
	ScoreDistribution []Bucket          `json:"score_distribution"`
}

// WarningKind discriminates per-row advisory warnings.
type WarningKind string

// Warning kinds. None of these abort a run.
const (
	WarnInvalidValue  WarningKind = "invalid_value"
	WarnNegativeValue WarningKind = "negative_value"
	WarnMissingName   WarningKind = "missing_name"
)

// Warning records one recovered anomaly: which row, which field, whose.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Row    int         `json:"row"`
	Field  string      `json:"field,omitempty"`
	Player string      `json:"player,omitempty"`
}
