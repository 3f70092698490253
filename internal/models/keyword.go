package models

import (
	"time"

	"github.com/google/uuid"
)

// Column headers shared by the results table and the CSV export.
const (
	ColumnKeyword       = "Keyword"
	ColumnMonthlyVolume = "Monthly Volume"
	ColumnCompetition   = "Competition"
	ColumnDifficulty    = "Difficulty"
	ColumnCPC           = "CPC"
)

// Columns lists the table columns in display order.
var Columns = []string{ColumnKeyword, ColumnMonthlyVolume, ColumnCompetition, ColumnDifficulty, ColumnCPC}

// KeywordMetrics is one bundle of simulated signals for a keyword.
type KeywordMetrics struct {
	MonthlyVolume int     `json:"monthly_volume"`
	Competition   float64 `json:"competition"`
	Difficulty    float64 `json:"difficulty"`
	CPC           float64 `json:"cpc"`
}

// AnalysisRow is one table row: a suggestion and its metrics.
type AnalysisRow struct {
	Keyword string `json:"keyword"`
	KeywordMetrics
}

// Analysis is the output of one analyze action.
// Summary belongs to the primary keyword; Rows follow suggestion order.
type Analysis struct {
	ID        uuid.UUID      `json:"id"`
	Keyword   string         `json:"keyword"`
	Summary   KeywordMetrics `json:"summary"`
	Rows      []AnalysisRow  `json:"rows"`
	CreatedAt time.Time      `json:"created_at"`
}

// Suggestions returns the keywords of every row in order.
func (a *Analysis) Suggestions() []string {
	out := make([]string, len(a.Rows))
	for i, r := range a.Rows {
		out[i] = r.Keyword
	}
	return out
}

// VolumeBounds returns the smallest and largest monthly volume in the table.
func (a *Analysis) VolumeBounds() (lo, hi int) {
	for i, r := range a.Rows {
		if i == 0 || r.MonthlyVolume < lo {
			lo = r.MonthlyVolume
		}
		if i == 0 || r.MonthlyVolume > hi {
			hi = r.MonthlyVolume
		}
	}
	return lo, hi
}
