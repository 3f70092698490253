package handlers

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"keywordlens/internal/models"
)

// MetricCard is one labelled summary figure.
type MetricCard struct {
	Label string
	Value string
}

// TableRow is an AnalysisRow formatted for display, with the volume cell's gradient colors.
type TableRow struct {
	Keyword       string
	MonthlyVolume string
	Competition   string
	Difficulty    string
	CPC           string
	VolumeBG      string
	VolumeFG      string
}

// MetricCards formats the summary bundle for the four metric cards.
func MetricCards(m models.KeywordMetrics) []MetricCard {
	return []MetricCard{
		{Label: models.ColumnMonthlyVolume, Value: humanize.Comma(int64(m.MonthlyVolume))},
		{Label: models.ColumnCompetition, Value: fmt.Sprintf("%.2f", m.Competition)},
		{Label: models.ColumnDifficulty, Value: fmt.Sprintf("%.1f", m.Difficulty)},
		{Label: models.ColumnCPC, Value: fmt.Sprintf("$%.2f", m.CPC)},
	}
}

// TableRows formats every row and shades Monthly Volume from light to dark blue.
func TableRows(a *models.Analysis) []TableRow {
	lo, hi := a.VolumeBounds()
	rows := make([]TableRow, len(a.Rows))
	for i, r := range a.Rows {
		bg, fg := blues(r.MonthlyVolume, lo, hi)
		rows[i] = TableRow{
			Keyword:       r.Keyword,
			MonthlyVolume: humanize.Comma(int64(r.MonthlyVolume)),
			Competition:   fmt.Sprintf("%.2f", r.Competition),
			Difficulty:    fmt.Sprintf("%.1f", r.Difficulty),
			CPC:           fmt.Sprintf("$%.2f", r.CPC),
			VolumeBG:      bg,
			VolumeFG:      fg,
		}
	}
	return rows
}

// blues interpolates between the ends of a sequential blue scale.
func blues(v, lo, hi int) (bg, fg string) {
	t := 0.0
	if hi > lo {
		t = float64(v-lo) / float64(hi-lo)
	}

	from := [3]float64{0xf7, 0xfb, 0xff}
	to := [3]float64{0x08, 0x30, 0x6b}
	var rgb [3]int
	for i := range rgb {
		rgb[i] = int(from[i] + (to[i]-from[i])*t + 0.5)
	}

	fg = "#000000"
	if t > 0.5 {
		fg = "#ffffff"
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), fg
}
