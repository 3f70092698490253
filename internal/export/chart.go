package export

import (
	"keywordlens/internal/models"
)

// ChartTitle is the title drawn inside the scatter figure.
const ChartTitle = "Keyword Analysis Matrix"

// Scatter is a plotly.js figure: x = Competition, y = Monthly Volume,
// marker size = CPC, marker color = Difficulty, hover = Keyword.
type Scatter struct {
	Data   []ScatterTrace `json:"data"`
	Layout ScatterLayout  `json:"layout"`
}

// ScatterTrace is a single marker trace.
type ScatterTrace struct {
	Type          string        `json:"type"`
	Mode          string        `json:"mode"`
	X             []float64     `json:"x"`
	Y             []int         `json:"y"`
	Text          []string      `json:"text"`
	HoverTemplate string        `json:"hovertemplate"`
	Marker        ScatterMarker `json:"marker"`
}

// ScatterMarker sizes points by CPC and colors them by Difficulty.
type ScatterMarker struct {
	Size       []float64      `json:"size"`
	SizeMode   string         `json:"sizemode"`
	SizeRef    float64        `json:"sizeref"`
	SizeMin    float64        `json:"sizemin"`
	Color      []float64      `json:"color"`
	ColorScale string         `json:"colorscale"`
	ShowScale  bool           `json:"showscale"`
	ColorBar   map[string]any `json:"colorbar"`
}

// ScatterLayout carries the title and axis labels.
type ScatterLayout struct {
	Title map[string]string `json:"title"`
	XAxis map[string]any    `json:"xaxis"`
	YAxis map[string]any    `json:"yaxis"`
}

// maxMarkerPx is the diameter of the largest marker.
const maxMarkerPx = 40

// BuildScatter builds the chart for an analysis' suggestions table.
func BuildScatter(a *models.Analysis) Scatter {
	n := len(a.Rows)
	trace := ScatterTrace{
		Type: "scatter",
		Mode: "markers",
		X:    make([]float64, n),
		Y:    make([]int, n),
		Text: make([]string, n),
		HoverTemplate: "<b>%{text}</b><br>" +
			models.ColumnCompetition + ": %{x}<br>" +
			models.ColumnMonthlyVolume + ": %{y}<br>" +
			models.ColumnCPC + ": %{marker.size}<br>" +
			models.ColumnDifficulty + ": %{marker.color:.1f}<extra></extra>",
		Marker: ScatterMarker{
			Size:       make([]float64, n),
			SizeMode:   "area",
			SizeMin:    4,
			Color:      make([]float64, n),
			ColorScale: "Plasma",
			ShowScale:  true,
			ColorBar:   map[string]any{"title": map[string]string{"text": models.ColumnDifficulty}},
		},
	}

	maxCPC := 0.0
	for i, row := range a.Rows {
		trace.X[i] = row.Competition
		trace.Y[i] = row.MonthlyVolume
		trace.Text[i] = row.Keyword
		trace.Marker.Size[i] = row.CPC
		trace.Marker.Color[i] = row.Difficulty
		if row.CPC > maxCPC {
			maxCPC = row.CPC
		}
	}
	trace.Marker.SizeRef = sizeRef(maxCPC)

	return Scatter{
		Data: []ScatterTrace{trace},
		Layout: ScatterLayout{
			Title: map[string]string{"text": ChartTitle},
			XAxis: map[string]any{"title": map[string]string{"text": models.ColumnCompetition}},
			YAxis: map[string]any{"title": map[string]string{"text": models.ColumnMonthlyVolume}},
		},
	}
}

// sizeRef follows plotly's area sizing rule so the largest CPC maps to maxMarkerPx.
func sizeRef(maxSize float64) float64 {
	if maxSize <= 0 {
		return 1
	}
	return 2 * maxSize / (maxMarkerPx * maxMarkerPx)
}
