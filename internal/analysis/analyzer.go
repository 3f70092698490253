package analysis

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"keywordlens/internal/history"
	"keywordlens/internal/models"
	"keywordlens/internal/research"
)

// ErrEmptyKeyword is returned when Analyze is called without a keyword.
// Nothing is recorded or produced in that case.
var ErrEmptyKeyword = errors.New("keyword is empty")

// Analyzer turns a keyword into summary metrics and a suggestions table.
type Analyzer struct {
	gen research.Generator
	exp *research.Expander
	now func() time.Time
}

// New creates an analyzer.
func New(gen research.Generator, exp *research.Expander) *Analyzer {
	return &Analyzer{gen: gen, exp: exp, now: time.Now}
}

// Analyze records keyword in hist and builds its analysis. Every suggestion
// gets its own independent metrics draw, and rows keep suggestion order.
func (a *Analyzer) Analyze(keyword string, hist *history.History) (*models.Analysis, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	hist.Append(keyword)

	suggestions := a.exp.Expand(keyword)
	result := &models.Analysis{
		ID:        uuid.New(),
		Keyword:   keyword,
		Summary:   a.gen.Generate(keyword),
		Rows:      make([]models.AnalysisRow, 0, len(suggestions)),
		CreatedAt: a.now(),
	}
	for _, s := range suggestions {
		result.Rows = append(result.Rows, models.AnalysisRow{
			Keyword:        s,
			KeywordMetrics: a.gen.Generate(s),
		})
	}

	return result, nil
}

// Suggest returns the suggestions for keyword without generating metrics.
func (a *Analyzer) Suggest(keyword string) []string {
	return a.exp.Expand(keyword)
}
