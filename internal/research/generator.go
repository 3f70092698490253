// Package research produces keyword metrics and keyword suggestions.
//
// The metrics are simulated: every field is drawn uniformly from its configured
// range and the keyword has no influence on the draw. A real data source only
// needs to satisfy Generator.
package research

import (
	"math"
	"math/rand/v2"
	"sync"

	"keywordlens/internal/config"
	"keywordlens/internal/models"
)

// Generator produces a metrics bundle for a keyword.
type Generator interface {
	Generate(keyword string) models.KeywordMetrics
}

// RandomGenerator draws every metric independently on every call.
type RandomGenerator struct {
	ranges config.MetricRanges

	mu  sync.Mutex
	rng *rand.Rand // nil uses the package-level source
}

// NewRandomGenerator creates a generator bounded by ranges.
// A nil rng draws from the process-wide source.
func NewRandomGenerator(ranges config.MetricRanges, rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{ranges: ranges, rng: rng}
}

// Generate returns a fresh metrics bundle. The keyword is ignored.
func (g *RandomGenerator) Generate(_ string) models.KeywordMetrics {
	if g.rng != nil {
		// *rand.Rand is not safe for concurrent use
		g.mu.Lock()
		defer g.mu.Unlock()
	}

	r := g.ranges
	return models.KeywordMetrics{
		MonthlyVolume: g.intBetween(r.MonthlyVolume.Min, r.MonthlyVolume.Max),
		Competition:   g.uniform(r.Competition.Min, r.Competition.Max),
		Difficulty:    g.uniform(r.Difficulty.Min, r.Difficulty.Max),
		CPC:           roundCents(g.uniform(r.CPC.Min, r.CPC.Max)),
	}
}

// intBetween returns an int in [lo, hi].
func (g *RandomGenerator) intBetween(lo, hi int) int {
	n := hi - lo + 1
	if g.rng != nil {
		return lo + g.rng.IntN(n)
	}
	return lo + rand.IntN(n)
}

// uniform returns a float in [lo, hi), or lo when the range is empty.
func (g *RandomGenerator) uniform(lo, hi float64) float64 {
	var f float64
	if g.rng != nil {
		f = g.rng.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + f*(hi-lo)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
