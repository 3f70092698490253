package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSuffixes are appended to a keyword to build its suggestions, in order.
var DefaultSuffixes = []string{"online", "best", "buy", "cheap", "review", "tutorial", "guide", "top"}

// Catalog represents the structure of the catalog.yaml file.
// Suffix words and metric ranges are easier to tune in YAML than in env vars.
type Catalog struct {
	Suffixes []string     `yaml:"suffixes"`
	Metrics  MetricRanges `yaml:"metrics"`
}

// MetricRanges bounds every simulated metric.
type MetricRanges struct {
	MonthlyVolume IntRange   `yaml:"monthly_volume"` // inclusive on both ends
	Competition   FloatRange `yaml:"competition"`    // [min, max)
	Difficulty    FloatRange `yaml:"difficulty"`     // [min, max)
	CPC           FloatRange `yaml:"cpc"`            // rounded to cents
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a half-open float interval.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultCatalog returns the built-in suffixes and ranges.
func DefaultCatalog() *Catalog {
	suffixes := make([]string, len(DefaultSuffixes))
	copy(suffixes, DefaultSuffixes)

	return &Catalog{
		Suffixes: suffixes,
		Metrics: MetricRanges{
			MonthlyVolume: IntRange{Min: 1000, Max: 50000},
			Competition:   FloatRange{Min: 0.1, Max: 1.0},
			Difficulty:    FloatRange{Min: 1, Max: 100},
			CPC:           FloatRange{Min: 0.5, Max: 5.0},
		},
	}
}

// LoadCatalog loads the catalog file at path on top of the defaults.
// Returns the defaults without error if the file doesn't exist.
func LoadCatalog(path string) (*Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalog file is optional
			return cat, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Validate checks that the catalog can drive the generators.
func (c *Catalog) Validate() error {
	if len(c.Suffixes) == 0 {
		return errors.New("catalog: at least one suffix is required")
	}

	m := c.Metrics
	if m.MonthlyVolume.Min > m.MonthlyVolume.Max {
		return fmt.Errorf("catalog: monthly_volume min %d exceeds max %d", m.MonthlyVolume.Min, m.MonthlyVolume.Max)
	}
	for name, r := range map[string]FloatRange{
		"competition": m.Competition,
		"difficulty":  m.Difficulty,
		"cpc":         m.CPC,
	} {
		if !isFinite(r.Min) || !isFinite(r.Max) {
			return fmt.Errorf("catalog: %s bounds must be finite numbers", name)
		}
		if r.Min > r.Max {
			return fmt.Errorf("catalog: %s min %g exceeds max %g", name, r.Min, r.Max)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
