package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "catalog.yaml", cfg.CatalogFile)
	assert.False(t, cfg.EnableTextAnalysis)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("ENABLE_TEXT_ANALYSIS", "true")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("DATABASE_URL", "postgres://localhost/kw")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.True(t, cfg.EnableTextAnalysis)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
	assert.True(t, cfg.HasDatabase())
	assert.False(t, cfg.HasRedis())
}

func TestConfig_IsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.expected {
				t.Errorf("IsDev() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadCatalog_MissingFileReturnsDefaults(t *testing.T) {
	cat, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSuffixes, cat.Suffixes)
	assert.Equal(t, 1000, cat.Metrics.MonthlyVolume.Min)
	assert.Equal(t, 50000, cat.Metrics.MonthlyVolume.Max)
	assert.Equal(t, 5.0, cat.Metrics.CPC.Max)
}

func TestLoadCatalog_OverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("suffixes: [near me, price]\nmetrics:\n  cpc:\n    min: 1\n    max: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"near me", "price"}, cat.Suffixes)
	assert.Equal(t, FloatRange{Min: 1, Max: 2}, cat.Metrics.CPC)
	assert.Equal(t, IntRange{Min: 1000, Max: 50000}, cat.Metrics.MonthlyVolume)
}

func TestLoadCatalog_RejectsNonFiniteBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("metrics:\n  competition:\n    min: .nan\n    max: 1\n  cpc:\n    min: 0.5\n    max: .inf\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr bool
	}{
		{"defaults are valid", func(c *Catalog) {}, false},
		{"empty suffixes", func(c *Catalog) { c.Suffixes = nil }, true},
		{"inverted volume", func(c *Catalog) { c.Metrics.MonthlyVolume = IntRange{Min: 10, Max: 1} }, true},
		{"inverted cpc", func(c *Catalog) { c.Metrics.CPC = FloatRange{Min: 3, Max: 1} }, true},
		{"degenerate range", func(c *Catalog) { c.Metrics.Difficulty = FloatRange{Min: 5, Max: 5} }, false},
		{"nan competition", func(c *Catalog) { c.Metrics.Competition = FloatRange{Min: math.NaN(), Max: 1} }, true},
		{"infinite cpc", func(c *Catalog) { c.Metrics.CPC = FloatRange{Min: 0.5, Max: math.Inf(1)} }, true},
		{"negative infinite difficulty", func(c *Catalog) { c.Metrics.Difficulty = FloatRange{Min: math.Inf(-1), Max: 100} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := DefaultCatalog()
			tt.mutate(cat)
			err := cat.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultCatalog_DoesNotAliasDefaults(t *testing.T) {
	cat := DefaultCatalog()
	cat.Suffixes[0] = "changed"

	assert.Equal(t, "online", DefaultSuffixes[0])
}
