package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Database (optional, only used for aggregate lookup telemetry)
	DatabaseURL string

	// Session
	RedisURL           string // Empty keeps sessions in process memory
	SessionSecret      string // Used for signing cookies (min 32 chars)
	SessionIdleTimeout time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"
	LogFile   string // Empty logs to stdout only

	// Telemetry retention
	LookupRetention time.Duration
	PruneInterval   time.Duration

	// Features
	EnableTextAnalysis bool // Expose /api/text/* helpers

	// Catalog of suffixes and metric ranges
	CatalogFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Advanced Keyword Analyzer"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_ADDR", ":3000")
	v.SetDefault("BASE_URL", "http://localhost:3000")
	v.SetDefault("VIEWS_DIR", "./views")
	v.SetDefault("STATIC_DIR", "./static")
	v.SetDefault("SESSION_SECRET", "change-me-in-production-min-32-chars")
	v.SetDefault("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOOKUP_RETENTION", 90*24*time.Hour)
	v.SetDefault("PRUNE_INTERVAL", time.Hour)
	v.SetDefault("CATALOG_FILE", "catalog.yaml")
	v.SetDefault("SITE_TITLE", "Advanced Keyword Analyzer")
	v.SetDefault("SITE_TAGLINE", "Simulated keyword research at a glance")
	v.SetDefault("SITE_FOOTER", "Keyword Analyzer - metrics are simulated")

	return &Config{
		Env:                v.GetString("ENV"),
		ServerAddr:         v.GetString("SERVER_ADDR"),
		BaseURL:            v.GetString("BASE_URL"),
		ViewsDir:           v.GetString("VIEWS_DIR"),
		StaticDir:          v.GetString("STATIC_DIR"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisURL:           v.GetString("REDIS_URL"),
		SessionSecret:      v.GetString("SESSION_SECRET"),
		SessionIdleTimeout: v.GetDuration("SESSION_IDLE_TIMEOUT"),
		CORSOrigins:        v.GetString("CORS_ORIGINS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		LogFile:            v.GetString("LOG_FILE"),
		LookupRetention:    v.GetDuration("LOOKUP_RETENTION"),
		PruneInterval:      v.GetDuration("PRUNE_INTERVAL"),
		EnableTextAnalysis: v.GetBool("ENABLE_TEXT_ANALYSIS"),
		CatalogFile:        v.GetString("CATALOG_FILE"),

		SiteTitle:   v.GetString("SITE_TITLE"),
		SiteTagline: v.GetString("SITE_TAGLINE"),
		SiteFooter:  v.GetString("SITE_FOOTER"),
		SiteLogoURL: v.GetString("SITE_LOGO_URL"),
	}
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasDatabase reports whether lookup telemetry should be persisted.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis reports whether sessions should be stored in Redis.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}
