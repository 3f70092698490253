package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keywordlens/internal/analysis"
	"keywordlens/internal/db"
	"keywordlens/internal/handlers"
	"keywordlens/internal/handlers/api"
	"keywordlens/internal/middleware"
)

// RegisterRoutes registers all application routes.
// database may be nil when lookup telemetry is disabled.
func (s *Server) RegisterRoutes(database *db.DB, analyzer *analysis.Analyzer) {
	sessionMiddleware := middleware.NewSessionMiddleware(s.Log)

	dashboardHandler := handlers.NewDashboardHandler(analyzer, s.Cfg, s.Log)
	probeHandler := handlers.NewProbeHandler(database, s.Cfg)
	apiAnalysisHandler := api.NewAnalysisHandler(analyzer, s.Log)
	apiTextHandler := api.NewTextHandler(s.Cfg)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard
	s.App.Get("/", sessionMiddleware.LoadHistory, dashboardHandler.Index)
	s.App.Post("/analyze", sessionMiddleware.LoadHistory, dashboardHandler.Analyze)
	s.App.Post("/history/clear", sessionMiddleware.LoadHistory, dashboardHandler.ClearHistory)
	s.App.Get("/export", dashboardHandler.Export)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/analyze", sessionMiddleware.LoadHistory, apiAnalysisHandler.Analyze)
	apiGroup.Get("/suggestions", apiAnalysisHandler.Suggestions)
	apiGroup.Get("/history", sessionMiddleware.LoadHistory, apiAnalysisHandler.History)
	apiGroup.Delete("/history", sessionMiddleware.LoadHistory, apiAnalysisHandler.ClearHistory)
	apiGroup.Get("/export", apiAnalysisHandler.Export)

	// Text helpers answer 404 unless ENABLE_TEXT_ANALYSIS is set
	apiGroup.Post("/text/clean", apiTextHandler.Clean)
	apiGroup.Post("/text/polarity", apiTextHandler.Polarity)
}
