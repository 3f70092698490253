package api

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keywordlens/internal/analysis"
	"keywordlens/internal/handlers"
	"keywordlens/internal/metrics"
	"keywordlens/internal/middleware"
	"keywordlens/internal/models"
	"keywordlens/internal/validation"
)

// AnalysisHandler handles keyword analysis via JSON API.
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	log      *zap.Logger
}

// NewAnalysisHandler creates a new API analysis handler.
func NewAnalysisHandler(analyzer *analysis.Analyzer, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, log: log}
}

// Analyze analyzes a keyword and returns the result with the updated history.
// An empty keyword answers 204 and leaves history untouched.
func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var body models.AnalyzeRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if validation.IsEmptyKeyword(body.Keyword) {
		metrics.RecordSkipped()
		return c.SendStatus(fiber.StatusNoContent)
	}
	if valid, msg := validation.ValidateKeyword(body.Keyword); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	hist := middleware.History(c)
	start := time.Now()
	result, err := h.analyzer.Analyze(body.Keyword, hist)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to analyze keyword")
	}
	metrics.ObserveAnalysis(time.Since(start))
	metrics.RecordKeywordLookup(body.Keyword, models.OutcomeAnalyzed)

	if err := middleware.SaveAnalysis(c, result); err != nil {
		h.log.Error("failed to store analysis in session", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to store analysis")
	}

	return jsonSuccess(c, models.AnalyzeResponse{
		Analysis: result,
		History:  hist.List(),
	})
}

// Suggestions returns the expanded variants of ?q= without generating metrics.
func (h *AnalysisHandler) Suggestions(c fiber.Ctx) error {
	q := c.Query("q")
	if validation.IsEmptyKeyword(q) {
		return jsonError(c, fiber.StatusBadRequest, "q is required")
	}
	if valid, msg := validation.ValidateKeyword(q); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	return jsonSuccess(c, models.SuggestionsResponse{
		Keyword:     q,
		Suggestions: h.analyzer.Suggest(q),
	})
}

// History returns the session's analyzed keywords.
func (h *AnalysisHandler) History(c fiber.Ctx) error {
	return jsonSuccess(c, models.HistoryResponse{History: middleware.History(c).List()})
}

// ClearHistory empties the session's history.
func (h *AnalysisHandler) ClearHistory(c fiber.Ctx) error {
	hist := middleware.History(c)
	hist.Clear()
	return jsonSuccess(c, models.HistoryResponse{History: hist.List()})
}

// Export downloads the session's latest analysis as CSV.
func (h *AnalysisHandler) Export(c fiber.Ctx) error {
	result, err := middleware.LastAnalysis(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load analysis")
	}
	if result == nil {
		return jsonError(c, fiber.StatusNotFound, "no analysis to export")
	}
	return handlers.SendCSV(c, result)
}
