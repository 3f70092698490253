package handlers

import (
	"html/template"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keywordlens/internal/analysis"
	"keywordlens/internal/config"
	"keywordlens/internal/export"
	"keywordlens/internal/history"
	"keywordlens/internal/metrics"
	"keywordlens/internal/middleware"
	"keywordlens/internal/models"
	"keywordlens/internal/validation"
)

// DashboardHandler serves the single-page keyword dashboard.
type DashboardHandler struct {
	analyzer *analysis.Analyzer
	cfg      *config.Config
	log      *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(analyzer *analysis.Analyzer, cfg *config.Config, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{analyzer: analyzer, cfg: cfg, log: log}
}

// Index renders the dashboard with the session's history and no results.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	return h.render(c, middleware.History(c), "", nil, "")
}

// Analyze runs an analysis for the submitted keyword.
// An empty keyword re-renders the page without touching history.
func (h *DashboardHandler) Analyze(c fiber.Ctx) error {
	keyword := c.FormValue("keyword")
	hist := middleware.History(c)

	if validation.IsEmptyKeyword(keyword) {
		metrics.RecordSkipped()
		return h.render(c, hist, "", nil, "")
	}
	if valid, msg := validation.ValidateKeyword(keyword); !valid {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(keyword, hist)
	if err != nil {
		return err
	}
	metrics.ObserveAnalysis(time.Since(start))
	metrics.RecordKeywordLookup(keyword, models.OutcomeAnalyzed)

	if err := middleware.SaveAnalysis(c, result); err != nil {
		return err
	}

	h.log.Info("keyword analyzed",
		zap.String("analysis_id", result.ID.String()),
		zap.String("keyword", keyword),
		zap.Int("suggestions", len(result.Rows)),
	)

	return h.render(c, hist, keyword, result, "")
}

// ClearHistory empties the session's history.
func (h *DashboardHandler) ClearHistory(c fiber.Ctx) error {
	hist := middleware.History(c)
	hist.Clear()
	return h.render(c, hist, "", nil, "History cleared!")
}

// Export downloads the session's latest analysis as CSV.
func (h *DashboardHandler) Export(c fiber.Ctx) error {
	result, err := middleware.LastAnalysis(c)
	if err != nil {
		return err
	}
	if result == nil {
		return fiber.NewError(fiber.StatusNotFound, "Analyze a keyword before downloading the CSV.")
	}
	return SendCSV(c, result)
}

// SendCSV writes a as a CSV attachment named after its keyword.
func SendCSV(c fiber.Ctx, a *models.Analysis) error {
	data, err := export.CSV(a)
	if err != nil {
		return err
	}

	metrics.RecordExport()
	metrics.RecordKeywordLookup(a.Keyword, models.OutcomeExported)

	// Set directly: Ctx.Attachment applies filepath.Base and query-escapes the name.
	c.Set(fiber.HeaderContentDisposition, export.ContentDisposition(a.Keyword))
	c.Set(fiber.HeaderContentType, export.CSVContentType)
	return c.Send(data)
}

func (h *DashboardHandler) render(c fiber.Ctx, hist *history.History, keyword string, result *models.Analysis, flash string) error {
	data := fiber.Map{
		"Title":   "Dashboard",
		"History": hist.List(),
		"Keyword": keyword,
		"Flash":   flash,
	}

	if result != nil {
		chart, err := json.Marshal(export.BuildScatter(result))
		if err != nil {
			return err
		}
		data["Analysis"] = result
		data["Cards"] = MetricCards(result.Summary)
		data["Rows"] = TableRows(result)
		data["Columns"] = models.Columns
		// Marshal escapes <, > and & so the payload is safe inside <script>.
		data["ChartJSON"] = template.JS(chart)
	}

	return c.Render("index", MergeBranding(data, h.cfg))
}
