package middleware

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"go.uber.org/zap"

	"keywordlens/internal/history"
	"keywordlens/internal/models"
)

// Session keys. Values are stored as JSON strings so any session storage can hold them.
const (
	historyKey      = "history"
	lastAnalysisKey = "last_analysis"
)

const localsHistory = "history"

// SessionMiddleware binds per-session state to each request.
type SessionMiddleware struct {
	log *zap.Logger
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(log *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{log: log}
}

// LoadHistory decodes the session's search history into the request locals and
// writes it back to the session once the handler has finished. A handler that
// returns an error leaves the stored history untouched.
func (m *SessionMiddleware) LoadHistory(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	raw, _ := sess.Get(historyKey).(string)
	h, err := history.Decode(raw)
	if err != nil {
		m.log.Warn("discarding unreadable session history", zap.Error(err))
		h = history.New()
		raw = ""
	}
	c.Locals(localsHistory, h)

	if err := c.Next(); err != nil {
		return err
	}

	if raw == "" && h.Len() == 0 {
		return nil
	}
	encoded, err := h.Encode()
	if err != nil {
		m.log.Error("failed to store session history", zap.Error(err))
		return nil
	}
	if encoded != raw {
		sess.Set(historyKey, encoded)
	}
	return nil
}

// History returns the history attached by LoadHistory.
// Routes without LoadHistory get a detached empty history.
func History(c fiber.Ctx) *history.History {
	if h, ok := c.Locals(localsHistory).(*history.History); ok {
		return h
	}
	return history.New()
}

// SaveAnalysis keeps a as the session's most recent analysis for export.
func SaveAnalysis(c fiber.Ctx, a *models.Analysis) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	sess.Set(lastAnalysisKey, string(data))
	return nil
}

// LastAnalysis returns the session's most recent analysis, or nil if there is none.
func LastAnalysis(c fiber.Ctx) (*models.Analysis, error) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, nil
	}

	raw, _ := sess.Get(lastAnalysisKey).(string)
	if raw == "" {
		return nil, nil
	}

	var a models.Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
