package api

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"

	"keywordlens/internal/config"
	"keywordlens/internal/models"
	"keywordlens/internal/textanalysis"
)

// TextHandler exposes the free-text helpers when ENABLE_TEXT_ANALYSIS is set.
type TextHandler struct {
	cfg *config.Config
}

// NewTextHandler creates a new API text handler.
func NewTextHandler(cfg *config.Config) *TextHandler {
	return &TextHandler{cfg: cfg}
}

// Clean returns the non-stopword alphabetic tokens of the submitted text.
func (h *TextHandler) Clean(c fiber.Ctx) error {
	text, err := h.readText(c)
	if err != nil {
		return err
	}

	tokens, err := textanalysis.Clean(text)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return jsonSuccess(c, models.CleanTextResponse{Tokens: tokens})
}

// Polarity scores the submitted text.
func (h *TextHandler) Polarity(c fiber.Ctx) error {
	text, err := h.readText(c)
	if err != nil {
		return err
	}

	score, err := textanalysis.Polarity(text)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return jsonSuccess(c, models.PolarityResponse{Polarity: score})
}

// readText returns a *fiber.Error when the feature is off or the body is malformed.
func (h *TextHandler) readText(c fiber.Ctx) (string, error) {
	if !h.cfg.EnableTextAnalysis {
		return "", fiber.NewError(fiber.StatusNotFound, "text analysis is disabled")
	}

	var body models.TextRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return body.Text, nil
}
