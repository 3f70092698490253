package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"keywordlens/internal/config"
	"keywordlens/internal/db"
)

const readinessTimeout = 2 * time.Second

// ProbeHandler serves the liveness and readiness probes.
type ProbeHandler struct {
	db  *db.DB // nil when lookup telemetry is disabled
	cfg *config.Config
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(database *db.DB, cfg *config.Config) *ProbeHandler {
	return &ProbeHandler{db: database, cfg: cfg}
}

// Liveness handles /healthz. It only proves the process is serving.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles /readyz and reports each backing component.
// Analysis itself needs nothing, so only a configured but unreachable database fails it.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	checks := fiber.Map{
		"database": "disabled",
		"sessions": "memory",
	}
	if h.cfg.HasRedis() {
		checks["sessions"] = "redis"
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unavailable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
				"checks": checks,
			})
		}
		checks["database"] = "ok"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": checks,
	})
}
