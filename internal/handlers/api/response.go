package api

import (
	"github.com/gofiber/fiber/v3"
)

// envelope is the body of every JSON API response.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Status: "ok", Data: data})
}

func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Status: "error", Error: message})
}
