package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(envelope{Success: true, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Success: false, Message: message})
}

// writeError maps service errors onto status codes. Anything unexpected is
// logged and reported as a bare 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrPartNotFound):
		return fail(c, fiber.StatusNotFound, "Part not found")
	case errors.Is(err, models.ErrBuildNotFound):
		return fail(c, fiber.StatusNotFound, "Build not found")
	case errors.Is(err, models.ErrPartFieldsRequired):
		return fail(c, fiber.StatusBadRequest, "Name, price and type are required")
	case errors.Is(err, models.ErrUnknownPartType):
		return fail(c, fiber.StatusBadRequest, "Unknown part type")
	case errors.Is(err, models.ErrInvalidArgument):
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	default:
		log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
