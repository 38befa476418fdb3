package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/macrolog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiFieldErrors(c *fiber.Ctx, fieldErrors services.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fieldErrors,
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, err
	}
	return uint(value), nil
}

// parseDayQuery reads a YYYY-MM-DD query parameter; an absent parameter
// falls back to today in the handler's location.
func (handler *Handler) parseDayQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return handler.today(), nil
	}
	return services.ParseDay(raw)
}

func (handler *Handler) today() time.Time {
	return services.Day(time.Now(), handler.location)
}

func parseLimitQuery(c *fiber.Ctx, fallback int, max int) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}
