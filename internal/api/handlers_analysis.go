package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

const defaultUsageWindowDays = 30

// AnalyzeImage runs one food-image analysis attempt. An unidentified food is
// a normal outcome (200 with a failed analysis); only pipeline errors answer
// 500, and even those leave a terminal analysis row behind.
func (handler *Handler) AnalyzeImage(c *fiber.Ctx) error {
	user := currentUser(c)

	input := analyzeImageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	image, format, fieldErrors := services.DecodeImagePayload(input.ImageData, input.ImageFormat)
	if fieldErrors != nil {
		return apiFieldErrors(c, fieldErrors)
	}

	outcome, err := handler.analysis.Analyze(c.Context(), user.ID, image, format)
	if errors.Is(err, services.ErrAnalysisUnavailable) {
		return apiError(c, fiber.StatusServiceUnavailable, "image analysis is not configured")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze image")
	}

	payload := fiber.Map{"analysis": outcome.Analysis}
	if outcome.ScannedFood != nil {
		payload["scanned_food"] = outcome.ScannedFood
	}
	if outcome.Analysis.Status == models.AnalysisError {
		return c.Status(fiber.StatusInternalServerError).JSON(payload)
	}
	return c.JSON(payload)
}

func (handler *Handler) ListAnalyses(c *fiber.Ctx) error {
	user := currentUser(c)
	analyses, err := handler.repos.Analyses.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load analyses")
	}
	return c.JSON(analyses)
}

func (handler *Handler) GetAnalysis(c *fiber.Ctx) error {
	user := currentUser(c)

	analysisID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid analysis id")
	}

	analysis, err := handler.repos.Analyses.FindByUserAndID(user.ID, analysisID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "analysis not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load analysis")
	}
	return c.JSON(analysis)
}

func (handler *Handler) AnalysisStats(c *fiber.Ctx) error {
	user := currentUser(c)
	stats, err := handler.analysis.Stats(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) UsageByDate(c *fiber.Ctx) error {
	user := currentUser(c)

	days := defaultUsageWindowDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return apiError(c, fiber.StatusBadRequest, "days must be a positive integer")
		}
		days = parsed
	}

	report, err := handler.analysis.Usage(user.ID, days)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load usage")
	}
	return c.JSON(report)
}
