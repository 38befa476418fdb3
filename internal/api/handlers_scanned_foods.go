package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/models"
)

const (
	defaultScannedLimit = 50
	maxScannedLimit     = 200
)

func (handler *Handler) ListMyScannedFoods(c *fiber.Ctx) error {
	user := currentUser(c)
	limit := parseLimitQuery(c, defaultScannedLimit, maxScannedLimit)

	foods, err := handler.repos.ScannedFoods.ListByUser(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load scanned foods")
	}
	return c.JSON(foods)
}

func (handler *Handler) GetScannedFood(c *fiber.Ctx) error {
	user := currentUser(c)

	scannedID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid scanned food id")
	}

	food, err := handler.repos.ScannedFoods.FindByUserAndID(user.ID, scannedID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "scanned food not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load scanned food")
	}
	return c.JSON(food)
}

func (handler *Handler) DeleteScannedFood(c *fiber.Ctx) error {
	user := currentUser(c)

	scannedID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid scanned food id")
	}

	deleted, err := handler.repos.ScannedFoods.Delete(user.ID, scannedID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete scanned food")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "scanned food not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ConvertScannedFood promotes a scanned food into the shared food database
// using its per-100g values; absent values become 0.
func (handler *Handler) ConvertScannedFood(c *fiber.Ctx) error {
	user := currentUser(c)

	scannedID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid scanned food id")
	}

	scanned, err := handler.repos.ScannedFoods.FindByUserAndID(user.ID, scannedID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "scanned food not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load scanned food")
	}

	food := models.Food{
		Name:           scanned.Name,
		CaloriesPer100: floatOrZero(scanned.CaloriesPer100),
		ProteinPer100:  floatOrZero(scanned.ProteinPer100),
		CarbsPer100:    floatOrZero(scanned.CarbsPer100),
		FatPer100:      floatOrZero(scanned.FatPer100),
		CreatedByID:    &user.ID,
	}
	if err := handler.repos.Foods.Create(&food); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save food")
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
