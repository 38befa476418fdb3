package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

func (handler *Handler) ListFoods(c *fiber.Ctx) error {
	foods, err := handler.repos.Foods.ListVerified()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}
	return c.JSON(foods)
}

func (handler *Handler) CreateFood(c *fiber.Ctx) error {
	user := currentUser(c)

	input := foodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fieldErrors := validateFoodInput(input); fieldErrors != nil {
		return apiFieldErrors(c, fieldErrors)
	}

	food := models.Food{
		Name:           strings.TrimSpace(input.Name),
		Brand:          strings.TrimSpace(input.Brand),
		Barcode:        strings.TrimSpace(input.Barcode),
		CaloriesPer100: input.CaloriesPer100,
		ProteinPer100:  input.ProteinPer100,
		CarbsPer100:    input.CarbsPer100,
		FatPer100:      input.FatPer100,
		CreatedByID:    &user.ID,
	}
	if err := handler.repos.Foods.Create(&food); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save food")
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

func (handler *Handler) GetFood(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := handler.repos.Foods.FindByID(foodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "food not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food")
	}
	return c.JSON(food)
}

// UpdateFood lets the creator revise their own unverified entry.
func (handler *Handler) UpdateFood(c *fiber.Ctx) error {
	user := currentUser(c)

	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := handler.repos.Foods.FindByID(foodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "food not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food")
	}
	if food.CreatedByID == nil || *food.CreatedByID != user.ID {
		return apiError(c, fiber.StatusForbidden, "only the creator can modify this food")
	}

	input := foodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fieldErrors := validateFoodInput(input); fieldErrors != nil {
		return apiFieldErrors(c, fieldErrors)
	}

	food.Name = strings.TrimSpace(input.Name)
	food.Brand = strings.TrimSpace(input.Brand)
	food.Barcode = strings.TrimSpace(input.Barcode)
	food.CaloriesPer100 = input.CaloriesPer100
	food.ProteinPer100 = input.ProteinPer100
	food.CarbsPer100 = input.CarbsPer100
	food.FatPer100 = input.FatPer100
	if err := handler.repos.Foods.Save(&food); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save food")
	}
	return c.JSON(food)
}

func (handler *Handler) DeleteFood(c *fiber.Ctx) error {
	user := currentUser(c)

	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := handler.repos.Foods.FindByID(foodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "food not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food")
	}
	if food.CreatedByID == nil || *food.CreatedByID != user.ID {
		return apiError(c, fiber.StatusForbidden, "only the creator can delete this food")
	}

	if err := handler.repos.Foods.Delete(food.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete food")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// SearchFoods matches verified foods by name or brand, case-insensitive.
func (handler *Handler) SearchFoods(c *fiber.Ctx) error {
	input := foodSearchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return apiError(c, fiber.StatusBadRequest, "query is required")
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	foods, err := handler.repos.Foods.Search(query, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to search foods")
	}
	return c.JSON(foods)
}

func validateFoodInput(input foodInput) services.FieldErrors {
	fieldErrors := services.FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if input.CaloriesPer100 < 0 {
		fieldErrors["calories_per_100g"] = "calories must not be negative"
	}
	if input.ProteinPer100 < 0 {
		fieldErrors["protein_per_100g"] = "protein must not be negative"
	}
	if input.CarbsPer100 < 0 {
		fieldErrors["carbs_per_100g"] = "carbs must not be negative"
	}
	if input.FatPer100 < 0 {
		fieldErrors["fat_per_100g"] = "fat must not be negative"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
