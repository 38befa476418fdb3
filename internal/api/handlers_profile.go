package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

// GetProfile returns the user's profile, creating an empty one on first
// access. Metabolic values are derived on read, never stored.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, found, err := handler.repos.Profiles.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	if !found {
		profile = models.Profile{UserID: user.ID}
		if err := handler.repos.Profiles.Upsert(&profile); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create profile")
		}
	}

	return c.JSON(profilePayload(profile))
}

func (handler *Handler) PutProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profileFields := services.ProfileInput{
		WeightKg:       input.Weight,
		HeightCm:       input.Height,
		Age:            input.Age,
		Gender:         input.Gender,
		ActivityFactor: input.ActivityFactor,
	}
	if fieldErrors := services.ValidateProfileInput(profileFields); fieldErrors != nil {
		return apiFieldErrors(c, fieldErrors)
	}

	profile := models.Profile{
		UserID:         user.ID,
		WeightKg:       profileFields.WeightKg,
		HeightCm:       profileFields.HeightCm,
		Age:            profileFields.Age,
		Gender:         profileFields.Gender,
		ActivityFactor: profileFields.ActivityFactor,
	}
	if err := handler.repos.Profiles.Upsert(&profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(profilePayload(profile))
}

func profilePayload(profile models.Profile) fiber.Map {
	metabolics := services.ComputeMetabolics(profile)
	return fiber.Map{
		"profile": profile,
		"bmi":     metabolics.BMI,
		"bmr":     metabolics.BMR,
		"tdee":    metabolics.TDEE,
	}
}
