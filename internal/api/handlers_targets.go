package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

// CalculateTargets upserts the profile, activates the goal and stores the
// day's computed targets in one transaction.
func (handler *Handler) CalculateTargets(c *fiber.Ctx) error {
	user := currentUser(c)

	input := calculateTargetsInput{}
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
	if !models.IsValidGoalType(input.GoalType) {
		return apiError(c, fiber.StatusBadRequest, "invalid goal type")
	}

	day := handler.today()
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, err := services.ParseDay(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	targets, err := handler.targets.ComputeAndStore(user.ID, profileFields, input.GoalType, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to calculate targets")
	}
	return c.JSON(targetsPayload(targets))
}

func (handler *Handler) GetTargetsByDate(c *fiber.Ctx) error {
	day, err := handler.parseDayQuery(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return handler.respondTargetsForDay(c, day)
}

func (handler *Handler) GetTargetsToday(c *fiber.Ctx) error {
	return handler.respondTargetsForDay(c, handler.today())
}

func (handler *Handler) respondTargetsForDay(c *fiber.Ctx, day time.Time) error {
	user := currentUser(c)

	targets, found, err := handler.repos.Targets.FindByUserAndDate(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load targets")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no targets for this date")
	}
	return c.JSON(targetsPayload(targets))
}

func targetsPayload(targets models.NutritionTargets) fiber.Map {
	return fiber.Map{
		"id":       targets.ID,
		"date":     services.FormatDay(targets.Date),
		"calories": targets.Calories,
		"protein":  targets.Protein,
		"carbs":    targets.Carbs,
		"fat":      targets.Fat,
		"bmi":      targets.BMI,
		"bmr":      targets.BMR,
		"tdee":     targets.TDEE,
		"goal_id":  targets.GoalID,
	}
}
