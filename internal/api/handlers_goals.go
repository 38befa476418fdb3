package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/macrolog/internal/models"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user := currentUser(c)
	goals, err := handler.repos.Goals.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}
	return c.JSON(goals)
}

// CreateGoal creates (or revives) a goal of the requested type and makes it
// the user's single active goal.
func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user := currentUser(c)

	input := goalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !models.IsValidGoalType(input.GoalType) {
		return apiError(c, fiber.StatusBadRequest, "invalid goal type")
	}

	goal, err := handler.repos.Goals.Activate(user.ID, input.GoalType)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (handler *Handler) GetActiveGoal(c *fiber.Ctx) error {
	user := currentUser(c)

	goal, found, err := handler.repos.Goals.FindActive(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no active goal")
	}
	return c.JSON(goal)
}
