package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user := currentUser(c)

	input := namesInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if err := handler.repos.Users.UpdateNames(user.ID, firstName, lastName); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update account")
	}

	user.FirstName = firstName
	user.LastName = lastName
	return c.JSON(user)
}

// DeleteAccount removes the user and every record derived from their
// activity in one transaction.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user := currentUser(c)
	if err := handler.repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
