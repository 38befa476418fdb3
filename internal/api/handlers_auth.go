package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	}

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	return handler.respondWithToken(c, &user, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	return handler.respondWithToken(c, &user, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) respondWithToken(c *fiber.Ctx, user *models.User, status int) error {
	token, err := handler.buildToken(user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, token)
	return c.Status(status).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
