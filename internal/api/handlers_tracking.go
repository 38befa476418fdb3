package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/services"
)

const summaryWindowDays = 7

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	user := currentUser(c)
	logs, err := handler.repos.DailyLogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	user := currentUser(c)

	logID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	logEntry, err := handler.repos.DailyLogs.FindByUserAndID(user.ID, logID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "log not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load log")
	}
	return c.JSON(logEntry)
}

func (handler *Handler) GetLogToday(c *fiber.Ctx) error {
	return handler.respondLogForDay(c, handler.today())
}

func (handler *Handler) GetLogByDate(c *fiber.Ctx) error {
	day, err := handler.parseDayQuery(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return handler.respondLogForDay(c, day)
}

func (handler *Handler) respondLogForDay(c *fiber.Ctx, day time.Time) error {
	user := currentUser(c)

	if _, err := handler.repos.DailyLogs.GetOrCreate(user.ID, day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load log")
	}
	logEntry, _, err := handler.repos.DailyLogs.FindByUserAndDate(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load log")
	}
	return c.JSON(logEntry)
}

// PostLogToday supports the reset action: it removes every logged item of
// the current day and recomputes the (now zero) totals.
func (handler *Handler) PostLogToday(c *fiber.Ctx) error {
	user := currentUser(c)

	input := logActionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Action != "reset" {
		return apiError(c, fiber.StatusBadRequest, "unsupported action")
	}

	logEntry, err := handler.tracking.ResetDay(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset log")
	}
	return c.JSON(logEntry)
}

func (handler *Handler) QuickLog(c *fiber.Ctx) error {
	user := currentUser(c)

	input := quickLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := services.ClassifyQuickLog(services.QuickLogRequest{
		FoodID:        input.FoodID,
		ScannedFoodID: input.ScannedFoodID,
		Name:          strings.TrimSpace(input.Name),
		Quantity:      input.Quantity,
		Unit:          strings.TrimSpace(input.Unit),
		MealType:      strings.TrimSpace(input.MealType),
		Calories:      input.Calories,
		Protein:       input.Protein,
		Carbs:         input.Carbs,
		Fat:           input.Fat,
	})
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	day := handler.today()
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, parseErr := services.ParseDay(raw)
		if parseErr != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	item, err := handler.tracking.QuickLog(user.ID, day, entry)
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		return apiError(c, fiber.StatusNotFound, "food not found")
	case errors.Is(err, services.ErrScannedFoodNotFound):
		return apiError(c, fiber.StatusNotFound, "scanned food not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to log food")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateLoggedItem(c *fiber.Ctx) error {
	user := currentUser(c)

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	input := itemUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	item, err := handler.tracking.UpdateItem(user.ID, itemID, services.ItemUpdate{
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Unit:     strings.TrimSpace(input.Unit),
		MealType: strings.TrimSpace(input.MealType),
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return apiError(c, fiber.StatusNotFound, "logged item not found")
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrInvalidMealType):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update item")
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteLoggedItem(c *fiber.Ctx) error {
	user := currentUser(c)

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	err = handler.tracking.DeleteItem(user.ID, itemID)
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return apiError(c, fiber.StatusNotFound, "logged item not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete item")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// TrackingSummary averages the trailing week's daily totals to one decimal
// place. Days without a log row do not dilute the average.
func (handler *Handler) TrackingSummary(c *fiber.Ctx) error {
	user := currentUser(c)

	to := handler.today()
	from := to.AddDate(0, 0, -(summaryWindowDays - 1))
	logs, err := handler.repos.DailyLogs.ListByUserRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
	}

	averages := services.AverageDailyTotals(logs)
	return c.JSON(fiber.Map{
		"from":     services.FormatDay(from),
		"to":       services.FormatDay(to),
		"days":     len(logs),
		"averages": averages,
	})
}
