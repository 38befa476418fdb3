package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/models"
)

func newTrackingFixture(t *testing.T) (*TrackingService, *gorm.DB, models.User, time.Time) {
	t.Helper()

	database := newTestDatabase(t)
	user := createTestUser(t, database, "tracking@example.com")
	service := NewTrackingService(db.NewRepositories(database))
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return service, database, user, day
}

func loadDayLog(t *testing.T, database *gorm.DB, userID uint, day time.Time) models.DailyLog {
	t.Helper()

	logEntry, found, err := db.NewRepositories(database).DailyLogs.FindByUserAndDate(userID, day)
	if err != nil {
		t.Fatalf("load log: %v", err)
	}
	if !found {
		t.Fatal("expected daily log row")
	}
	return logEntry
}

func TestQuickLogCanonicalRecomputesTotals(t *testing.T) {
	service, database, user, day := newTrackingFixture(t)
	food := createTestFood(t, database, "apple", 52)

	entry, err := ClassifyQuickLog(QuickLogRequest{FoodID: &food.ID, Quantity: 150, Unit: "g"})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	item, err := service.QuickLog(user.ID, day, entry)
	if err != nil {
		t.Fatalf("quick log: %v", err)
	}
	if item.Name != "apple" {
		t.Fatalf("item name = %q", item.Name)
	}
	if !floatsClose(item.Calories, 78) {
		t.Fatalf("item calories = %v, want 78", item.Calories)
	}

	logEntry := loadDayLog(t, database, user.ID, day)
	if !floatsClose(logEntry.TotalCalories, 78) {
		t.Fatalf("total calories = %v, want 78", logEntry.TotalCalories)
	}
	if len(logEntry.Items) != 1 {
		t.Fatalf("item count = %d, want 1", len(logEntry.Items))
	}
}

func TestQuickLogMissingFood(t *testing.T) {
	service, _, user, day := newTrackingFixture(t)

	missing := uint(9999)
	entry, err := ClassifyQuickLog(QuickLogRequest{FoodID: &missing, Quantity: 100})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if _, err := service.QuickLog(user.ID, day, entry); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestDeleteItemRecomputesTotals(t *testing.T) {
	service, database, user, day := newTrackingFixture(t)
	food := createTestFood(t, database, "rice", 130)

	first, err := service.QuickLog(user.ID, day, mustClassify(t, QuickLogRequest{FoodID: &food.ID, Quantity: 100}))
	if err != nil {
		t.Fatalf("first quick log: %v", err)
	}
	if _, err := service.QuickLog(user.ID, day, mustClassify(t, QuickLogRequest{FoodID: &food.ID, Quantity: 200})); err != nil {
		t.Fatalf("second quick log: %v", err)
	}

	logEntry := loadDayLog(t, database, user.ID, day)
	if !floatsClose(logEntry.TotalCalories, 390) {
		t.Fatalf("total calories = %v, want 390", logEntry.TotalCalories)
	}

	if err := service.DeleteItem(user.ID, first.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	logEntry = loadDayLog(t, database, user.ID, day)
	if !floatsClose(logEntry.TotalCalories, 260) {
		t.Fatalf("total calories after delete = %v, want 260", logEntry.TotalCalories)
	}

	if err := service.DeleteItem(user.ID, first.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestUpdateItemRecomputesTotals(t *testing.T) {
	service, database, user, day := newTrackingFixture(t)
	food := createTestFood(t, database, "oats", 370)

	item, err := service.QuickLog(user.ID, day, mustClassify(t, QuickLogRequest{FoodID: &food.ID, Quantity: 100}))
	if err != nil {
		t.Fatalf("quick log: %v", err)
	}

	updated, err := service.UpdateItem(user.ID, item.ID, ItemUpdate{
		Name:     "oats, large bowl",
		Quantity: 150,
		Unit:     "g",
		MealType: models.MealBreakfast,
		Calories: 555,
		Protein:  20,
		Carbs:    90,
		Fat:      10,
	})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.MealType != models.MealBreakfast {
		t.Fatalf("meal type = %q", updated.MealType)
	}

	logEntry := loadDayLog(t, database, user.ID, day)
	if !floatsClose(logEntry.TotalCalories, 555) {
		t.Fatalf("total calories = %v, want 555", logEntry.TotalCalories)
	}
}

func TestResetDayZeroesTotals(t *testing.T) {
	service, database, user, day := newTrackingFixture(t)
	food := createTestFood(t, database, "pasta", 160)

	if _, err := service.QuickLog(user.ID, day, mustClassify(t, QuickLogRequest{FoodID: &food.ID, Quantity: 250})); err != nil {
		t.Fatalf("quick log: %v", err)
	}

	reset, err := service.ResetDay(user.ID, day)
	if err != nil {
		t.Fatalf("reset day: %v", err)
	}
	if reset.TotalCalories != 0 || len(reset.Items) != 0 {
		t.Fatalf("expected empty log, got totals %v with %d items", reset.TotalCalories, len(reset.Items))
	}

	// Resetting an already empty day is a no-op, not an error.
	if _, err := service.ResetDay(user.ID, day); err != nil {
		t.Fatalf("second reset: %v", err)
	}
}

func mustClassify(t *testing.T, request QuickLogRequest) QuickLogEntry {
	t.Helper()

	entry, err := ClassifyQuickLog(request)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	return entry
}
