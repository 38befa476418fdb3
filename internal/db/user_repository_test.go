package db

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/models"
)

func newTestRepositories(t *testing.T) (*Repositories, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "macrolog-db-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return NewRepositories(database), database
}

func mustCreate(t *testing.T, database *gorm.DB, value any) {
	t.Helper()
	if err := database.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func TestFindByNormalizedEmail(t *testing.T) {
	repos, database := newTestRepositories(t)
	mustCreate(t, database, &models.User{Email: "user@example.com", PasswordHash: "x"})

	found, err := repos.Users.FindByNormalizedEmail("user@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Email != "user@example.com" {
		t.Fatalf("email = %q", found.Email)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("user@example.com")
	if err != nil || !exists {
		t.Fatalf("exists = %v, err = %v", exists, err)
	}
	exists, err = repos.Users.ExistsByNormalizedEmail("missing@example.com")
	if err != nil || exists {
		t.Fatalf("missing exists = %v, err = %v", exists, err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	repos, database := newTestRepositories(t)

	user := models.User{Email: "cascade@example.com", PasswordHash: "x"}
	mustCreate(t, database, &user)
	bystander := models.User{Email: "bystander@example.com", PasswordHash: "x"}
	mustCreate(t, database, &bystander)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mustCreate(t, database, &models.Profile{UserID: user.ID, WeightKg: 70, HeightCm: 175, Age: 30, Gender: models.GenderMale, ActivityFactor: 1.55})
	goal := models.Goal{UserID: user.ID, GoalType: models.GoalMaintenance, IsActive: true}
	mustCreate(t, database, &goal)
	mustCreate(t, database, &models.NutritionTargets{UserID: user.ID, Date: day, Calories: 2000, GoalID: goal.ID})

	ownedFood := models.Food{Name: "owned", CaloriesPer100: 100, CreatedByID: &user.ID}
	mustCreate(t, database, &ownedFood)

	dailyLog := models.DailyLog{UserID: user.ID, Date: day}
	mustCreate(t, database, &dailyLog)
	mustCreate(t, database, &models.LoggedFoodItem{DailyLogID: dailyLog.ID, Name: "toast", Quantity: 1, Unit: "slice", MealType: models.MealOther, LoggedAt: time.Now().UTC()})

	mustCreate(t, database, &models.ScannedFood{UserID: user.ID, Name: "scan"})
	mustCreate(t, database, &models.ImageAnalysis{UserID: user.ID, RequestID: "req-1", Status: models.AnalysisCompleted})
	mustCreate(t, database, &models.UsageStats{UserID: user.ID, Date: day, TotalRequests: 1})

	bystanderLog := models.DailyLog{UserID: bystander.ID, Date: day}
	mustCreate(t, database, &bystanderLog)

	if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	counts := map[string]any{
		"users":             &models.User{},
		"profiles":          &models.Profile{},
		"goals":             &models.Goal{},
		"nutrition_targets": &models.NutritionTargets{},
		"daily_logs":        &models.DailyLog{},
		"scanned_foods":     &models.ScannedFood{},
		"image_analyses":    &models.ImageAnalysis{},
		"usage_stats":       &models.UsageStats{},
	}
	for table, model := range counts {
		var remaining int64
		query := database.Model(model)
		if table == "users" {
			query = query.Where("id = ?", user.ID)
		} else {
			query = query.Where("user_id = ?", user.ID)
		}
		if err := query.Count(&remaining).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if remaining != 0 {
			t.Fatalf("%s still has %d rows for the deleted user", table, remaining)
		}
	}

	var orphanedItems int64
	if err := database.Model(&models.LoggedFoodItem{}).Count(&orphanedItems).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if orphanedItems != 0 {
		t.Fatalf("logged items remaining = %d, want 0", orphanedItems)
	}

	// Owned foods survive with the creator reference cleared.
	var food models.Food
	if err := database.First(&food, ownedFood.ID).Error; err != nil {
		t.Fatalf("load food: %v", err)
	}
	if food.CreatedByID != nil {
		t.Fatalf("created_by_id = %v, want nil", food.CreatedByID)
	}

	// The other user's data is untouched.
	var bystanderLogs int64
	if err := database.Model(&models.DailyLog{}).Where("user_id = ?", bystander.ID).Count(&bystanderLogs).Error; err != nil {
		t.Fatalf("count bystander logs: %v", err)
	}
	if bystanderLogs != 1 {
		t.Fatalf("bystander logs = %d, want 1", bystanderLogs)
	}
}
