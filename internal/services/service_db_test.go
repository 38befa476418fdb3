package services

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/models"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "macrolog-test.db")
	database, err := db.OpenSQLite(databasePath)
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
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestFood(t *testing.T, database *gorm.DB, name string, caloriesPer100 float64) models.Food {
	t.Helper()

	food := models.Food{
		Name:           name,
		CaloriesPer100: caloriesPer100,
		ProteinPer100:  caloriesPer100 / 10,
		CarbsPer100:    caloriesPer100 / 5,
		FatPer100:      caloriesPer100 / 20,
		IsVerified:     true,
	}
	if err := database.Create(&food).Error; err != nil {
		t.Fatalf("create food: %v", err)
	}
	return food
}
