package services

import (
	"testing"

	"github.com/terraincognita07/macrolog/internal/models"
)

func TestAverageDailyTotals(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		{TotalCalories: 2000, TotalProtein: 100, TotalCarbs: 250, TotalFat: 70},
		{TotalCalories: 1001, TotalProtein: 50, TotalCarbs: 150, TotalFat: 30},
	}

	got := AverageDailyTotals(logs)
	if !floatsClose(got.Calories, 1500.5) {
		t.Fatalf("calories = %v, want 1500.5", got.Calories)
	}
	if !floatsClose(got.Protein, 75) {
		t.Fatalf("protein = %v, want 75", got.Protein)
	}
	if !floatsClose(got.Carbs, 200) {
		t.Fatalf("carbs = %v, want 200", got.Carbs)
	}
	if !floatsClose(got.Fat, 50) {
		t.Fatalf("fat = %v, want 50", got.Fat)
	}
}

func TestAverageDailyTotalsEmpty(t *testing.T) {
	t.Parallel()

	got := AverageDailyTotals(nil)
	if got.Calories != 0 || got.Protein != 0 || got.Carbs != 0 || got.Fat != 0 {
		t.Fatalf("expected zero averages, got %+v", got)
	}
}
