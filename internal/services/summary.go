package services

import "github.com/terraincognita07/macrolog/internal/models"

// NutritionAverages are per-day means over a set of daily logs, rounded to
// one decimal place. Days without a log row do not dilute the averages.
type NutritionAverages struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func AverageDailyTotals(logs []models.DailyLog) NutritionAverages {
	if len(logs) == 0 {
		return NutritionAverages{}
	}

	var calories, protein, carbs, fat float64
	for _, logEntry := range logs {
		calories += logEntry.TotalCalories
		protein += logEntry.TotalProtein
		carbs += logEntry.TotalCarbs
		fat += logEntry.TotalFat
	}

	days := float64(len(logs))
	return NutritionAverages{
		Calories: roundTo(calories/days, 1),
		Protein:  roundTo(protein/days, 1),
		Carbs:    roundTo(carbs/days, 1),
		Fat:      roundTo(fat/days, 1),
	}
}
