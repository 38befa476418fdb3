package services

import (
	"math"

	"github.com/terraincognita07/macrolog/internal/models"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	weightLossDeficit  = 500
	muscleGainSurplus  = 300
	fatFraction        = 0.25
	proteinFractionLow = 0.25
	// Muscle gain and recomposition push protein up.
	proteinFractionHigh = 0.30
)

// MacroPlan is a calorie target split into macro grams.
type MacroPlan struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// PlanTargets turns a TDEE and goal into a daily calorie target and macro
// split. Protein and fat grams are rounded first; carbs absorb whatever
// calories remain, so carbs can come out negative when rounding pushes
// protein+fat past the calorie target. That remainder is reported as-is.
func PlanTargets(tdee int, goalType string) MacroPlan {
	calorieTarget := tdee
	switch goalType {
	case models.GoalWeightLoss:
		calorieTarget = tdee - weightLossDeficit
	case models.GoalMuscleGain:
		calorieTarget = tdee + muscleGainSurplus
	}

	proteinFraction := proteinFractionLow
	if goalType == models.GoalMuscleGain || goalType == models.GoalRecomposition {
		proteinFraction = proteinFractionHigh
	}

	proteinGrams := math.Round(float64(calorieTarget) * proteinFraction / kcalPerGramProtein)
	fatGrams := math.Round(float64(calorieTarget) * fatFraction / kcalPerGramFat)
	remainingKcal := float64(calorieTarget) - (proteinGrams*kcalPerGramProtein + fatGrams*kcalPerGramFat)
	carbGrams := math.Round(remainingKcal / kcalPerGramCarbs)

	return MacroPlan{
		Calories: calorieTarget,
		ProteinG: proteinGrams,
		CarbsG:   carbGrams,
		FatG:     fatGrams,
	}
}
