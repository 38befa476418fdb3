package services

import (
	"errors"

	"github.com/terraincognita07/macrolog/internal/models"
)

// Entry modes for a quick-log request. Exactly one arm of QuickLogEntry is
// populated; the mode tag decides how nutrition is derived.
const (
	EntryCanonical = "canonical"
	EntryScanned   = "scanned"
	EntryManual    = "manual"
)

var (
	ErrBothReferences   = errors.New("food_id and scanned_food_id are mutually exclusive")
	ErrNoEntrySource    = errors.New("food_id, scanned_food_id or a name is required")
	ErrMissingNutrition = errors.New("manual entry requires calories, protein, carbs and fat")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidMealType  = errors.New("invalid meal type")
)

// ManualNutrition is the explicit nutrition set of a manual entry.
type ManualNutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// QuickLogEntry is the tagged variant a quick-log request resolves to.
type QuickLogEntry struct {
	Mode          string
	FoodID        uint
	ScannedFoodID uint
	Name          string
	Manual        ManualNutrition
	Quantity      float64
	Unit          string
	MealType      string
}

// QuickLogRequest mirrors the request body before classification. Optional
// fields are pointers so "absent" and "zero" stay distinguishable.
type QuickLogRequest struct {
	FoodID        *uint
	ScannedFoodID *uint
	Name          string
	Quantity      float64
	Unit          string
	MealType      string
	Calories      *float64
	Protein       *float64
	Carbs         *float64
	Fat           *float64
}

// ClassifyQuickLog validates the request and picks its single entry mode.
func ClassifyQuickLog(request QuickLogRequest) (QuickLogEntry, error) {
	if request.FoodID != nil && request.ScannedFoodID != nil {
		return QuickLogEntry{}, ErrBothReferences
	}
	if request.Quantity <= 0 {
		return QuickLogEntry{}, ErrInvalidQuantity
	}

	mealType := request.MealType
	if mealType == "" {
		mealType = models.MealOther
	}
	if !models.IsValidMealType(mealType) {
		return QuickLogEntry{}, ErrInvalidMealType
	}

	entry := QuickLogEntry{
		Quantity: request.Quantity,
		Unit:     request.Unit,
		MealType: mealType,
	}

	switch {
	case request.FoodID != nil:
		entry.Mode = EntryCanonical
		entry.FoodID = *request.FoodID
	case request.ScannedFoodID != nil:
		entry.Mode = EntryScanned
		entry.ScannedFoodID = *request.ScannedFoodID
	case request.Name != "":
		if request.Calories == nil || request.Protein == nil || request.Carbs == nil || request.Fat == nil {
			return QuickLogEntry{}, ErrMissingNutrition
		}
		entry.Mode = EntryManual
		entry.Name = request.Name
		entry.Manual = ManualNutrition{
			Calories: *request.Calories,
			Protein:  *request.Protein,
			Carbs:    *request.Carbs,
			Fat:      *request.Fat,
		}
	default:
		return QuickLogEntry{}, ErrNoEntrySource
	}

	return entry, nil
}

// ScaleCanonical converts a canonical food's per-100g nutrition to the
// logged quantity, which is expressed in grams.
func ScaleCanonical(food models.Food, quantity float64) ManualNutrition {
	factor := quantity / 100
	return ManualNutrition{
		Calories: food.CaloriesPer100 * factor,
		Protein:  food.ProteinPer100 * factor,
		Carbs:    food.CarbsPer100 * factor,
		Fat:      food.FatPer100 * factor,
	}
}

// ScaleScanned converts a scanned food's nutrition to the logged quantity.
//
// Quirk, preserved deliberately: when the scanned food carries per-serving
// calories, quantity means number of servings; otherwise it falls back to
// the per-100g fields and quantity means grams. The unit of quantity
// changes meaning with the shape of the stored data.
func ScaleScanned(food models.ScannedFood, quantity float64) ManualNutrition {
	if food.CaloriesPerServing != nil {
		return ManualNutrition{
			Calories: floatOrZero(food.CaloriesPerServing) * quantity,
			Protein:  floatOrZero(food.ProteinPerServing) * quantity,
			Carbs:    floatOrZero(food.CarbsPerServing) * quantity,
			Fat:      floatOrZero(food.FatPerServing) * quantity,
		}
	}

	factor := quantity / 100
	return ManualNutrition{
		Calories: floatOrZero(food.CaloriesPer100) * factor,
		Protein:  floatOrZero(food.ProteinPer100) * factor,
		Carbs:    floatOrZero(food.CarbsPer100) * factor,
		Fat:      floatOrZero(food.FatPer100) * factor,
	}
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
