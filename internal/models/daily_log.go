package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealOther     = "other"
)

// DailyLog aggregates everything a user logged on one calendar date. The
// totals are derived: they always equal the sum over the log's items and are
// recomputed inside the same transaction as every item mutation.
type DailyLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_log_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_log_user_date" json:"date"`
	TotalCalories float64   `gorm:"not null;default:0" json:"total_calories"`
	TotalProtein  float64   `gorm:"not null;default:0" json:"total_protein"`
	TotalCarbs    float64   `gorm:"not null;default:0" json:"total_carbs"`
	TotalFat      float64   `gorm:"not null;default:0" json:"total_fat"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []LoggedFoodItem `gorm:"foreignKey:DailyLogID" json:"food_items,omitempty"`
}

// LoggedFoodItem is one consumed portion. Nutrition fields are absolute for
// this portion, not per-100g. At most one of FoodID/ScannedFoodID is set;
// neither means manual entry.
type LoggedFoodItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	DailyLogID    uint    `gorm:"not null;index" json:"daily_log_id"`
	FoodID        *uint   `gorm:"index" json:"food_id,omitempty"`
	ScannedFoodID *uint   `gorm:"index" json:"scanned_food_id,omitempty"`
	Name          string  `gorm:"not null" json:"name"`
	Quantity      float64 `gorm:"not null" json:"quantity"`
	Unit          string  `gorm:"not null" json:"unit"`
	Calories      float64 `gorm:"not null" json:"calories"`
	Protein       float64 `gorm:"not null" json:"protein"`
	Carbs         float64 `gorm:"not null" json:"carbs"`
	Fat           float64 `gorm:"not null" json:"fat"`
	MealType      string  `gorm:"not null;default:other" json:"meal_type"`
	LoggedAt      time.Time `gorm:"not null" json:"logged_at"`
}

func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealOther:
		return true
	}
	return false
}
