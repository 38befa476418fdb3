package models

import "time"

// NutritionTargets is the computed calorie/macro plan for one user and one
// calendar date. Recomputing for the same (user, date) overwrites in place.
type NutritionTargets struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:uidx_targets_user_date" json:"user_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:uidx_targets_user_date" json:"date"`
	Calories int       `gorm:"not null" json:"calories"`
	Protein  float64   `gorm:"not null" json:"protein"`
	Carbs    float64   `gorm:"not null" json:"carbs"`
	Fat      float64   `gorm:"not null" json:"fat"`

	// Snapshot of the metrics the plan was derived from.
	BMI  float64 `gorm:"not null" json:"bmi"`
	TDEE int     `gorm:"not null" json:"tdee"`
	BMR  int     `gorm:"not null" json:"bmr"`

	GoalID    uint      `gorm:"not null" json:"goal_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
