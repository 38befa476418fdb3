package models

import "time"

const (
	GoalWeightLoss    = "weight_loss"
	GoalMuscleGain    = "muscle_gain"
	GoalMaintenance   = "maintenance"
	GoalRecomposition = "recomposition"
)

// Goal is a user's fitness objective. At most one goal per user is active at
// any time; activating a goal deactivates the others in the same transaction.
type Goal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_goal_user_active" json:"user_id"`
	GoalType  string    `gorm:"not null" json:"goal_type"`
	IsActive  bool      `gorm:"not null;default:false;index:idx_goal_user_active" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidGoalType(goalType string) bool {
	switch goalType {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalRecomposition:
		return true
	}
	return false
}
