package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// ValidActivityFactors is the closed set of TDEE multipliers a profile may
// carry. It is the single source of truth for input validation.
var ValidActivityFactors = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

// Profile holds the body metrics BMI/BMR/TDEE are derived from. One row per
// user; the derived values are computed on read, never stored.
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	WeightKg       float64   `gorm:"not null" json:"weight"`
	HeightCm       float64   `gorm:"not null" json:"height"`
	Age            int       `gorm:"not null" json:"age"`
	Gender         string    `gorm:"not null" json:"gender"`
	ActivityFactor float64   `gorm:"not null" json:"activity_factor"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func IsValidActivityFactor(factor float64) bool {
	for _, candidate := range ValidActivityFactors {
		if candidate == factor {
			return true
		}
	}
	return false
}

func IsValidGender(gender string) bool {
	return gender == GenderMale || gender == GenderFemale
}
