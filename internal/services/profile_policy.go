package services

import (
	"fmt"

	"github.com/terraincognita07/macrolog/internal/models"
)

// ProfileInput carries the user-supplied profile fields before validation.
type ProfileInput struct {
	WeightKg       float64
	HeightCm       float64
	Age            int
	Gender         string
	ActivityFactor float64
}

// FieldErrors maps field names to validation messages, surfaced verbatim in
// 400 responses.
type FieldErrors map[string]string

func (errs FieldErrors) Error() string {
	return fmt.Sprintf("invalid input: %d field(s)", len(errs))
}

// ValidateProfileInput rejects non-positive body metrics and enum values
// outside their closed sets.
func ValidateProfileInput(input ProfileInput) FieldErrors {
	errs := FieldErrors{}
	if input.WeightKg <= 0 {
		errs["weight"] = "weight must be positive"
	}
	if input.HeightCm <= 0 {
		errs["height"] = "height must be positive"
	}
	if input.Age <= 0 {
		errs["age"] = "age must be positive"
	}
	if !models.IsValidGender(input.Gender) {
		errs["gender"] = "gender must be male or female"
	}
	if !models.IsValidActivityFactor(input.ActivityFactor) {
		errs["activity_factor"] = "activity factor must be one of 1.2, 1.375, 1.55, 1.725, 1.9"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
