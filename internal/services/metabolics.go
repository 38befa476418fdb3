package services

import (
	"math"

	"github.com/terraincognita07/macrolog/internal/models"
)

// Metabolics are the values derived from a profile's body metrics. They are
// computed on demand and never persisted outside a targets snapshot.
type Metabolics struct {
	BMI  float64
	BMR  float64
	TDEE int
}

// ComputeMetabolics derives BMI, BMR (Mifflin-St Jeor) and TDEE from the
// profile. Input validation happens upstream; the only guard here is the
// height check BMI needs to avoid dividing by zero.
func ComputeMetabolics(profile models.Profile) Metabolics {
	bmi := 0.0
	if profile.HeightCm > 0 {
		heightM := profile.HeightCm / 100
		bmi = roundTo(profile.WeightKg/(heightM*heightM), 2)
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return Metabolics{
		BMI:  bmi,
		BMR:  bmr,
		TDEE: int(math.Round(bmr * profile.ActivityFactor)),
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
