package services

import (
	"math"
	"testing"

	"github.com/terraincognita07/macrolog/internal/models"
)

func TestComputeMetabolics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		profile  models.Profile
		wantBMI  float64
		wantBMR  float64
		wantTDEE int
	}{
		{
			name: "male moderate activity",
			profile: models.Profile{
				WeightKg:       70,
				HeightCm:       175,
				Age:            30,
				Gender:         models.GenderMale,
				ActivityFactor: 1.55,
			},
			wantBMI:  22.86,
			wantBMR:  1648.75,
			wantTDEE: 2556,
		},
		{
			name: "female sedentary",
			profile: models.Profile{
				WeightKg:       60,
				HeightCm:       165,
				Age:            25,
				Gender:         models.GenderFemale,
				ActivityFactor: 1.2,
			},
			wantBMI:  22.04,
			wantBMR:  1345.25,
			wantTDEE: 1614,
		},
		{
			name: "zero height yields zero bmi",
			profile: models.Profile{
				WeightKg:       80,
				HeightCm:       0,
				Age:            40,
				Gender:         models.GenderFemale,
				ActivityFactor: 1.2,
			},
			wantBMI:  0,
			wantBMR:  439,
			wantTDEE: 527,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeMetabolics(testCase.profile)
			if !floatsClose(got.BMI, testCase.wantBMI) {
				t.Fatalf("bmi = %v, want %v", got.BMI, testCase.wantBMI)
			}
			if !floatsClose(got.BMR, testCase.wantBMR) {
				t.Fatalf("bmr = %v, want %v", got.BMR, testCase.wantBMR)
			}
			if got.TDEE != testCase.wantTDEE {
				t.Fatalf("tdee = %d, want %d", got.TDEE, testCase.wantTDEE)
			}
		})
	}
}

func floatsClose(a float64, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
