package services

import (
	"math"
	"time"

	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

// TargetsService computes and persists a user's nutrition targets. The
// profile upsert, goal activation and targets upsert commit atomically:
// a failure anywhere leaves all three untouched.
type TargetsService struct {
	database *gorm.DB
}

func NewTargetsService(database *gorm.DB) *TargetsService {
	return &TargetsService{database: database}
}

// ComputeAndStore upserts the profile from input, activates the goal,
// derives the macro plan and overwrites the (user, date) targets record.
func (service *TargetsService) ComputeAndStore(userID uint, input ProfileInput, goalType string, day time.Time) (models.NutritionTargets, error) {
	var targets models.NutritionTargets
	err := service.database.Transaction(func(tx *gorm.DB) error {
		profile := models.Profile{
			UserID:         userID,
			WeightKg:       input.WeightKg,
			HeightCm:       input.HeightCm,
			Age:            input.Age,
			Gender:         input.Gender,
			ActivityFactor: input.ActivityFactor,
		}
		if err := db.UpsertProfileTx(tx, &profile); err != nil {
			return err
		}

		goal, err := db.ActivateGoalTx(tx, userID, goalType)
		if err != nil {
			return err
		}

		metabolics := ComputeMetabolics(profile)
		plan := PlanTargets(metabolics.TDEE, goal.GoalType)

		targets = models.NutritionTargets{
			UserID:   userID,
			Date:     day,
			Calories: plan.Calories,
			Protein:  plan.ProteinG,
			Carbs:    plan.CarbsG,
			Fat:      plan.FatG,
			BMI:      metabolics.BMI,
			TDEE:     metabolics.TDEE,
			BMR:      int(math.Round(metabolics.BMR)),
			GoalID:   goal.ID,
		}
		return db.UpsertTargetsTx(tx, &targets)
	})
	if err != nil {
		return models.NutritionTargets{}, err
	}
	return targets, nil
}
