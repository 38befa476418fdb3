package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type TargetsRepository struct {
	database *gorm.DB
}

func NewTargetsRepository(database *gorm.DB) *TargetsRepository {
	return &TargetsRepository{database: database}
}

func (repo *TargetsRepository) FindByUserAndDate(userID uint, day time.Time) (models.NutritionTargets, bool, error) {
	var targets models.NutritionTargets
	err := repo.database.
		Where("user_id = ? AND date = ?", userID, day).
		First(&targets).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NutritionTargets{}, false, nil
	}
	if err != nil {
		return models.NutritionTargets{}, false, err
	}
	return targets, true, nil
}

// UpsertTargetsTx overwrites the (user, date) targets row in place, creating
// it on first computation. Two upserts for the same key leave one record.
func UpsertTargetsTx(tx *gorm.DB, targets *models.NutritionTargets) error {
	var existing models.NutritionTargets
	err := tx.Where("user_id = ? AND date = ?", targets.UserID, targets.Date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(targets).Error
	}
	if err != nil {
		return err
	}

	targets.ID = existing.ID
	targets.CreatedAt = existing.CreatedAt
	return tx.Save(targets).Error
}
