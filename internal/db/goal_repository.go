package db

import (
	"errors"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindActive(userID uint) (models.Goal, bool, error) {
	var goal models.Goal
	err := repo.database.Where("user_id = ? AND is_active = ?", userID, true).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goal{}, false, nil
	}
	if err != nil {
		return models.Goal{}, false, err
	}
	return goal, true, nil
}

// Activate makes goalType the user's single active goal. The deactivation of
// every other goal and the activation of this one commit together; a reader
// never observes two active goals or none where one existed.
func (repo *GoalRepository) Activate(userID uint, goalType string) (models.Goal, error) {
	var goal models.Goal
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		activated, err := ActivateGoalTx(tx, userID, goalType)
		if err != nil {
			return err
		}
		goal = activated
		return nil
	})
	return goal, err
}

// ActivateGoalTx reuses an existing goal row for the type when there is one,
// creating it otherwise, then flips every other goal of the user inactive.
func ActivateGoalTx(tx *gorm.DB, userID uint, goalType string) (models.Goal, error) {
	var goal models.Goal
	err := tx.Where("user_id = ? AND goal_type = ?", userID, goalType).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{UserID: userID, GoalType: goalType, IsActive: true}
		if err := tx.Create(&goal).Error; err != nil {
			return models.Goal{}, err
		}
	} else if err != nil {
		return models.Goal{}, err
	} else if err := tx.Model(&goal).Update("is_active", true).Error; err != nil {
		return models.Goal{}, err
	}
	goal.IsActive = true

	if err := tx.Model(&models.Goal{}).
		Where("user_id = ? AND id <> ?", userID, goal.ID).
		Update("is_active", false).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}
