package db

import (
	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateNames(userID uint, firstName string, lastName string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
	}).Error
}

// DeleteAccountAndRelatedData removes the user and every row keyed to them.
// Logged items hang off daily logs, so they go before the logs themselves.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM logged_food_items WHERE daily_log_id IN (SELECT id FROM daily_logs WHERE user_id = ?)`,
			userID,
		).Error; err != nil {
			return err
		}
		for _, model := range []any{
			&models.DailyLog{},
			&models.NutritionTargets{},
			&models.Goal{},
			&models.Profile{},
			&models.ScannedFood{},
			&models.ImageAnalysis{},
			&models.UsageStats{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Food{}).
			Where("created_by_id = ?", userID).
			Update("created_by_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
