package db

import (
	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type ScannedFoodRepository struct {
	database *gorm.DB
}

func NewScannedFoodRepository(database *gorm.DB) *ScannedFoodRepository {
	return &ScannedFoodRepository{database: database}
}

func (repo *ScannedFoodRepository) ListByUser(userID uint, limit int) ([]models.ScannedFood, error) {
	query := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	foods := make([]models.ScannedFood, 0)
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *ScannedFoodRepository) FindByUserAndID(userID uint, scannedID uint) (models.ScannedFood, error) {
	var food models.ScannedFood
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, scannedID).
		First(&food).Error; err != nil {
		return models.ScannedFood{}, err
	}
	return food, nil
}

func (repo *ScannedFoodRepository) Create(food *models.ScannedFood) error {
	return repo.database.Create(food).Error
}

func (repo *ScannedFoodRepository) Delete(userID uint, scannedID uint) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, scannedID).
		Delete(&models.ScannedFood{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
