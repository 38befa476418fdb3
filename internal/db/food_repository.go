package db

import (
	"strings"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) ListVerified() ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.
		Where("is_verified = ?", true).
		Order("name ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *FoodRepository) FindByID(foodID uint) (models.Food, error) {
	var food models.Food
	if err := repo.database.First(&food, foodID).Error; err != nil {
		return models.Food{}, err
	}
	return food, nil
}

func (repo *FoodRepository) Create(food *models.Food) error {
	return repo.database.Create(food).Error
}

func (repo *FoodRepository) Save(food *models.Food) error {
	return repo.database.Save(food).Error
}

func (repo *FoodRepository) Delete(foodID uint) error {
	return repo.database.Delete(&models.Food{}, foodID).Error
}

// Search matches the query against name and brand of verified foods,
// case-insensitively.
func (repo *FoodRepository) Search(query string, limit int) ([]models.Food, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	foods := make([]models.Food, 0)
	if err := repo.database.
		Where("is_verified = ? AND (lower(name) LIKE ? OR lower(brand) LIKE ?)", true, pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
