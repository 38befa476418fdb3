package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListByUser(userID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByUserAndID(userID uint, logID uint) (models.DailyLog, error) {
	var entry models.DailyLog
	if err := repo.database.
		Preload("Items").
		Where("user_id = ? AND id = ?", userID, logID).
		First(&entry).Error; err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (repo *DailyLogRepository) FindByUserAndDate(userID uint, day time.Time) (models.DailyLog, bool, error) {
	var entry models.DailyLog
	err := repo.database.
		Preload("Items").
		Where("user_id = ? AND date = ?", userID, day).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyLog{}, false, nil
	}
	if err != nil {
		return models.DailyLog{}, false, err
	}
	return entry, true, nil
}

// GetOrCreate returns the log row for (user, day), creating it on first use.
func (repo *DailyLogRepository) GetOrCreate(userID uint, day time.Time) (models.DailyLog, error) {
	var entry models.DailyLog
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		found, err := getOrCreateLogTx(tx, userID, day)
		if err != nil {
			return err
		}
		entry = found
		return nil
	})
	return entry, err
}

func getOrCreateLogTx(tx *gorm.DB, userID uint, day time.Time) (models.DailyLog, error) {
	var entry models.DailyLog
	err := tx.Where("user_id = ? AND date = ?", userID, day).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.DailyLog{UserID: userID, Date: day}
		if err := tx.Create(&entry).Error; err != nil {
			return models.DailyLog{}, err
		}
		return entry, nil
	}
	if err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

// CreateItem inserts the item and recomputes the log's totals in one
// transaction, so the stored totals never drift from the item rows.
func (repo *DailyLogRepository) CreateItem(item *models.LoggedFoodItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recomputeTotalsTx(tx, item.DailyLogID)
	})
}

func (repo *DailyLogRepository) SaveItem(item *models.LoggedFoodItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return recomputeTotalsTx(tx, item.DailyLogID)
	})
}

func (repo *DailyLogRepository) DeleteItem(item models.LoggedFoodItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LoggedFoodItem{}, item.ID).Error; err != nil {
			return err
		}
		return recomputeTotalsTx(tx, item.DailyLogID)
	})
}

// ResetItems removes every item from the log and zeroes the totals.
func (repo *DailyLogRepository) ResetItems(logID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_log_id = ?", logID).Delete(&models.LoggedFoodItem{}).Error; err != nil {
			return err
		}
		return recomputeTotalsTx(tx, logID)
	})
}

// FindItemForUser resolves an item by id, scoped through its log to the
// owning user.
func (repo *DailyLogRepository) FindItemForUser(userID uint, itemID uint) (models.LoggedFoodItem, error) {
	var item models.LoggedFoodItem
	if err := repo.database.
		Joins("JOIN daily_logs ON daily_logs.id = logged_food_items.daily_log_id").
		Where("logged_food_items.id = ? AND daily_logs.user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return models.LoggedFoodItem{}, err
	}
	return item, nil
}

func (repo *DailyLogRepository) ListItems(logID uint) ([]models.LoggedFoodItem, error) {
	items := make([]models.LoggedFoodItem, 0)
	if err := repo.database.
		Where("daily_log_id = ?", logID).
		Order("logged_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RecomputeTotals re-derives the four totals from the current item rows.
// Idempotent: it always overwrites with a fresh SUM, never adds increments.
func (repo *DailyLogRepository) RecomputeTotals(logID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return recomputeTotalsTx(tx, logID)
	})
}

func recomputeTotalsTx(tx *gorm.DB, logID uint) error {
	var sums struct {
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
	}
	if err := tx.Raw(`
SELECT
  COALESCE(SUM(calories), 0) AS calories,
  COALESCE(SUM(protein), 0) AS protein,
  COALESCE(SUM(carbs), 0) AS carbs,
  COALESCE(SUM(fat), 0) AS fat
FROM logged_food_items
WHERE daily_log_id = ?`, logID).Scan(&sums).Error; err != nil {
		return err
	}

	return tx.Model(&models.DailyLog{}).Where("id = ?", logID).Updates(map[string]any{
		"total_calories": sums.Calories,
		"total_protein":  sums.Protein,
		"total_carbs":    sums.Carbs,
		"total_fat":      sums.Fat,
	}).Error
}
