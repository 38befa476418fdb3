package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type UsageRepository struct {
	database *gorm.DB
}

func NewUsageRepository(database *gorm.DB) *UsageRepository {
	return &UsageRepository{database: database}
}

// UsageDelta is one analysis attempt's contribution to the day's counters.
type UsageDelta struct {
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Identified   bool
}

// RecordAttempt folds one attempt into the (user, day) row. The increments
// run as a single relative UPDATE inside the get-or-create transaction, so
// two concurrent attempts for the same day both land; neither overwrites
// the other's counts with a stale read.
func (repo *UsageRepository) RecordAttempt(userID uint, day time.Time, delta UsageDelta) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var stats models.UsageStats
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = models.UsageStats{UserID: userID, Date: day}
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		succeeded := 0
		failed := 0
		if delta.Identified {
			succeeded = 1
		} else {
			failed = 1
		}

		return tx.Exec(`
UPDATE usage_stats SET
  total_requests = total_requests + 1,
  total_input_tokens = total_input_tokens + ?,
  total_output_tokens = total_output_tokens + ?,
  total_cost_usd = total_cost_usd + ?,
  successful_analyses = successful_analyses + ?,
  failed_analyses = failed_analyses + ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
			delta.InputTokens,
			delta.OutputTokens,
			delta.CostUSD,
			succeeded,
			failed,
			stats.ID,
		).Error
	})
}

func (repo *UsageRepository) ListRange(userID uint, from time.Time, to time.Time) ([]models.UsageStats, error) {
	stats := make([]models.UsageStats, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (repo *UsageRepository) FindByUserAndDate(userID uint, day time.Time) (models.UsageStats, bool, error) {
	var stats models.UsageStats
	err := repo.database.Where("user_id = ? AND date = ?", userID, day).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UsageStats{}, false, nil
	}
	if err != nil {
		return models.UsageStats{}, false, err
	}
	return stats, true, nil
}
