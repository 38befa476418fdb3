package db

import (
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type AnalysisRepository struct {
	database *gorm.DB
}

func NewAnalysisRepository(database *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{database: database}
}

func (repo *AnalysisRepository) Create(analysis *models.ImageAnalysis) error {
	return repo.database.Create(analysis).Error
}

func (repo *AnalysisRepository) Save(analysis *models.ImageAnalysis) error {
	return repo.database.Save(analysis).Error
}

func (repo *AnalysisRepository) ListByUser(userID uint) ([]models.ImageAnalysis, error) {
	analyses := make([]models.ImageAnalysis, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (repo *AnalysisRepository) FindByUserAndID(userID uint, analysisID uint) (models.ImageAnalysis, error) {
	var analysis models.ImageAnalysis
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, analysisID).
		First(&analysis).Error; err != nil {
		return models.ImageAnalysis{}, err
	}
	return analysis, nil
}

// AnalysisTotals is an aggregate over a set of analysis rows.
type AnalysisTotals struct {
	Total      int64
	Completed  int64
	Failed     int64
	TotalCost  float64
	LastAt     *time.Time
}

func (repo *AnalysisRepository) TotalsByUser(userID uint) (AnalysisTotals, error) {
	return repo.totals(repo.database.Model(&models.ImageAnalysis{}).Where("user_id = ?", userID))
}

func (repo *AnalysisRepository) TotalsByUserSince(userID uint, since time.Time) (AnalysisTotals, error) {
	return repo.totals(repo.database.Model(&models.ImageAnalysis{}).
		Where("user_id = ? AND created_at >= ?", userID, since))
}

func (repo *AnalysisRepository) totals(query *gorm.DB) (AnalysisTotals, error) {
	var row struct {
		Total     int64
		Completed int64
		Failed    int64
		TotalCost float64
		LastAt    *time.Time
	}
	if err := query.Select(`
COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
COALESCE(SUM(CASE WHEN status IN ('failed', 'error') THEN 1 ELSE 0 END), 0) AS failed,
COALESCE(SUM(cost_usd), 0) AS total_cost,
MAX(created_at) AS last_at`).Scan(&row).Error; err != nil {
		return AnalysisTotals{}, err
	}
	return AnalysisTotals{
		Total:     row.Total,
		Completed: row.Completed,
		Failed:    row.Failed,
		TotalCost: row.TotalCost,
		LastAt:    row.LastAt,
	}, nil
}
