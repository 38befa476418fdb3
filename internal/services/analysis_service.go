package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/terraincognita07/macrolog/internal/ai"
	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/models"
)

// ErrAnalysisUnavailable is returned when no AI client is configured.
var ErrAnalysisUnavailable = errors.New("image analysis is not available")

const identificationFailedMessage = "food could not be identified from the image"

// AnalysisService runs the food-image pipeline: it records an attempt row
// before calling out, applies the acceptance policy to the answer, stores the
// identified food, and updates the per-day usage aggregate on every attempt,
// identified or not.
type AnalysisService struct {
	client   ai.Client
	analyses *db.AnalysisRepository
	scanned  *db.ScannedFoodRepository
	usage    *db.UsageRepository
	location *time.Location
	timeout  time.Duration
}

func NewAnalysisService(client ai.Client, repos *db.Repositories, location *time.Location, timeout time.Duration) *AnalysisService {
	return &AnalysisService{
		client:   client,
		analyses: repos.Analyses,
		scanned:  repos.ScannedFoods,
		usage:    repos.Usage,
		location: location,
		timeout:  timeout,
	}
}

// AnalysisOutcome is one finished attempt. ScannedFood is nil unless the
// analysis completed with an accepted identification.
type AnalysisOutcome struct {
	Analysis    models.ImageAnalysis
	ScannedFood *models.ScannedFood
}

// Analyze runs one attempt for an already validated image. Pipeline failures
// and rejected identifications are not errors at this level: they end in a
// terminal analysis row the caller can inspect. Only storage failures and a
// missing client surface as errors.
func (service *AnalysisService) Analyze(ctx context.Context, userID uint, image []byte, format string) (AnalysisOutcome, error) {
	if service.client == nil {
		return AnalysisOutcome{}, ErrAnalysisUnavailable
	}

	analysis := models.ImageAnalysis{
		UserID:      userID,
		RequestID:   uuid.NewString(),
		ImageSize:   len(image),
		ImageFormat: format,
		Status:      models.AnalysisProcessing,
	}
	if err := service.analyses.Create(&analysis); err != nil {
		return AnalysisOutcome{}, fmt.Errorf("record analysis attempt: %w", err)
	}

	callCtx := ctx
	if service.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, service.timeout)
		defer cancel()
	}

	started := time.Now()
	result, callErr := service.client.AnalyzeFoodImage(callCtx, image, format)
	analysis.ProcessingSeconds = time.Since(started).Seconds()
	day := Day(time.Now(), service.location)

	if callErr != nil {
		analysis.Status = models.AnalysisError
		analysis.ErrorMessage = callErr.Error()
		if err := service.analyses.Save(&analysis); err != nil {
			return AnalysisOutcome{}, fmt.Errorf("record analysis failure: %w", err)
		}
		if err := service.usage.RecordAttempt(userID, day, db.UsageDelta{Identified: false}); err != nil {
			return AnalysisOutcome{}, fmt.Errorf("record usage: %w", err)
		}
		return AnalysisOutcome{Analysis: analysis}, nil
	}

	analysis.InputTokens = result.InputTokens
	analysis.OutputTokens = result.OutputTokens
	analysis.CostUSD = result.CostUSD
	analysis.RawResponse = datatypes.JSON(result.RawResponse)

	identified := ResultIdentified(result)

	var scannedFood *models.ScannedFood
	if identified {
		analysis.Status = models.AnalysisCompleted
		food := scannedFoodFromResult(userID, result)
		if err := service.scanned.Create(&food); err != nil {
			return AnalysisOutcome{}, fmt.Errorf("store scanned food: %w", err)
		}
		scannedFood = &food
	} else {
		analysis.Status = models.AnalysisFailed
		analysis.ErrorMessage = identificationFailedMessage
	}

	if err := service.analyses.Save(&analysis); err != nil {
		return AnalysisOutcome{}, fmt.Errorf("record analysis result: %w", err)
	}
	delta := db.UsageDelta{
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      result.CostUSD,
		Identified:   identified,
	}
	if err := service.usage.RecordAttempt(userID, day, delta); err != nil {
		return AnalysisOutcome{}, fmt.Errorf("record usage: %w", err)
	}

	return AnalysisOutcome{Analysis: analysis, ScannedFood: scannedFood}, nil
}

// ResultIdentified is the acceptance policy: the model must have named the
// food, the name must not be the unidentified sentinel, and the confidence
// must be above the lowest tier.
func ResultIdentified(result ai.Result) bool {
	if result.FoodName == "" || result.FoodName == ai.UnidentifiedFoodName {
		return false
	}
	return result.Confidence != ai.ConfidenceLow
}

func scannedFoodFromResult(userID uint, result ai.Result) models.ScannedFood {
	food := models.ScannedFood{
		UserID:      userID,
		Name:        result.FoodName,
		ServingSize: result.ServingSize,
		RawResponse: datatypes.JSON(result.RawResponse),
	}
	if result.PerServing != nil {
		food.CaloriesPerServing = floatPtr(result.PerServing.Calories)
		food.ProteinPerServing = floatPtr(result.PerServing.ProteinG)
		food.CarbsPerServing = floatPtr(result.PerServing.CarbsG)
		food.FatPerServing = floatPtr(result.PerServing.FatG)
	}
	if result.Per100g != nil {
		food.CaloriesPer100 = floatPtr(result.Per100g.Calories)
		food.ProteinPer100 = floatPtr(result.Per100g.ProteinG)
		food.CarbsPer100 = floatPtr(result.Per100g.CarbsG)
		food.FatPer100 = floatPtr(result.Per100g.FatG)
	}
	return food
}

func floatPtr(value float64) *float64 {
	return &value
}

// UsageDayReport is one day of the usage report, success rate included.
type UsageDayReport struct {
	Date               string  `json:"date"`
	TotalRequests      int     `json:"total_requests"`
	TotalInputTokens   int     `json:"total_input_tokens"`
	TotalOutputTokens  int     `json:"total_output_tokens"`
	TotalCostUSD       float64 `json:"total_cost_usd"`
	SuccessfulAnalyses int     `json:"successful_analyses"`
	FailedAnalyses     int     `json:"failed_analyses"`
	SuccessRate        float64 `json:"success_rate"`
}

// UsageReport covers a trailing window of days, oldest first. Days with no
// attempts have no row.
type UsageReport struct {
	From               string           `json:"from"`
	To                 string           `json:"to"`
	Days               []UsageDayReport `json:"days"`
	TotalRequests      int              `json:"total_requests"`
	TotalInputTokens   int              `json:"total_input_tokens"`
	TotalOutputTokens  int              `json:"total_output_tokens"`
	TotalCostUSD       float64          `json:"total_cost_usd"`
	SuccessfulAnalyses int              `json:"successful_analyses"`
	FailedAnalyses     int              `json:"failed_analyses"`
}

// Usage builds the trailing-window report ending today. The window is clamped
// to 1..365 days.
func (service *AnalysisService) Usage(userID uint, days int) (UsageReport, error) {
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}
	to := Day(time.Now(), service.location)
	from := to.AddDate(0, 0, -(days - 1))

	rows, err := service.usage.ListRange(userID, from, to)
	if err != nil {
		return UsageReport{}, err
	}

	report := UsageReport{
		From: FormatDay(from),
		To:   FormatDay(to),
		Days: make([]UsageDayReport, 0, len(rows)),
	}
	for _, row := range rows {
		report.Days = append(report.Days, UsageDayReport{
			Date:               FormatDay(row.Date),
			TotalRequests:      row.TotalRequests,
			TotalInputTokens:   row.TotalInputTokens,
			TotalOutputTokens:  row.TotalOutputTokens,
			TotalCostUSD:       row.TotalCostUSD,
			SuccessfulAnalyses: row.SuccessfulAnalyses,
			FailedAnalyses:     row.FailedAnalyses,
			SuccessRate:        row.SuccessRate(),
		})
		report.TotalRequests += row.TotalRequests
		report.TotalInputTokens += row.TotalInputTokens
		report.TotalOutputTokens += row.TotalOutputTokens
		report.TotalCostUSD += row.TotalCostUSD
		report.SuccessfulAnalyses += row.SuccessfulAnalyses
		report.FailedAnalyses += row.FailedAnalyses
	}
	return report, nil
}

// LifetimeStats summarizes a user's analysis history overall and for the
// current calendar month.
type LifetimeStats struct {
	TotalAnalyses     int64      `json:"total_analyses"`
	CompletedAnalyses int64      `json:"completed_analyses"`
	FailedAnalyses    int64      `json:"failed_analyses"`
	TotalCostUSD      float64    `json:"total_cost_usd"`
	MonthAnalyses     int64      `json:"month_analyses"`
	MonthCostUSD      float64    `json:"month_cost_usd"`
	LastAnalysisAt    *time.Time `json:"last_analysis_at,omitempty"`
}

func (service *AnalysisService) Stats(userID uint) (LifetimeStats, error) {
	overall, err := service.analyses.TotalsByUser(userID)
	if err != nil {
		return LifetimeStats{}, err
	}
	now := time.Now().In(service.location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, service.location)
	month, err := service.analyses.TotalsByUserSince(userID, monthStart)
	if err != nil {
		return LifetimeStats{}, err
	}
	return LifetimeStats{
		TotalAnalyses:     overall.Total,
		CompletedAnalyses: overall.Completed,
		FailedAnalyses:    overall.Failed,
		TotalCostUSD:      overall.TotalCost,
		MonthAnalyses:     month.Total,
		MonthCostUSD:      month.TotalCost,
		LastAnalysisAt:    overall.LastAt,
	}, nil
}
