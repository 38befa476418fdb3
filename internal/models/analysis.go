package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AnalysisPending    = "pending"
	AnalysisProcessing = "processing"
	AnalysisCompleted  = "completed"
	// AnalysisFailed means the pipeline answered but the food could not be
	// identified with enough confidence. AnalysisError means the call itself
	// failed (timeout, decode failure, malformed output).
	AnalysisFailed = "failed"
	AnalysisError  = "error"
)

// ImageAnalysis records one image-analysis attempt. The image itself is never
// stored, only its size and format.
type ImageAnalysis struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index:idx_analysis_user_status" json:"user_id"`
	RequestID string `gorm:"not null;uniqueIndex" json:"request_id"`

	ImageSize   int    `json:"image_size"`
	ImageFormat string `json:"image_format"`

	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `gorm:"column:cost_usd" json:"cost_usd"`

	Status       string `gorm:"not null;default:pending;index:idx_analysis_user_status" json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`

	RawResponse       datatypes.JSON `json:"-"`
	ProcessingSeconds float64        `json:"processing_time_seconds"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsageStats accumulates per-user per-day AI accounting. Every attempt
// increments it, identified or not: cost is incurred regardless.
type UsageStats struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"not null;uniqueIndex:uidx_usage_user_date" json:"user_id"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex:uidx_usage_user_date" json:"date"`

	TotalRequests     int     `gorm:"not null;default:0" json:"total_requests"`
	TotalInputTokens  int     `gorm:"not null;default:0" json:"total_input_tokens"`
	TotalOutputTokens int     `gorm:"not null;default:0" json:"total_output_tokens"`
	TotalCostUSD      float64 `gorm:"column:total_cost_usd;not null;default:0" json:"total_cost_usd"`

	SuccessfulAnalyses int `gorm:"not null;default:0" json:"successful_analyses"`
	FailedAnalyses     int `gorm:"not null;default:0" json:"failed_analyses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SuccessRate is the percentage of identified analyses, 2 decimal places.
func (stats UsageStats) SuccessRate() float64 {
	total := stats.SuccessfulAnalyses + stats.FailedAnalyses
	if total == 0 {
		return 0
	}
	rate := float64(stats.SuccessfulAnalyses) / float64(total) * 100
	return float64(int(rate*100+0.5)) / 100
}
