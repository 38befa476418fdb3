// Package ai holds the image-understanding boundary: a small client
// interface the rest of the backend consumes, and its Gemini REST
// implementation.
package ai

import "context"

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	// UnidentifiedFoodName is the sentinel the prompt instructs the model to
	// answer with when it cannot identify the food.
	UnidentifiedFoodName = "unidentified"
)

// Nutrition is one set of macro values as reported by the pipeline.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Result is a completed pipeline call. PerServing and Per100g are each
/// optional: the model returns whichever it could estimate.
type Result struct {
	FoodName    string
	ServingSize string
	Confidence  string
	PerServing  *Nutrition
	Per100g     *Nutrition

	InputTokens  int
	OutputTokens int
	CostUSD      float64

	// RawResponse is the model's verbatim answer, retained for audit.
	RawResponse []byte
}

// Client analyzes food images. Implementations must honor ctx cancellation;
// callers bound every call with a timeout.
type Client interface {
	AnalyzeFoodImage(ctx context.Context, image []byte, format string) (Result, error)
}
