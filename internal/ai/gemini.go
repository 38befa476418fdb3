package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-1.5-flash"

	// Published per-token prices: $0.15 / 1M input, $0.60 / 1M output.
	inputPricePerToken  = 0.00000015
	outputPricePerToken = 0.0000006
)

const foodAnalysisPrompt = `Analyze this food image and report its nutrition as JSON.

IMPORTANT: answer with valid JSON only, no extra text.

Required format:
{
    "food_name": "identified food name",
    "serving_size": "portion description (e.g. '1 medium apple', '100g', '1 cup')",
    "confidence": "high|medium|low",
    "nutrition_per_serving": {
        "calories": number,
        "protein_g": number,
        "carbs_g": number,
        "fat_g": number
    },
    "nutrition_per_100g": {
        "calories": number,
        "protein_g": number,
        "carbs_g": number,
        "fat_g": number
    }
}

If you cannot identify the food, answer:
{
    "food_name": "unidentified",
    "confidence": "low",
    "error": "could not identify the food in the image"
}

Analyze the image now:`

// GeminiClient calls the Gemini generateContent REST endpoint. It is safe
// for concurrent use.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	return &GeminiClient{
		baseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type geminiGenerateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (client *GeminiClient) AnalyzeFoodImage(ctx context.Context, image []byte, format string) (Result, error) {
	payload := geminiGenerateRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: foodAnalysisPrompt},
				{InlineData: &geminiInlineData{
					MimeType: "image/" + format,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", client.baseURL, client.model, client.apiKey)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build gemini request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return Result{}, fmt.Errorf("call gemini: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, 4<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read gemini response: %w", err)
	}

	var decoded geminiGenerateResponse
	if err := json.Unmarshal(responseBody, &decoded); err != nil {
		return Result{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		message := strings.TrimSpace(decoded.Error.Message)
		if message == "" {
			message = response.Status
		}
		return Result{}, fmt.Errorf("gemini returned %d: %s", response.StatusCode, message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return Result{}, errors.New("gemini returned no candidates")
	}

	answer := decoded.Candidates[0].Content.Parts[0].Text
	result, err := parseFoodAnswer(answer)
	if err != nil {
		return Result{}, err
	}

	result.InputTokens = decoded.UsageMetadata.PromptTokenCount
	result.OutputTokens = decoded.UsageMetadata.CandidatesTokenCount
	if result.InputTokens == 0 {
		result.InputTokens = estimateInputTokens(foodAnalysisPrompt, len(image))
	}
	if result.OutputTokens == 0 {
		result.OutputTokens = estimateOutputTokens(answer)
	}
	result.CostUSD = calculateCost(result.InputTokens, result.OutputTokens)
	return result, nil
}

type foodAnswerPayload struct {
	FoodName    string     `json:"food_name"`
	ServingSize string     `json:"serving_size"`
	Confidence  string     `json:"confidence"`
	PerServing  *Nutrition `json:"nutrition_per_serving"`
	Per100g     *Nutrition `json:"nutrition_per_100g"`
	Error       string     `json:"error"`
}

// parseFoodAnswer decodes the model's JSON answer. The model sometimes wraps
// its answer in a markdown code fence despite the prompt; the fence is
// stripped before decoding.
func parseFoodAnswer(answer string) (Result, error) {
	cleaned := strings.TrimSpace(answer)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload foodAnswerPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Result{}, fmt.Errorf("parse food answer: %w", err)
	}
	if strings.TrimSpace(payload.FoodName) == "" {
		return Result{}, errors.New("food answer missing food_name")
	}

	return Result{
		FoodName:    strings.TrimSpace(payload.FoodName),
		ServingSize: strings.TrimSpace(payload.ServingSize),
		Confidence:  strings.ToLower(strings.TrimSpace(payload.Confidence)),
		PerServing:  payload.PerServing,
		Per100g:     payload.Per100g,
		RawResponse: []byte(answer),
	}, nil
}

// estimateInputTokens approximates prompt plus image cost when the API does
// not report usage: ~1.3 tokens per prompt word, one token per kilobyte of
// image data.
func estimateInputTokens(prompt string, imageSizeBytes int) int {
	textTokens := float64(len(strings.Fields(prompt))) * 1.3
	imageTokens := float64(imageSizeBytes) / 1000
	return int(textTokens + imageTokens)
}

func estimateOutputTokens(answer string) int {
	return int(float64(len(strings.Fields(answer))) * 1.3)
}

func calculateCost(inputTokens int, outputTokens int) float64 {
	return float64(inputTokens)*inputPricePerToken + float64(outputTokens)*outputPricePerToken
}
