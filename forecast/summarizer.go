package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// summarizeTimeout bounds a single Gemini call.
const summarizeTimeout = 10 * time.Second

// GeminiSummarizer generates the forecast text with the Gemini API.
type GeminiSummarizer struct {
	apiKey string
	model  string
}

// NewGeminiSummarizer creates a summarizer using the given API key and model name.
func NewGeminiSummarizer(apiKey, model string) *GeminiSummarizer {
	return &GeminiSummarizer{apiKey: apiKey, model: model}
}

// Summarize asks Gemini for a short, shopkeeper-friendly forecast message.
func (g *GeminiSummarizer) Summarize(ctx context.Context, weeklyDemand int, topItems, lowItems []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	prompt := fmt.Sprintf(
		`You are an assistant generating a demand forecast for a small grocery shop.

Weekly demand estimated: %d units.

Top fast-moving items: %s
Slow-moving items: %s

Write a simple message (max 6 lines) easily understood by any shopkeeper.
Avoid technical terms.`,
		weeklyDemand,
		strings.Join(topItems, ", "),
		strings.Join(lowItems, ", "),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate forecast summary: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned an empty response")
	}

	return strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0])), nil
}
