package forecast

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// NoDataMessage is returned as the forecast text when a shop has no sales history.
const NoDataMessage = "No sales data found to generate forecast."

// FallbackSummary is returned when the summary service cannot produce a text.
const FallbackSummary = "Unable to generate forecast summary."

// SaleRecord is one historical transaction, read-only to the aggregator.
type SaleRecord struct {
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Result is the output of one weekly forecast run.
// PredictorDegraded and SummaryDegraded distinguish a genuine zero/fallback
// from a value degraded by an external service failure.
type Result struct {
	WeeklyDemand      int       `json:"weekly_demand"`
	TopItems          []string  `json:"top_items"`
	LowItems          []string  `json:"low_items"`
	ForecastText      string    `json:"forecast_text"`
	PredictorDegraded bool      `json:"predictor_degraded"`
	SummaryDegraded   bool      `json:"summary_degraded"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// HistorySource retrieves a shop's sales ordered by creation time descending.
type HistorySource interface {
	SalesForShop(ctx context.Context, shopID string) ([]SaleRecord, error)
}

// Predictor estimates units sold per day from the computed features.
type Predictor interface {
	PredictDaily(ctx context.Context, f Features) (float64, error)
}

// Summarizer turns the numeric forecast into a short shopkeeper-friendly text.
type Summarizer interface {
	Summarize(ctx context.Context, weeklyDemand int, topItems, lowItems []string) (string, error)
}

// Service runs the weekly demand forecast pipeline for a shop.
type Service struct {
	history    HistorySource
	predictor  Predictor
	summarizer Summarizer
	now        func() time.Time
}

// NewService creates a forecast Service with its collaborators injected.
func NewService(history HistorySource, predictor Predictor, summarizer Summarizer) *Service {
	return &Service{
		history:    history,
		predictor:  predictor,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// WeeklyForecast generates the demand forecast for a shop.
//
// The pipeline fetches the shop's sales history, computes lag and
// rolling-window features, asks the predictor for a daily unit estimate,
// ranks items over the 7-day window, and asks the summarizer for a short
// text. A failing predictor or summarizer degrades the result instead of
// failing it; only a history-fetch failure is returned as an error.
func (s *Service) WeeklyForecast(ctx context.Context, shopID string) (*Result, error) {
	sales, err := s.history.SalesForShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("fetch sales history for shop %s: %w", shopID, err)
	}

	now := s.now()

	if len(sales) == 0 {
		return &Result{
			WeeklyDemand: 0,
			TopItems:     []string{},
			LowItems:     []string{},
			ForecastText: NoDataMessage,
			GeneratedAt:  now,
		}, nil
	}

	feats, last7 := computeFeatures(sales, now)

	daily, err := s.predictor.PredictDaily(ctx, feats)
	predictorDegraded := false
	if err != nil {
		log.Printf("Predictor unavailable for shop %s, degrading to zero demand: %v", shopID, err)
		daily = 0
		predictorDegraded = true
	}

	weeklyDemand := int(math.Round(daily * 7))
	if weeklyDemand < 0 {
		weeklyDemand = 0
	}

	topItems, lowItems := rankItems(last7)

	text, err := s.summarizer.Summarize(ctx, weeklyDemand, topItems, lowItems)
	summaryDegraded := false
	if err != nil {
		log.Printf("Summarizer unavailable for shop %s, using fallback text: %v", shopID, err)
		text = FallbackSummary
		summaryDegraded = true
	}

	return &Result{
		WeeklyDemand:      weeklyDemand,
		TopItems:          topItems,
		LowItems:          lowItems,
		ForecastText:      text,
		PredictorDegraded: predictorDegraded,
		SummaryDegraded:   summaryDegraded,
		GeneratedAt:       now,
	}, nil
}
