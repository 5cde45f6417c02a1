package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

type fakeHistory struct {
	sales []SaleRecord
	err   error
	calls int
}

func (f *fakeHistory) SalesForShop(ctx context.Context, shopID string) ([]SaleRecord, error) {
	f.calls++
	return f.sales, f.err
}

type fakePredictor struct {
	prediction float64
	err        error
	calls      int
	lastInput  Features
}

func (f *fakePredictor) PredictDaily(ctx context.Context, feats Features) (float64, error) {
	f.calls++
	f.lastInput = feats
	return f.prediction, f.err
}

type fakeSummarizer struct {
	text  string
	err   error
	calls int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, weeklyDemand int, topItems, lowItems []string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestService(h *fakeHistory, p *fakePredictor, s *fakeSummarizer) *Service {
	svc := NewService(h, p, s)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestWeeklyForecastEmptyHistory(t *testing.T) {
	h := &fakeHistory{}
	p := &fakePredictor{}
	s := &fakeSummarizer{}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, res.WeeklyDemand)
	assert.Empty(t, res.TopItems)
	assert.Empty(t, res.LowItems)
	assert.Equal(t, NoDataMessage, res.ForecastText)
	assert.False(t, res.PredictorDegraded)
	assert.False(t, res.SummaryDegraded)

	// Short-circuit: no external calls for an empty history.
	assert.Equal(t, 0, p.calls)
	assert.Equal(t, 0, s.calls)
}

func TestWeeklyForecastMilkBreadScenario(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Milk", Quantity: 10, CreatedAt: daysAgo(2)},
		{Item: "Bread", Quantity: 2, CreatedAt: daysAgo(3)},
	}}
	p := &fakePredictor{prediction: 5}
	s := &fakeSummarizer{text: "Expect a busy week."}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, 35, res.WeeklyDemand)
	assert.Equal(t, []string{"Milk", "Bread"}, res.TopItems)
	// Only two distinct items, so both appear in both lists.
	assert.Equal(t, []string{"Bread", "Milk"}, res.LowItems)
	assert.Equal(t, "Expect a busy week.", res.ForecastText)
	assert.False(t, res.PredictorDegraded)
	assert.False(t, res.SummaryDegraded)
}

func TestWeeklyForecastPredictorFailure(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Milk", Quantity: 10, CreatedAt: daysAgo(2)},
		{Item: "Bread", Quantity: 2, CreatedAt: daysAgo(3)},
	}}
	p := &fakePredictor{err: errors.New("connection refused")}
	s := &fakeSummarizer{text: "Quiet week ahead."}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, res.WeeklyDemand)
	assert.True(t, res.PredictorDegraded)

	// Ranking is independent of the predictor and still computed.
	assert.Equal(t, []string{"Milk", "Bread"}, res.TopItems)
	assert.Equal(t, []string{"Bread", "Milk"}, res.LowItems)
	assert.Equal(t, "Quiet week ahead.", res.ForecastText)
	assert.False(t, res.SummaryDegraded)
}

func TestWeeklyForecastSummarizerFailure(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Milk", Quantity: 10, CreatedAt: daysAgo(2)},
	}}
	p := &fakePredictor{prediction: 3}
	s := &fakeSummarizer{err: errors.New("quota exceeded")}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, FallbackSummary, res.ForecastText)
	assert.True(t, res.SummaryDegraded)

	// Numeric results remain computed normally.
	assert.Equal(t, 21, res.WeeklyDemand)
	assert.Equal(t, []string{"Milk"}, res.TopItems)
	assert.Equal(t, []string{"Milk"}, res.LowItems)
	assert.False(t, res.PredictorDegraded)
}

func TestWeeklyForecastHistoryFailure(t *testing.T) {
	h := &fakeHistory{err: errors.New("store unreachable")}
	svc := newTestService(h, &fakePredictor{}, &fakeSummarizer{})

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestWeeklyForecastNegativePredictionClamped(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Eggs", Quantity: 1, CreatedAt: daysAgo(1)},
	}}
	p := &fakePredictor{prediction: -4}
	s := &fakeSummarizer{text: "ok"}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, res.WeeklyDemand)
}

func TestWeeklyForecastRounding(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Eggs", Quantity: 1, CreatedAt: daysAgo(1)},
	}}
	p := &fakePredictor{prediction: 2.5}
	s := &fakeSummarizer{text: "ok"}
	svc := newTestService(h, p, s)

	res, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	// 2.5 * 7 = 17.5, rounded to nearest integer.
	assert.Equal(t, 18, res.WeeklyDemand)
}

func TestWeeklyForecastPredictorReceivesFeatures(t *testing.T) {
	h := &fakeHistory{sales: []SaleRecord{
		{Item: "Milk", Quantity: 6, CreatedAt: daysAgo(1)},
		{Item: "Bread", Quantity: 2, CreatedAt: daysAgo(5)},
		{Item: "Rice", Quantity: 4, CreatedAt: daysAgo(20)},
	}}
	p := &fakePredictor{prediction: 1}
	s := &fakeSummarizer{text: "ok"}
	svc := newTestService(h, p, s)

	_, err := svc.WeeklyForecast(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, p.calls)

	f := p.lastInput
	assert.Equal(t, 6.0, f.Lag1)
	assert.Equal(t, 2.0, f.Lag7)
	assert.Equal(t, 4.0, f.R7Mean)
	assert.Equal(t, 4.0, f.R30Mean)
	if assert.NotNil(t, f.TempC) {
		assert.Equal(t, 28.0, *f.TempC)
	}
	assert.Equal(t, 0, f.IsEventDay)
}
