package forecast

import "time"

// Features are the predictor inputs derived from a shop's sales history.
// TempC and IsEventDay are fixed placeholders for now; neither is derived
// from live data yet.
type Features struct {
	Lag1       float64  `json:"lag_1"`
	Lag7       float64  `json:"lag_7"`
	R7Mean     float64  `json:"r7_mean"`
	R30Mean    float64  `json:"r30_mean"`
	TempC      *float64 `json:"temp_c"`
	IsEventDay int      `json:"is_event_day"`
}

// defaultTempC is the placeholder ambient temperature sent to the predictor.
var defaultTempC = 28.0

// computeFeatures derives the lag and rolling-window features from the full
// sales history, which must be ordered by CreatedAt descending. It also
// returns the 7-day window so callers can rank items without re-filtering.
//
// lag_7 is the quantity of the oldest record inside the 7-day window, a
// simple proxy for a week-old data point rather than a true 7-day lag.
func computeFeatures(sales []SaleRecord, now time.Time) (Features, []SaleRecord) {
	last7 := lastNDays(sales, 7, now)
	last30 := lastNDays(sales, 30, now)

	f := Features{
		TempC:      &defaultTempC,
		IsEventDay: 0,
	}

	if len(sales) > 0 {
		f.Lag1 = float64(sales[0].Quantity)
	}
	if len(last7) > 0 {
		f.Lag7 = float64(last7[len(last7)-1].Quantity)
	}

	f.R7Mean = meanQuantity(last7)
	f.R30Mean = meanQuantity(last30)

	return f, last7
}

// meanQuantity averages Quantity over the window, yielding 0 for an empty
// window instead of dividing by zero.
func meanQuantity(window []SaleRecord) float64 {
	var sum float64
	for _, s := range window {
		sum += float64(s.Quantity)
	}

	n := len(window)
	if n == 0 {
		n = 1
	}
	return sum / float64(n)
}
