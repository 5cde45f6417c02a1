package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// predictTimeout bounds a single predictor call so a forecast request never
// blocks indefinitely on the regression service.
const predictTimeout = 10 * time.Second

// HTTPPredictor calls the remote demand regression service.
type HTTPPredictor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPredictor creates a predictor client for the given base URL.
func NewHTTPPredictor(baseURL string) *HTTPPredictor {
	return &HTTPPredictor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: predictTimeout},
	}
}

// PredictDaily posts the feature vector to the regression endpoint and
// returns the predicted units-per-day figure. The service normally responds
// with {"prediction": <number>}, but a bare number body is tolerated.
func (p *HTTPPredictor) PredictDaily(ctx context.Context, f Features) (float64, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return 0, fmt.Errorf("encode predict payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call predict endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("predict endpoint returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("decode predict response: %w", err)
	}

	var wrapped struct {
		Prediction *float64 `json:"prediction"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Prediction != nil {
		return *wrapped.Prediction, nil
	}

	var bare float64
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	return 0, fmt.Errorf("predict response has no prediction field: %s", string(raw))
}
