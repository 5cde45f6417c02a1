package forecast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPPredictorWrappedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction": 4.2}`))
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL)
	got, err := p.PredictDaily(context.Background(), Features{Lag1: 3})
	assert.NoError(t, err)
	assert.InDelta(t, 4.2, got, 1e-9)
}

func TestHTTPPredictorBareNumberResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`7.5`))
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL)
	got, err := p.PredictDaily(context.Background(), Features{})
	assert.NoError(t, err)
	assert.InDelta(t, 7.5, got, 1e-9)
}

func TestHTTPPredictorMissingPredictionField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL)
	_, err := p.PredictDaily(context.Background(), Features{})
	assert.Error(t, err)
}

func TestHTTPPredictorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL)
	_, err := p.PredictDaily(context.Background(), Features{})
	assert.Error(t, err)
}

func TestHTTPPredictorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before calling

	p := NewHTTPPredictor(srv.URL)
	_, err := p.PredictDaily(context.Background(), Features{})
	assert.Error(t, err)
}
