// Package predictor asks the calorie prediction model for an estimate and
// falls back to a fixed formula whenever the model cannot answer.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/telemetry/metrics"
)

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

const fallbackNotice = "calorie model unavailable, using estimated calories"

type Request struct {
	WorkoutType domain.WorkoutType `json:"workout_type"`
	Duration    int                `json:"duration"`
	Intensity   int                `json:"intensity"`
	WorkoutName string             `json:"workout_name"`
}

type Prediction struct {
	Calories int    `json:"predicted_calories"`
	Source   Source `json:"source"`
	Notice   string `json:"notice,omitempty"`
}

type modelResponse struct {
	PredictedCalories *float64 `json:"predicted_calories"`
}

type Client struct {
	url            string
	timeout        time.Duration
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

// NewClient returns a client for the model at url. An empty url disables the
// model and every prediction uses the fallback formula.
func NewClient(url string, timeout time.Duration, metricsManager *metrics.Manager) *Client {
	return &Client{
		url:            url,
		timeout:        timeout,
		httpClient:     http.DefaultClient,
		metricsManager: metricsManager,
	}
}

// Predict never fails: any model problem yields the fallback estimate.
func (c *Client) Predict(ctx context.Context, req Request) Prediction {
	prediction := c.predict(ctx, req)
	if c.metricsManager != nil {
		c.metricsManager.CounterPredictions.WithLabelValues(string(prediction.Source)).Inc()
	}
	return prediction
}

func (c *Client) predict(ctx context.Context, req Request) Prediction {
	fallback := Prediction{
		Calories: domain.EstimateCalories(req.WorkoutType, req.Duration, req.Intensity),
		Source:   SourceFallback,
		Notice:   fallbackNotice,
	}
	if c.url == "" {
		return fallback
	}

	calories, err := c.askModel(ctx, req)
	if err != nil {
		log.WithError(err).WithField("workout_type", req.WorkoutType).Warn("predictor: model unavailable, using fallback")
		return fallback
	}
	return Prediction{Calories: calories, Source: SourceModel}
}

func (c *Client) askModel(ctx context.Context, req Request) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("model status %d", resp.StatusCode)
	}

	var body modelResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode model response: %w", err)
	}
	if body.PredictedCalories == nil {
		return 0, fmt.Errorf("model response without predicted_calories")
	}
	v := *body.PredictedCalories
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("model returned invalid calories %v", v)
	}
	return int(math.Round(v)), nil
}
