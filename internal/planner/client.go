// Package planner requests generated workout plans from the recommendation
// service, with a fixed two-plan fallback.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/schema"
	"fittracker/backend/internal/telemetry/metrics"
)

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

const fallbackNotice = "plan generator unavailable, using fallback workout recommendations"

// Preferences is the generation request sent upstream.
type Preferences struct {
	FitnessLevel    string   `json:"fitness_level"`
	Goals           []string `json:"goals"`
	AvailableDays   int      `json:"available_days"`
	WorkoutDuration int      `json:"workout_duration"`
	Equipment       []string `json:"equipment"`
}

// WithDefaults fills every zero field with the standard preference.
func (p Preferences) WithDefaults() Preferences {
	if p.FitnessLevel == "" {
		p.FitnessLevel = "intermediate"
	}
	if len(p.Goals) == 0 {
		p.Goals = []string{"general_fitness"}
	}
	if p.AvailableDays == 0 {
		p.AvailableDays = 5
	}
	if p.WorkoutDuration == 0 {
		p.WorkoutDuration = 45
	}
	if len(p.Equipment) == 0 {
		p.Equipment = []string{"bodyweight"}
	}
	return p
}

type Result struct {
	Plans  []domain.NewWorkoutPlan
	Source Source
	Notice string
}

// FallbackPlans returns the plans used when the service cannot answer.
func FallbackPlans() []domain.NewWorkoutPlan {
	return []domain.NewWorkoutPlan{
		{
			Name:          "AI Strength Training",
			DayOfWeek:     1,
			Duration:      45,
			ExerciseCount: 8,
			Focus:         []string{"strength", "upper_body"},
			Status:        domain.PlanStatusUpcoming,
			Week:          1,
		},
		{
			Name:          "AI Cardio Blast",
			DayOfWeek:     3,
			Duration:      30,
			ExerciseCount: 6,
			Focus:         []string{"cardio", "endurance"},
			Status:        domain.PlanStatusUpcoming,
			Week:          1,
		},
	}
}

type generatorResponse struct {
	RecommendedPlans json.RawMessage `json:"recommended_plans"`
}

var errNoPlans = errors.New("generator returned no plans")

type Client struct {
	url            string
	timeout        time.Duration
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

// NewClient returns a client for the generator at url. With an empty url
// every call returns the fallback plans.
func NewClient(url string, timeout time.Duration, metricsManager *metrics.Manager) *Client {
	return &Client{
		url:            url,
		timeout:        timeout,
		httpClient:     http.DefaultClient,
		metricsManager: metricsManager,
	}
}

// Generate never fails. Upstream plans are checked with the plan schema and
// a single invalid plan makes the whole answer fall back.
func (c *Client) Generate(ctx context.Context, prefs Preferences) Result {
	result := c.generate(ctx, prefs.WithDefaults())
	if c.metricsManager != nil {
		c.metricsManager.CounterPlansGenerated.WithLabelValues(string(result.Source)).Inc()
	}
	return result
}

func (c *Client) generate(ctx context.Context, prefs Preferences) Result {
	fallback := Result{Plans: FallbackPlans(), Source: SourceFallback, Notice: fallbackNotice}
	if c.url == "" {
		return fallback
	}

	plans, err := c.askGenerator(ctx, prefs)
	if err != nil {
		log.WithError(err).Warn("planner: generator unavailable, using fallback plans")
		return fallback
	}
	return Result{Plans: plans, Source: SourceModel}
}

func (c *Client) askGenerator(ctx context.Context, prefs Preferences) ([]domain.NewWorkoutPlan, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("generator status %d", resp.StatusCode)
	}

	var body generatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}
	plans, err := schema.UnmarshalNewWorkoutPlans(body.RecommendedPlans)
	if err != nil {
		return nil, fmt.Errorf("invalid generated plans: %w", err)
	}
	if len(plans) == 0 {
		return nil, errNoPlans
	}
	return plans, nil
}
