// Package proxy implements repository.Store by forwarding every call to
// another instance of the REST API.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

var _ repository.Store = (*Store)(nil)

type Store struct {
	baseURL    string
	httpClient *http.Client
}

// NewStore returns a store talking to baseURL, e.g. "http://localhost:8081".
func NewStore(baseURL string, timeout time.Duration) *Store {
	return &Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// upstreamError is any non-2xx answer other than 404.
type upstreamError struct {
	method string
	path   string
	status int
	body   string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("proxy: %s %s: upstream status %d: %s", e.method, e.path, e.status, e.body)
}

// do sends the request and decodes a 2xx body into out (when non-nil).
// A 404 is returned as repository.ErrNotFound.
func (s *Store) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("proxy: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("proxy: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("proxy: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return repository.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &upstreamError{method: method, path: path, status: resp.StatusCode, body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("proxy: decode %s %s: %w", method, path, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, path string) (bool, error) {
	err := s.do(ctx, http.MethodDelete, path, nil, nil)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	if err := s.do(ctx, http.MethodGet, "/api/workouts", nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *Store) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	var w domain.Workout
	if err := s.do(ctx, http.MethodGet, "/api/workouts/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkout relies on the upstream store for ids, dates and the stats update.
func (s *Store) CreateWorkout(ctx context.Context, in domain.NewWorkout) (*domain.Workout, error) {
	var w domain.Workout
	if err := s.do(ctx, http.MethodPost, "/api/workouts", in, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id string) (bool, error) {
	return s.delete(ctx, "/api/workouts/"+url.PathEscape(id))
}

func (s *Store) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	plans := []domain.WorkoutPlan{}
	if err := s.do(ctx, http.MethodGet, "/api/workout-plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *Store) ListWorkoutPlansByWeek(ctx context.Context, week int) ([]domain.WorkoutPlan, error) {
	plans := []domain.WorkoutPlan{}
	if err := s.do(ctx, http.MethodGet, "/api/workout-plans/week/"+strconv.Itoa(week), nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *Store) GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := s.do(ctx, http.MethodGet, "/api/workout-plans/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateWorkoutPlan(ctx context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := s.do(ctx, http.MethodPost, "/api/workout-plans", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateWorkoutPlan(ctx context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := s.do(ctx, http.MethodPut, "/api/workout-plans/"+url.PathEscape(id), patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteWorkoutPlan(ctx context.Context, id string) (bool, error) {
	return s.delete(ctx, "/api/workout-plans/"+url.PathEscape(id))
}

func (s *Store) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := s.do(ctx, http.MethodGet, "/api/user-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Store) UpdateUserStats(ctx context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := s.do(ctx, http.MethodPut, "/api/user-stats", statsPatchBody(patch), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// statsPatchBody renders the patch the way the API accepts it; a cleared
// date is sent as an explicit null.
func statsPatchBody(patch domain.UserStatsPatch) map[string]any {
	body := make(map[string]any)
	if patch.CurrentStreak != nil {
		body["currentStreak"] = *patch.CurrentStreak
	}
	if patch.BestStreak != nil {
		body["bestStreak"] = *patch.BestStreak
	}
	if patch.TotalWorkouts != nil {
		body["totalWorkouts"] = *patch.TotalWorkouts
	}
	switch {
	case patch.ClearLastWorkoutDate:
		body["lastWorkoutDate"] = nil
	case patch.LastWorkoutDate != nil:
		body["lastWorkoutDate"] = patch.LastWorkoutDate.Format(time.RFC3339Nano)
	}
	return body
}
