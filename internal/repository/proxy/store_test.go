package proxy_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/repository/proxy"
)

func TestStore_GetWorkout(t *testing.T) {
	date := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/workouts/w1":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(domain.Workout{ID: "w1", Name: "Swim", Type: domain.WorkoutTypeCardio, Date: date, Exercises: []string{}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"workout not found"}`))
		}
	}))
	defer server.Close()

	s := proxy.NewStore(server.URL+"/", time.Second)

	w, err := s.GetWorkout(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "Swim", w.Name)
	assert.True(t, date.Equal(w.Date))

	_, err = s.GetWorkout(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_CreateWorkout_ForwardsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/workouts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Run", body["name"])
		assert.Equal(t, "cardio", body["type"])
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "notes")

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Workout{ID: "new", Name: "Run", Type: domain.WorkoutTypeCardio, Date: time.Now()})
	}))
	defer server.Close()

	w, err := proxy.NewStore(server.URL, time.Second).CreateWorkout(context.Background(), domain.NewWorkout{
		Name: "Run", Type: domain.WorkoutTypeCardio, Duration: 30, Intensity: 5, Calories: 240,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", w.ID)
}

func TestStore_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		switch r.URL.Path {
		case "/api/workout-plans/p1", "/api/workouts/w1":
			w.WriteHeader(http.StatusNoContent)
		case "/api/workouts/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := proxy.NewStore(server.URL, time.Second)
	ctx := context.Background()

	found, err := s.DeleteWorkout(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.DeleteWorkoutPlan(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.DeleteWorkoutPlan(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.DeleteWorkout(ctx, "boom")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_ListByWeekAndUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/workout-plans/week/3":
			_ = json.NewEncoder(w).Encode([]domain.WorkoutPlan{{ID: "p1", Week: 3, DayOfWeek: 1}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/workout-plans/p1":
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"status":"completed"}`, string(body))
			_ = json.NewEncoder(w).Encode(domain.WorkoutPlan{ID: "p1", Week: 3, Status: domain.PlanStatusCompleted})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := proxy.NewStore(server.URL, time.Second)
	ctx := context.Background()

	plans, err := s.ListWorkoutPlansByWeek(ctx, 3)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "p1", plans[0].ID)

	status := domain.PlanStatusCompleted
	p, err := s.UpdateWorkoutPlan(ctx, "p1", domain.WorkoutPlanPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusCompleted, p.Status)

	_, err = s.UpdateWorkoutPlan(ctx, "p2", domain.WorkoutPlanPatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_UpdateUserStats_ClearsDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"currentStreak":2,"lastWorkoutDate":null}`, string(body))
		_ = json.NewEncoder(w).Encode(domain.UserStats{ID: "user-stats", CurrentStreak: 2, BestStreak: 2})
	}))
	defer server.Close()

	current := 2
	stats, err := proxy.NewStore(server.URL, time.Second).UpdateUserStats(context.Background(), domain.UserStatsPatch{
		CurrentStreak:        &current,
		ClearLastWorkoutDate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.BestStreak)
	assert.Nil(t, stats.LastWorkoutDate)
}

func TestStore_UpstreamFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/user-stats" {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	s := proxy.NewStore(server.URL, time.Second)

	_, err := s.ListWorkouts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")

	_, err = s.GetUserStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestStore_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := proxy.NewStore(server.URL, 50*time.Millisecond).ListWorkoutPlans(context.Background())
	require.Error(t, err)
}
