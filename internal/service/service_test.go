package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/planner"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/repository/mocks"
	"fittracker/backend/internal/telemetry/metrics"
)

var errStoreDown = errors.New("store down")

func TestWorkoutService_GetWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(store, metrics.NewTestManager())
	ctx := context.Background()

	store.EXPECT().GetWorkout(ctx, "w1").Return(&domain.Workout{ID: "w1", Name: "Run"}, nil)
	w, err := svc.GetWorkout(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Run", w.Name)

	store.EXPECT().GetWorkout(ctx, "missing").Return(nil, repository.ErrNotFound)
	_, err = svc.GetWorkout(ctx, "missing")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	store.EXPECT().GetWorkout(ctx, "w2").Return(nil, errStoreDown)
	_, err = svc.GetWorkout(ctx, "w2")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutService_CreateAndDelete_CountMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutRepository(ctrl)
	m := metrics.NewTestManager()
	svc := NewWorkoutService(store, m)
	ctx := context.Background()

	in := domain.NewWorkout{Name: "Swim", Type: domain.WorkoutTypeCardio, Duration: 40, Intensity: 6, Calories: 290}
	store.EXPECT().CreateWorkout(ctx, in).Return(&domain.Workout{ID: "w1", Name: "Swim"}, nil)
	_, err := svc.CreateWorkout(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsCreated))

	store.EXPECT().CreateWorkout(ctx, in).Return(nil, errStoreDown)
	_, err = svc.CreateWorkout(ctx, in)
	require.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsCreated))

	store.EXPECT().DeleteWorkout(ctx, "w1").Return(true, nil)
	require.NoError(t, svc.DeleteWorkout(ctx, "w1"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsDeleted))

	store.EXPECT().DeleteWorkout(ctx, "w1").Return(false, nil)
	assert.ErrorIs(t, svc.DeleteWorkout(ctx, "w1"), ErrWorkoutNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsDeleted))
}

func TestWorkoutService_ListWorkouts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutRepository(ctrl)
	svc := NewWorkoutService(store, nil)

	store.EXPECT().ListWorkouts(gomock.Any()).Return(nil, errStoreDown)
	_, err := svc.ListWorkouts(context.Background())
	require.ErrorIs(t, err, errStoreDown)
}

type fakeGenerator struct {
	result planner.Result
	calls  int
}

func (g *fakeGenerator) Generate(_ context.Context, _ planner.Preferences) planner.Result {
	g.calls++
	return g.result
}

func TestWorkoutPlanService_ListByWeek_InvalidWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutPlanRepository(ctrl)
	svc := NewWorkoutPlanService(store, &fakeGenerator{}, nil)

	_, err := svc.ListWorkoutPlansByWeek(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidWeek)
}

func TestWorkoutPlanService_UpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutPlanRepository(ctrl)
	svc := NewWorkoutPlanService(store, &fakeGenerator{}, nil)

	status := domain.PlanStatusCompleted
	patch := domain.WorkoutPlanPatch{Status: &status}
	store.EXPECT().UpdateWorkoutPlan(gomock.Any(), "nope", patch).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateWorkoutPlan(context.Background(), "nope", patch)
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)

	store.EXPECT().DeleteWorkoutPlan(gomock.Any(), "nope").Return(false, nil)
	assert.ErrorIs(t, svc.DeleteWorkoutPlan(context.Background(), "nope"), ErrWorkoutPlanNotFound)
}

func TestWorkoutPlanService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockWorkoutPlanRepository(ctrl)
	m := metrics.NewTestManager()
	gen := &fakeGenerator{result: planner.Result{Plans: planner.FallbackPlans(), Source: planner.SourceFallback, Notice: "generator down"}}
	svc := NewWorkoutPlanService(store, gen, m)
	ctx := context.Background()

	t.Run("without save", func(t *testing.T) {
		generated, err := svc.GenerateWorkoutPlans(ctx, planner.Preferences{}, false)
		require.NoError(t, err)
		assert.Len(t, generated.Recommended, 2)
		assert.Empty(t, generated.Saved)
		assert.Equal(t, planner.SourceFallback, generated.Source)
		assert.Equal(t, "generator down", generated.Notice)
	})

	t.Run("with save", func(t *testing.T) {
		for i, in := range gen.result.Plans {
			store.EXPECT().CreateWorkoutPlan(ctx, in).Return(&domain.WorkoutPlan{ID: string(rune('a' + i)), Name: in.Name}, nil)
		}
		generated, err := svc.GenerateWorkoutPlans(ctx, planner.Preferences{}, true)
		require.NoError(t, err)
		require.Len(t, generated.Saved, 2)
		assert.Equal(t, "a", generated.Saved[0].ID)
		assert.Equal(t, "AI Cardio Blast", generated.Saved[1].Name)
		assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterPlansCreated))
	})

	t.Run("save failure", func(t *testing.T) {
		store.EXPECT().CreateWorkoutPlan(ctx, gomock.Any()).Return(nil, errStoreDown)
		_, err := svc.GenerateWorkoutPlans(ctx, planner.Preferences{}, true)
		assert.ErrorIs(t, err, errStoreDown)
	})

	assert.Equal(t, 3, gen.calls)
}

func TestUserStatsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockUserStatsRepository(ctrl)
	svc := NewUserStatsService(store)
	ctx := context.Background()

	last := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store.EXPECT().GetUserStats(ctx).Return(&domain.UserStats{CurrentStreak: 2, BestStreak: 4, TotalWorkouts: 9, LastWorkoutDate: &last}, nil)
	stats, err := svc.GetUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalWorkouts)

	five := 5
	patch := domain.UserStatsPatch{CurrentStreak: &five}
	store.EXPECT().UpdateUserStats(ctx, patch).Return(nil, errStoreDown)
	_, err = svc.UpdateUserStats(ctx, patch)
	assert.ErrorIs(t, err, errStoreDown)
}
