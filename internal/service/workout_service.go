package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/telemetry/metrics"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

type WorkoutService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	// CreateWorkout stores an already validated workout; the store updates the stats.
	CreateWorkout(ctx context.Context, in domain.NewWorkout) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	store          repository.WorkoutRepository
	metricsManager *metrics.Manager
}

func NewWorkoutService(store repository.WorkoutRepository, metricsManager *metrics.Manager) WorkoutService {
	return &workoutService{
		store:          store,
		metricsManager: metricsManager,
	}
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.store.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.store.GetWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout %s: %w", id, err)
	}
	return workout, nil
}

func (s *workoutService) CreateWorkout(ctx context.Context, in domain.NewWorkout) (*domain.Workout, error) {
	workout, err := s.store.CreateWorkout(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsCreated.Inc()
	}
	log.WithFields(log.Fields{
		"workout_id": workout.ID,
		"type":       workout.Type,
	}).Debug("workout created")
	return workout, nil
}

// DeleteWorkout removes the record; totals and streaks are not recomputed.
func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	found, err := s.store.DeleteWorkout(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workout %s: %w", id, err)
	}
	if !found {
		return ErrWorkoutNotFound
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsDeleted.Inc()
	}
	return nil
}
