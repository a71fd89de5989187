package service

import (
	"context"
	"errors"
	"fmt"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/planner"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/telemetry/metrics"
)

var (
	ErrWorkoutPlanNotFound = errors.New("workout plan not found")
	ErrInvalidWeek         = errors.New("week must be a positive integer")
)

// PlanGenerator produces recommended plans. planner.Client satisfies it.
type PlanGenerator interface {
	Generate(ctx context.Context, prefs planner.Preferences) planner.Result
}

// GeneratedPlans is the outcome of a generation request. Saved is filled only
// when save was requested.
type GeneratedPlans struct {
	Recommended []domain.NewWorkoutPlan
	Saved       []domain.WorkoutPlan
	Source      planner.Source
	Notice      string
}

type WorkoutPlanService interface {
	ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error)
	ListWorkoutPlansByWeek(ctx context.Context, week int) ([]domain.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id string) error
	GenerateWorkoutPlans(ctx context.Context, prefs planner.Preferences, save bool) (*GeneratedPlans, error)
}

type workoutPlanService struct {
	store          repository.WorkoutPlanRepository
	generator      PlanGenerator
	metricsManager *metrics.Manager
}

func NewWorkoutPlanService(store repository.WorkoutPlanRepository, generator PlanGenerator, metricsManager *metrics.Manager) WorkoutPlanService {
	return &workoutPlanService{
		store:          store,
		generator:      generator,
		metricsManager: metricsManager,
	}
}

func (s *workoutPlanService) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	plans, err := s.store.ListWorkoutPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return plans, nil
}

func (s *workoutPlanService) ListWorkoutPlansByWeek(ctx context.Context, week int) ([]domain.WorkoutPlan, error) {
	if week < 1 {
		return nil, ErrInvalidWeek
	}
	plans, err := s.store.ListWorkoutPlansByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list workout plans of week %d: %w", week, err)
	}
	return plans, nil
}

func (s *workoutPlanService) GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	plan, err := s.store.GetWorkoutPlan(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, fmt.Errorf("get workout plan %s: %w", id, err)
	}
	return plan, nil
}

func (s *workoutPlanService) CreateWorkoutPlan(ctx context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error) {
	plan, err := s.store.CreateWorkoutPlan(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create workout plan: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterPlansCreated.Inc()
	}
	return plan, nil
}

func (s *workoutPlanService) UpdateWorkoutPlan(ctx context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error) {
	plan, err := s.store.UpdateWorkoutPlan(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, fmt.Errorf("update workout plan %s: %w", id, err)
	}
	return plan, nil
}

func (s *workoutPlanService) DeleteWorkoutPlan(ctx context.Context, id string) error {
	found, err := s.store.DeleteWorkoutPlan(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workout plan %s: %w", id, err)
	}
	if !found {
		return ErrWorkoutPlanNotFound
	}
	return nil
}

// GenerateWorkoutPlans asks the generator for plans and, if save is set,
// stores each of them. A failed save stops at the first error; plans stored
// before it stay stored.
func (s *workoutPlanService) GenerateWorkoutPlans(ctx context.Context, prefs planner.Preferences, save bool) (*GeneratedPlans, error) {
	result := s.generator.Generate(ctx, prefs)
	generated := &GeneratedPlans{
		Recommended: result.Plans,
		Source:      result.Source,
		Notice:      result.Notice,
	}
	if !save {
		return generated, nil
	}

	generated.Saved = make([]domain.WorkoutPlan, 0, len(result.Plans))
	for _, in := range result.Plans {
		plan, err := s.CreateWorkoutPlan(ctx, in)
		if err != nil {
			return nil, err
		}
		generated.Saved = append(generated.Saved, *plan)
	}
	return generated, nil
}
