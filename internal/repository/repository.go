package repository

import (
	"context"

	"fittracker/backend/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/repository_mocks.go -package=mocks

var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicate    = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository stores logged workouts. Creating a workout also advances
// the user stats; deleting one never touches them.
type WorkoutRepository interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	CreateWorkout(ctx context.Context, in domain.NewWorkout) (*domain.Workout, error)
	// DeleteWorkout reports whether a record with that id existed.
	DeleteWorkout(ctx context.Context, id string) (bool, error)
}

// WorkoutPlanRepository stores the weekly plan entries.
type WorkoutPlanRepository interface {
	ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error)
	ListWorkoutPlansByWeek(ctx context.Context, week int) ([]domain.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id string) (bool, error)
}

// UserStatsRepository holds the single stats record.
type UserStatsRepository interface {
	GetUserStats(ctx context.Context) (*domain.UserStats, error)
	UpdateUserStats(ctx context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error)
}

// Store is the full data contract behind the HTTP API.
type Store interface {
	WorkoutRepository
	WorkoutPlanRepository
	UserStatsRepository
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	// Create returns ErrDuplicate when the mail is taken.
	Create(ctx context.Context, user *domain.User) error
	GetByMail(ctx context.Context, mail string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
