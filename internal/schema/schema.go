// Package schema validates client payloads for workouts, workout plans and
// user stats before they reach a store.
//
// Server-assigned fields (id, and date for workouts) are stripped from the
// input. Any other unknown field is rejected. Rejections are reported as a
// *ValidationError carrying one Issue per failing field.
package schema

import (
	"encoding/json"
	"time"

	"fittracker/backend/internal/domain"
)

type workoutInput struct {
	Name      *string             `json:"name" validate:"required,min=1"`
	Type      *domain.WorkoutType `json:"type" validate:"required,workout_type"`
	Duration  *int                `json:"duration" validate:"required,min=1"`
	Intensity *int                `json:"intensity" validate:"required,min=1,max=10"`
	Calories  *int                `json:"calories" validate:"required,min=0"`
	Notes     *string             `json:"notes"`
	Exercises []string            `json:"exercises" validate:"omitempty,dive,min=1"`
}

// ParseInsertWorkout validates a workout creation payload.
func ParseInsertWorkout(body []byte) (domain.NewWorkout, error) {
	raw, err := decodeObject(body, "id", "date")
	if err != nil {
		return domain.NewWorkout{}, err
	}
	var in workoutInput
	if err := parseInto(raw, &in); err != nil {
		return domain.NewWorkout{}, err
	}
	return domain.NewWorkout{
		Name:      *in.Name,
		Type:      *in.Type,
		Duration:  *in.Duration,
		Intensity: *in.Intensity,
		Calories:  *in.Calories,
		Notes:     in.Notes,
		Exercises: in.Exercises,
	}, nil
}

type workoutPlanInput struct {
	DayOfWeek     *int               `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Name          *string            `json:"name" validate:"required,min=1"`
	Duration      *int               `json:"duration" validate:"required,min=1"`
	ExerciseCount *int               `json:"exerciseCount" validate:"required,min=0"`
	Focus         []string           `json:"focus" validate:"required,min=1,dive,min=1"`
	Status        *domain.PlanStatus `json:"status" validate:"omitempty,plan_status"`
	Week          *int               `json:"week" validate:"omitempty,min=1"`
}

// ParseInsertWorkoutPlan validates a plan creation payload.
// Status defaults to "upcoming" and week to 1.
func ParseInsertWorkoutPlan(body []byte) (domain.NewWorkoutPlan, error) {
	raw, err := decodeObject(body, "id")
	if err != nil {
		return domain.NewWorkoutPlan{}, err
	}
	var in workoutPlanInput
	if err := parseInto(raw, &in); err != nil {
		return domain.NewWorkoutPlan{}, err
	}
	return newWorkoutPlan(in), nil
}

func newWorkoutPlan(in workoutPlanInput) domain.NewWorkoutPlan {
	plan := domain.NewWorkoutPlan{
		DayOfWeek:     *in.DayOfWeek,
		Name:          *in.Name,
		Duration:      *in.Duration,
		ExerciseCount: *in.ExerciseCount,
		Focus:         in.Focus,
		Status:        domain.DefaultPlanStatus,
		Week:          domain.DefaultPlanWeek,
	}
	if in.Status != nil {
		plan.Status = *in.Status
	}
	if in.Week != nil {
		plan.Week = *in.Week
	}
	return plan
}

type workoutPlanPatchInput struct {
	DayOfWeek     *int               `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	Name          *string            `json:"name" validate:"omitempty,min=1"`
	Duration      *int               `json:"duration" validate:"omitempty,min=1"`
	ExerciseCount *int               `json:"exerciseCount" validate:"omitempty,min=0"`
	Focus         []string           `json:"focus" validate:"omitempty,min=1,dive,min=1"`
	Status        *domain.PlanStatus `json:"status" validate:"omitempty,plan_status"`
	Week          *int               `json:"week" validate:"omitempty,min=1"`
}

// ParseWorkoutPlanPatch validates a partial plan update. Every field is
// optional; null counts as absent. An empty patch is valid.
func ParseWorkoutPlanPatch(body []byte) (domain.WorkoutPlanPatch, error) {
	raw, err := decodeObject(body, "id")
	if err != nil {
		return domain.WorkoutPlanPatch{}, err
	}
	var in workoutPlanPatchInput
	if err := parseInto(raw, &in); err != nil {
		return domain.WorkoutPlanPatch{}, err
	}
	return domain.WorkoutPlanPatch{
		DayOfWeek:     in.DayOfWeek,
		Name:          in.Name,
		Duration:      in.Duration,
		ExerciseCount: in.ExerciseCount,
		Focus:         in.Focus,
		Status:        in.Status,
		Week:          in.Week,
	}, nil
}

type userStatsPatchInput struct {
	CurrentStreak   *int       `json:"currentStreak" validate:"omitempty,min=0"`
	BestStreak      *int       `json:"bestStreak" validate:"omitempty,min=0"`
	TotalWorkouts   *int       `json:"totalWorkouts" validate:"omitempty,min=0"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate"`
}

// ParseUserStatsPatch validates an explicit stats overwrite.
// An explicit null lastWorkoutDate clears it.
func ParseUserStatsPatch(body []byte) (domain.UserStatsPatch, error) {
	raw, err := decodeObject(body, "id")
	if err != nil {
		return domain.UserStatsPatch{}, err
	}
	var in userStatsPatchInput
	if err := parseInto(raw, &in); err != nil {
		return domain.UserStatsPatch{}, err
	}
	patch := domain.UserStatsPatch{
		CurrentStreak:   in.CurrentStreak,
		BestStreak:      in.BestStreak,
		TotalWorkouts:   in.TotalWorkouts,
		LastWorkoutDate: in.LastWorkoutDate,
	}
	if v, ok := raw["lastWorkoutDate"]; ok && isNull(v) {
		patch.ClearLastWorkoutDate = true
	}
	return patch, nil
}

// UnmarshalNewWorkoutPlans decodes a JSON array of plans and validates each one.
// Used for plan lists produced by upstream services.
func UnmarshalNewWorkoutPlans(data json.RawMessage) ([]domain.NewWorkoutPlan, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, newValidationError([]Issue{{Field: "body", Reason: "expected a list of plans"}})
	}
	plans := make([]domain.NewWorkoutPlan, 0, len(items))
	for _, item := range items {
		plan, err := ParseInsertWorkoutPlan(item)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
