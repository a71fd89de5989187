package domain

import (
	"time"
)

// WorkoutType classifies a logged session.
type WorkoutType string

const (
	WorkoutTypeCardio      WorkoutType = "cardio"
	WorkoutTypeStrength    WorkoutType = "strength"
	WorkoutTypeFlexibility WorkoutType = "flexibility"
	WorkoutTypeSports      WorkoutType = "sports"
	WorkoutTypeOther       WorkoutType = "other"
)

// WorkoutTypes lists every accepted WorkoutType in display order.
var WorkoutTypes = []WorkoutType{
	WorkoutTypeCardio,
	WorkoutTypeStrength,
	WorkoutTypeFlexibility,
	WorkoutTypeSports,
	WorkoutTypeOther,
}

// Valid reports whether t is one of the known workout types.
func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutTypeCardio, WorkoutTypeStrength, WorkoutTypeFlexibility, WorkoutTypeSports, WorkoutTypeOther:
		return true
	}
	return false
}

// Workout is a single logged exercise session.
// Date is assigned by the store at creation and never changes afterwards.
type Workout struct {
	ID        string      `bson:"_id" json:"id"`
	Name      string      `bson:"name" json:"name"`
	Type      WorkoutType `bson:"type" json:"type"`
	Duration  int         `bson:"duration" json:"duration"`   // minutes
	Intensity int         `bson:"intensity" json:"intensity"` // 1-10
	Calories  int         `bson:"calories" json:"calories"`
	Date      time.Time   `bson:"date" json:"date"`
	Notes     *string     `bson:"notes,omitempty" json:"notes"`
	Exercises []string    `bson:"exercises" json:"exercises"`
}

// NewWorkout carries the client-supplied fields of a workout, already validated.
type NewWorkout struct {
	Name      string      `json:"name"`
	Type      WorkoutType `json:"type"`
	Duration  int         `json:"duration"`
	Intensity int         `json:"intensity"`
	Calories  int         `json:"calories"`
	Notes     *string     `json:"notes,omitempty"`
	Exercises []string    `json:"exercises,omitempty"`
}

// Build turns the input into a stored record with the given id and creation time.
func (n NewWorkout) Build(id string, at time.Time) Workout {
	exercises := make([]string, len(n.Exercises))
	copy(exercises, n.Exercises)
	return Workout{
		ID:        id,
		Name:      n.Name,
		Type:      n.Type,
		Duration:  n.Duration,
		Intensity: n.Intensity,
		Calories:  n.Calories,
		Date:      at,
		Notes:     n.Notes,
		Exercises: exercises,
	}
}
