package domain

// PlanStatus is the state of a scheduled plan day.
type PlanStatus string

const (
	PlanStatusToday     PlanStatus = "today"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusUpcoming  PlanStatus = "upcoming"
	PlanStatusRest      PlanStatus = "rest"
	PlanStatusFlexible  PlanStatus = "flexible"
)

// PlanStatuses lists every accepted PlanStatus.
var PlanStatuses = []PlanStatus{
	PlanStatusToday,
	PlanStatusCompleted,
	PlanStatusUpcoming,
	PlanStatusRest,
	PlanStatusFlexible,
}

const (
	DefaultPlanStatus = PlanStatusUpcoming
	DefaultPlanWeek   = 1
)

// Valid reports whether s is one of the known plan statuses.
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusToday, PlanStatusCompleted, PlanStatusUpcoming, PlanStatusRest, PlanStatusFlexible:
		return true
	}
	return false
}

// WorkoutPlan is a scheduled session for one day of a program week.
// DayOfWeek runs 0-6 with Sunday as 0.
type WorkoutPlan struct {
	ID            string     `bson:"_id" json:"id"`
	DayOfWeek     int        `bson:"dayOfWeek" json:"dayOfWeek"`
	Name          string     `bson:"name" json:"name"`
	Duration      int        `bson:"duration" json:"duration"`
	ExerciseCount int        `bson:"exerciseCount" json:"exerciseCount"`
	Focus         []string   `bson:"focus" json:"focus"`
	Status        PlanStatus `bson:"status" json:"status"`
	Week          int        `bson:"week" json:"week"`
}

// NewWorkoutPlan carries the client-supplied fields of a plan, with defaults applied.
type NewWorkoutPlan struct {
	DayOfWeek     int        `json:"dayOfWeek"`
	Name          string     `json:"name"`
	Duration      int        `json:"duration"`
	ExerciseCount int        `json:"exerciseCount"`
	Focus         []string   `json:"focus"`
	Status        PlanStatus `json:"status"`
	Week          int        `json:"week"`
}

// Build turns the input into a stored record with the given id.
func (n NewWorkoutPlan) Build(id string) WorkoutPlan {
	focus := make([]string, len(n.Focus))
	copy(focus, n.Focus)
	status := n.Status
	if status == "" {
		status = DefaultPlanStatus
	}
	week := n.Week
	if week == 0 {
		week = DefaultPlanWeek
	}
	return WorkoutPlan{
		ID:            id,
		DayOfWeek:     n.DayOfWeek,
		Name:          n.Name,
		Duration:      n.Duration,
		ExerciseCount: n.ExerciseCount,
		Focus:         focus,
		Status:        status,
		Week:          week,
	}
}

// WorkoutPlanPatch holds the fields of a partial plan update. Nil means unchanged.
type WorkoutPlanPatch struct {
	DayOfWeek     *int        `json:"dayOfWeek,omitempty"`
	Name          *string     `json:"name,omitempty"`
	Duration      *int        `json:"duration,omitempty"`
	ExerciseCount *int        `json:"exerciseCount,omitempty"`
	Focus         []string    `json:"focus,omitempty"`
	Status        *PlanStatus `json:"status,omitempty"`
	Week          *int        `json:"week,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p WorkoutPlanPatch) IsEmpty() bool {
	return p.DayOfWeek == nil && p.Name == nil && p.Duration == nil &&
		p.ExerciseCount == nil && p.Focus == nil && p.Status == nil && p.Week == nil
}

// Apply merges the patch into plan and returns the result. The id is never touched.
func (p WorkoutPlanPatch) Apply(plan WorkoutPlan) WorkoutPlan {
	if p.DayOfWeek != nil {
		plan.DayOfWeek = *p.DayOfWeek
	}
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.Duration != nil {
		plan.Duration = *p.Duration
	}
	if p.ExerciseCount != nil {
		plan.ExerciseCount = *p.ExerciseCount
	}
	if p.Focus != nil {
		focus := make([]string, len(p.Focus))
		copy(focus, p.Focus)
		plan.Focus = focus
	}
	if p.Status != nil {
		plan.Status = *p.Status
	}
	if p.Week != nil {
		plan.Week = *p.Week
	}
	return plan
}
