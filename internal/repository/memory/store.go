// Package memory is the process-local backend of repository.Store.
// Records live in maps guarded by one RWMutex; nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

var _ repository.Store = (*Store)(nil)

const statsID = "user-stats"

type Store struct {
	mutex        sync.RWMutex
	workouts     map[string]domain.Workout
	workoutPlans map[string]domain.WorkoutPlan
	userStats    domain.UserStats

	now   func() time.Time
	newID func() string
	seed  bool
}

type Option func(*Store)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithSeedData fills the store with the sample dataset on construction.
func WithSeedData() Option {
	return func(s *Store) {
		s.seed = true
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		workouts:     make(map[string]domain.Workout),
		workoutPlans: make(map[string]domain.WorkoutPlan),
		userStats:    domain.UserStats{ID: statsID},
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		s.loadSeedData(s.now())
	}
	return s
}

func (s *Store) ListWorkouts(_ context.Context) ([]domain.Workout, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	workouts := make([]domain.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		workouts = append(workouts, cloneWorkout(w))
	}
	sort.Slice(workouts, func(i, j int) bool {
		if !workouts[i].Date.Equal(workouts[j].Date) {
			return workouts[i].Date.After(workouts[j].Date)
		}
		return workouts[i].ID < workouts[j].ID
	})
	return workouts, nil
}

func (s *Store) GetWorkout(_ context.Context, id string) (*domain.Workout, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	w, ok := s.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	w = cloneWorkout(w)
	return &w, nil
}

// CreateWorkout stores the workout and then advances the user stats.
func (s *Store) CreateWorkout(_ context.Context, in domain.NewWorkout) (*domain.Workout, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	w := in.Build(s.newID(), now)
	s.workouts[w.ID] = w

	if err := s.userStats.RecordWorkout(now); errors.Is(err, domain.ErrBackdatedWorkout) {
		log.WithField("workout_id", w.ID).Warn("memory store: workout predates last workout, streak left unchanged")
	}

	w = cloneWorkout(w)
	return &w, nil
}

// DeleteWorkout removes the record. The user stats are left as they are.
func (s *Store) DeleteWorkout(_ context.Context, id string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.workouts[id]; !ok {
		return false, nil
	}
	delete(s.workouts, id)
	return true, nil
}

func (s *Store) ListWorkoutPlans(_ context.Context) ([]domain.WorkoutPlan, error) {
	return s.listPlans(func(domain.WorkoutPlan) bool { return true }), nil
}

func (s *Store) ListWorkoutPlansByWeek(_ context.Context, week int) ([]domain.WorkoutPlan, error) {
	return s.listPlans(func(p domain.WorkoutPlan) bool { return p.Week == week }), nil
}

func (s *Store) listPlans(keep func(domain.WorkoutPlan) bool) []domain.WorkoutPlan {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	plans := make([]domain.WorkoutPlan, 0, len(s.workoutPlans))
	for _, p := range s.workoutPlans {
		if keep(p) {
			plans = append(plans, clonePlan(p))
		}
	}
	sort.Slice(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		return a.ID < b.ID
	})
	return plans
}

func (s *Store) GetWorkoutPlan(_ context.Context, id string) (*domain.WorkoutPlan, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, ok := s.workoutPlans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = clonePlan(p)
	return &p, nil
}

func (s *Store) CreateWorkoutPlan(_ context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p := in.Build(s.newID())
	s.workoutPlans[p.ID] = p
	p = clonePlan(p)
	return &p, nil
}

func (s *Store) UpdateWorkoutPlan(_ context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.workoutPlans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	updated := patch.Apply(existing)
	s.workoutPlans[id] = updated
	updated = clonePlan(updated)
	return &updated, nil
}

func (s *Store) DeleteWorkoutPlan(_ context.Context, id string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.workoutPlans[id]; !ok {
		return false, nil
	}
	delete(s.workoutPlans, id)
	return true, nil
}

func (s *Store) GetUserStats(_ context.Context) (*domain.UserStats, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := cloneStats(s.userStats)
	return &stats, nil
}

func (s *Store) UpdateUserStats(_ context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.userStats = patch.Apply(s.userStats)
	stats := cloneStats(s.userStats)
	return &stats, nil
}

// Callers get copies so they cannot mutate stored records.

func cloneWorkout(w domain.Workout) domain.Workout {
	if w.Exercises != nil {
		w.Exercises = append([]string{}, w.Exercises...)
	}
	if w.Notes != nil {
		notes := *w.Notes
		w.Notes = &notes
	}
	return w
}

func clonePlan(p domain.WorkoutPlan) domain.WorkoutPlan {
	if p.Focus != nil {
		p.Focus = append([]string{}, p.Focus...)
	}
	return p
}

func cloneStats(s domain.UserStats) domain.UserStats {
	if s.LastWorkoutDate != nil {
		last := *s.LastWorkoutDate
		s.LastWorkoutDate = &last
	}
	return s
}
