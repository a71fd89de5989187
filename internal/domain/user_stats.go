package domain

import (
	"errors"
	"time"
)

// Day is the length used for streak day differences.
const Day = 24 * time.Hour

// ErrBackdatedWorkout is returned by RecordWorkout when the new workout is
// older than the last recorded one. The streak is left as it was.
var ErrBackdatedWorkout = errors.New("workout is older than the last recorded workout")

// UserStats holds the aggregate counters kept alongside workout records.
type UserStats struct {
	ID              string     `bson:"_id" json:"id"`
	CurrentStreak   int        `bson:"currentStreak" json:"currentStreak"`
	BestStreak      int        `bson:"bestStreak" json:"bestStreak"`
	TotalWorkouts   int        `bson:"totalWorkouts" json:"totalWorkouts"`
	LastWorkoutDate *time.Time `bson:"lastWorkoutDate" json:"lastWorkoutDate"`
}

// DaysBetween returns floor((to - from) / 24h).
func DaysBetween(from, to time.Time) int {
	d := to.Sub(from)
	days := d / Day
	if d%Day != 0 && d < 0 {
		days--
	}
	return int(days)
}

// RecordWorkout applies the side effects of a new workout logged at `at`:
// the total is incremented, the streak advanced from the previous
// lastWorkoutDate, and lastWorkoutDate moved to `at`.
//
// A gap of exactly one day extends the streak, more than one day resets it
// to 1 and zero days leaves it alone. A negative gap also leaves it alone
// and is reported with ErrBackdatedWorkout; the other updates still happen.
func (s *UserStats) RecordWorkout(at time.Time) error {
	var err error

	s.TotalWorkouts++
	if s.LastWorkoutDate == nil {
		s.CurrentStreak = 1
	} else {
		switch daysDiff := DaysBetween(*s.LastWorkoutDate, at); {
		case daysDiff == 1:
			s.CurrentStreak++
		case daysDiff > 1:
			s.CurrentStreak = 1
		case daysDiff < 0:
			err = ErrBackdatedWorkout
		}
	}
	s.normalize()

	last := at
	s.LastWorkoutDate = &last
	return err
}

// normalize keeps bestStreak >= currentStreak.
func (s *UserStats) normalize() {
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
}

// UserStatsPatch is an explicit overwrite of some stats fields.
// ClearLastWorkoutDate sets lastWorkoutDate to null and wins over LastWorkoutDate.
type UserStatsPatch struct {
	CurrentStreak        *int
	BestStreak           *int
	TotalWorkouts        *int
	LastWorkoutDate      *time.Time
	ClearLastWorkoutDate bool
}

// Apply merges the patch into the stats.
func (p UserStatsPatch) Apply(s UserStats) UserStats {
	if p.CurrentStreak != nil {
		s.CurrentStreak = *p.CurrentStreak
	}
	if p.BestStreak != nil {
		s.BestStreak = *p.BestStreak
	}
	if p.TotalWorkouts != nil {
		s.TotalWorkouts = *p.TotalWorkouts
	}
	switch {
	case p.ClearLastWorkoutDate:
		s.LastWorkoutDate = nil
	case p.LastWorkoutDate != nil:
		last := *p.LastWorkoutDate
		s.LastWorkoutDate = &last
	}
	s.normalize()
	return s
}
