package memory

import (
	"time"

	"fittracker/backend/internal/domain"
)

type seedWorkout struct {
	input   domain.NewWorkout
	daysAgo int
}

func strPtr(s string) *string { return &s }

var seedWorkouts = []seedWorkout{
	{domain.NewWorkout{Name: "Morning Cardio", Type: domain.WorkoutTypeCardio, Duration: 30, Intensity: 7, Calories: 250,
		Notes: strPtr("Great morning run"), Exercises: []string{"Running", "Cool down walk"}}, 1},
	{domain.NewWorkout{Name: "Strength Training", Type: domain.WorkoutTypeStrength, Duration: 45, Intensity: 8, Calories: 320,
		Notes: strPtr("Upper body focus"), Exercises: []string{"Push-ups", "Pull-ups", "Bench press", "Shoulder press"}}, 2},
	{domain.NewWorkout{Name: "Yoga Flow", Type: domain.WorkoutTypeFlexibility, Duration: 60, Intensity: 4, Calories: 180,
		Notes: strPtr("Relaxing session"), Exercises: []string{"Sun salutation", "Warrior poses", "Downward dog", "Savasana"}}, 3},
	{domain.NewWorkout{Name: "HIIT Workout", Type: domain.WorkoutTypeCardio, Duration: 25, Intensity: 9, Calories: 400,
		Notes: strPtr("Intense session!"), Exercises: []string{"Burpees", "Jump squats", "Mountain climbers", "High knees"}}, 4},
	{domain.NewWorkout{Name: "Swimming", Type: domain.WorkoutTypeCardio, Duration: 40, Intensity: 6, Calories: 290,
		Notes: strPtr("Pool session"), Exercises: []string{"Freestyle", "Backstroke", "Water jogging"}}, 5},
	{domain.NewWorkout{Name: "Lower Body Strength", Type: domain.WorkoutTypeStrength, Duration: 50, Intensity: 8, Calories: 350,
		Notes: strPtr("Leg day complete"), Exercises: []string{"Squats", "Deadlifts", "Lunges", "Calf raises"}}, 6},
	{domain.NewWorkout{Name: "Evening Walk", Type: domain.WorkoutTypeCardio, Duration: 35, Intensity: 3, Calories: 150,
		Notes: strPtr("Peaceful evening"), Exercises: []string{"Brisk walking", "Light stretching"}}, 7},
}

var seedWorkoutPlans = []domain.NewWorkoutPlan{
	{DayOfWeek: 1, Name: "Upper Body Strength", Duration: 45, ExerciseCount: 6, Focus: []string{"Chest", "Back", "Arms"}, Status: domain.PlanStatusToday, Week: 3},
	{DayOfWeek: 2, Name: "Active Recovery", Duration: 20, ExerciseCount: 0, Focus: []string{"Stretching"}, Status: domain.PlanStatusRest, Week: 3},
	{DayOfWeek: 3, Name: "Lower Body Power", Duration: 50, ExerciseCount: 7, Focus: []string{"Legs", "Glutes", "Core"}, Status: domain.PlanStatusUpcoming, Week: 3},
	{DayOfWeek: 4, Name: "Cardio Intervals", Duration: 35, ExerciseCount: 5, Focus: []string{"Cardio", "Endurance"}, Status: domain.PlanStatusUpcoming, Week: 3},
	{DayOfWeek: 5, Name: "Full Body Circuit", Duration: 40, ExerciseCount: 8, Focus: []string{"Full Body", "Functional"}, Status: domain.PlanStatusUpcoming, Week: 3},
	{DayOfWeek: 6, Name: "Outdoor Activity", Duration: 60, ExerciseCount: 0, Focus: []string{"Cardio", "Recreation"}, Status: domain.PlanStatusFlexible, Week: 3},
}

// loadSeedData writes the sample records directly, bypassing the stats side
// effects of CreateWorkout. The stats are set to fixed values.
func (s *Store) loadSeedData(now time.Time) {
	for _, sw := range seedWorkouts {
		w := sw.input.Build(s.newID(), now.Add(-time.Duration(sw.daysAgo)*domain.Day))
		s.workouts[w.ID] = w
	}
	for _, in := range seedWorkoutPlans {
		p := in.Build(s.newID())
		s.workoutPlans[p.ID] = p
	}
	last := now
	s.userStats = domain.UserStats{
		ID:              statsID,
		CurrentStreak:   7,
		BestStreak:      15,
		TotalWorkouts:   42,
		LastWorkoutDate: &last,
	}
}
