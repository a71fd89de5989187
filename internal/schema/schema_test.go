package schema_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/schema"
)

func requireValidationError(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestParseInsertWorkout(t *testing.T) {
	body := []byte(`{
		"name": "Morning Cardio",
		"type": "cardio",
		"duration": 30,
		"intensity": 7,
		"calories": 250,
		"notes": "Great morning run",
		"exercises": ["Running", "Cool down walk"]
	}`)

	w, err := schema.ParseInsertWorkout(body)
	require.NoError(t, err)
	assert.Equal(t, "Morning Cardio", w.Name)
	assert.Equal(t, domain.WorkoutTypeCardio, w.Type)
	assert.Equal(t, 30, w.Duration)
	assert.Equal(t, 7, w.Intensity)
	assert.Equal(t, 250, w.Calories)
	require.NotNil(t, w.Notes)
	assert.Equal(t, "Great morning run", *w.Notes)
	assert.Equal(t, []string{"Running", "Cool down walk"}, w.Exercises)
}

func TestParseInsertWorkout_OptionalFields(t *testing.T) {
	w, err := schema.ParseInsertWorkout([]byte(`{"name":"Walk","type":"other","duration":10,"intensity":1,"calories":0,"notes":null}`))
	require.NoError(t, err)
	assert.Nil(t, w.Notes)
	assert.Empty(t, w.Exercises)
	assert.Zero(t, w.Calories)
}

func TestParseInsertWorkout_StripsServerAssignedFields(t *testing.T) {
	body := []byte(`{"id":"client-id","date":"2020-01-01T00:00:00Z","name":"Swim","type":"cardio","duration":40,"intensity":6,"calories":290}`)
	w, err := schema.ParseInsertWorkout(body)
	require.NoError(t, err)
	assert.Equal(t, "Swim", w.Name)
}

func TestParseInsertWorkout_MissingDuration(t *testing.T) {
	_, err := schema.ParseInsertWorkout([]byte(`{"name":"Run","type":"cardio","intensity":5,"calories":100}`))
	verr := requireValidationError(t, err)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, schema.Issue{Field: "duration", Reason: "required"}, verr.Issues[0])
}

func TestParseInsertWorkout_ReportsEveryField(t *testing.T) {
	body := []byte(`{"name":"","type":"yoga","duration":0,"intensity":11,"calories":-1,"notes":5,"mood":"good"}`)
	_, err := schema.ParseInsertWorkout(body)
	verr := requireValidationError(t, err)

	assert.Equal(t, []schema.Issue{
		{Field: "calories", Reason: "must be greater than or equal to 0"},
		{Field: "duration", Reason: "must be greater than or equal to 1"},
		{Field: "intensity", Reason: "must be less than or equal to 10"},
		{Field: "mood", Reason: "unknown field"},
		{Field: "name", Reason: "must not be empty"},
		{Field: "notes", Reason: "expected a string"},
		{Field: "type", Reason: `must be one of: "cardio", "strength", "flexibility", "sports", "other"`},
	}, verr.Issues)
}

func TestParseInsertWorkout_TypeErrors(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"fractional duration", `{"name":"a","type":"cardio","duration":30.5,"intensity":5,"calories":1}`, "duration", "expected an integer"},
		{"string intensity", `{"name":"a","type":"cardio","duration":30,"intensity":"5","calories":1}`, "intensity", "expected an integer"},
		{"numeric name", `{"name":1,"type":"cardio","duration":30,"intensity":5,"calories":1}`, "name", "expected a string"},
		{"exercises not a list", `{"name":"a","type":"cardio","duration":30,"intensity":5,"calories":1,"exercises":"run"}`, "exercises", "expected a list of strings"},
		{"null calories", `{"name":"a","type":"cardio","duration":30,"intensity":5,"calories":null}`, "calories", "required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.ParseInsertWorkout([]byte(tc.body))
			verr := requireValidationError(t, err)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tc.field, verr.Issues[0].Field)
			assert.Equal(t, tc.want, verr.Issues[0].Reason)
		})
	}
}

func TestParseInsertWorkout_EmptyExerciseEntry(t *testing.T) {
	_, err := schema.ParseInsertWorkout([]byte(`{"name":"a","type":"cardio","duration":30,"intensity":5,"calories":1,"exercises":["ok",""]}`))
	verr := requireValidationError(t, err)
	assert.True(t, verr.HasField("exercises[1]"))
}

func TestParse_MalformedBodies(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"text"`, `{"name":`} {
		_, err := schema.ParseInsertWorkout([]byte(body))
		verr := requireValidationError(t, err)
		assert.True(t, verr.HasField("body"), "body %q", body)
	}
}

func TestParseInsertWorkoutPlan_Defaults(t *testing.T) {
	p, err := schema.ParseInsertWorkoutPlan([]byte(`{"id":"x","dayOfWeek":0,"name":"Long Ride","duration":90,"exerciseCount":0,"focus":["Cardio"]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, p.DayOfWeek)
	assert.Equal(t, domain.PlanStatusUpcoming, p.Status)
	assert.Equal(t, 1, p.Week)
	assert.Equal(t, []string{"Cardio"}, p.Focus)
}

func TestParseInsertWorkoutPlan_Invalid(t *testing.T) {
	_, err := schema.ParseInsertWorkoutPlan([]byte(`{"dayOfWeek":7,"name":"x","duration":30,"exerciseCount":2,"focus":[],"status":"skipped","week":0}`))
	verr := requireValidationError(t, err)
	assert.True(t, verr.HasField("dayOfWeek"))
	assert.True(t, verr.HasField("focus"))
	assert.True(t, verr.HasField("status"))
	assert.True(t, verr.HasField("week"))
	assert.False(t, verr.HasField("name"))
}

func TestParseInsertWorkoutPlan_MissingFocus(t *testing.T) {
	_, err := schema.ParseInsertWorkoutPlan([]byte(`{"dayOfWeek":3,"name":"x","duration":30,"exerciseCount":2}`))
	verr := requireValidationError(t, err)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, schema.Issue{Field: "focus", Reason: "required"}, verr.Issues[0])
}

func TestParseWorkoutPlanPatch(t *testing.T) {
	patch, err := schema.ParseWorkoutPlanPatch([]byte(`{"status":"completed","id":"ignored"}`))
	require.NoError(t, err)
	require.NotNil(t, patch.Status)
	assert.Equal(t, domain.PlanStatusCompleted, *patch.Status)
	assert.Nil(t, patch.Name)

	empty, err := schema.ParseWorkoutPlanPatch([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = schema.ParseWorkoutPlanPatch([]byte(`{"duration":0,"status":"late"}`))
	verr := requireValidationError(t, err)
	assert.True(t, verr.HasField("duration"))
	assert.True(t, verr.HasField("status"))
}

func TestParseUserStatsPatch(t *testing.T) {
	patch, err := schema.ParseUserStatsPatch([]byte(`{"currentStreak":3,"lastWorkoutDate":"2026-05-01T10:00:00Z"}`))
	require.NoError(t, err)
	require.NotNil(t, patch.CurrentStreak)
	assert.Equal(t, 3, *patch.CurrentStreak)
	require.NotNil(t, patch.LastWorkoutDate)
	assert.True(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC).Equal(*patch.LastWorkoutDate))
	assert.False(t, patch.ClearLastWorkoutDate)

	cleared, err := schema.ParseUserStatsPatch([]byte(`{"lastWorkoutDate":null}`))
	require.NoError(t, err)
	assert.True(t, cleared.ClearLastWorkoutDate)

	_, err = schema.ParseUserStatsPatch([]byte(`{"totalWorkouts":-4,"lastWorkoutDate":"yesterday"}`))
	verr := requireValidationError(t, err)
	assert.Equal(t, []schema.Issue{
		{Field: "lastWorkoutDate", Reason: "expected an RFC 3339 timestamp"},
		{Field: "totalWorkouts", Reason: "must be greater than or equal to 0"},
	}, verr.Issues)
}

func TestUnmarshalNewWorkoutPlans(t *testing.T) {
	plans, err := schema.UnmarshalNewWorkoutPlans([]byte(`[
		{"name":"AI Strength Training","dayOfWeek":1,"duration":45,"exerciseCount":8,"focus":["strength"],"status":"upcoming","week":1},
		{"name":"AI Cardio Blast","dayOfWeek":3,"duration":30,"exerciseCount":6,"focus":["cardio"]}
	]`))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 3, plans[1].DayOfWeek)
	assert.Equal(t, domain.PlanStatusUpcoming, plans[1].Status)

	_, err = schema.UnmarshalNewWorkoutPlans([]byte(`[{"name":"bad"}]`))
	require.Error(t, err)

	_, err = schema.UnmarshalNewWorkoutPlans([]byte(`{"not":"a list"}`))
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	_, err := schema.ParseInsertWorkout([]byte(`{"name":"a","type":"cardio","intensity":5,"calories":1}`))
	require.EqualError(t, err, "validation failed: duration: required")
}
