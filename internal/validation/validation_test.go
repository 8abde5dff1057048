package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func validGoalForm() model.GoalForm {
	return model.GoalForm{
		Title:       "Run a marathon",
		Category:    "cardio",
		TargetValue: "42.2",
		Unit:        "km",
		Deadline:    "2025-06-01",
	}
}

func TestGoalFormValid(t *testing.T) {
	fixClock(t, time.Date(2025, 5, 18, 15, 0, 0, 0, time.UTC))

	form := validGoalForm()
	assert.Nil(t, Struct(form))
}

func TestGoalFormMessages(t *testing.T) {
	fixClock(t, time.Date(2025, 5, 18, 15, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		mutate func(*model.GoalForm)
		field  string
		want   string
	}{
		{"short title", func(f *model.GoalForm) { f.Title = "R" }, "title", "Goal title must be at least 2 characters."},
		{"missing category", func(f *model.GoalForm) { f.Category = "" }, "category", "Please select a category."},
		{"unknown category", func(f *model.GoalForm) { f.Category = "chess" }, "category", "Please select a category."},
		{"missing target", func(f *model.GoalForm) { f.TargetValue = "" }, "target_value", "Please enter a target value."},
		{"non numeric target", func(f *model.GoalForm) { f.TargetValue = "lots" }, "target_value", "Target value must be a number."},
		{"zero target", func(f *model.GoalForm) { f.TargetValue = "0" }, "target_value", "Target value must be greater than zero."},
		{"target out of range", func(f *model.GoalForm) { f.TargetValue = "1" + strings.Repeat("0", 400) }, "target_value", "Target value is too large."},
		{"missing unit", func(f *model.GoalForm) { f.Unit = "" }, "unit", "Please select a unit."},
		{"missing deadline", func(f *model.GoalForm) { f.Deadline = "" }, "deadline", "Please select a deadline."},
		{"deadline today", func(f *model.GoalForm) { f.Deadline = "2025-05-18" }, "deadline", "Please select a deadline after today."},
		{"deadline in past", func(f *model.GoalForm) { f.Deadline = "2024-12-31" }, "deadline", "Please select a deadline after today."},
		{"garbled deadline", func(f *model.GoalForm) { f.Deadline = "next week" }, "deadline", "Please select a deadline after today."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validGoalForm()
			tt.mutate(&form)

			errs := Struct(form)
			require.NotNil(t, errs)
			assert.Equal(t, tt.want, errs.Get(tt.field))
			assert.Len(t, errs, 1)
		})
	}
}

func TestGoalProgressFormMessages(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", "Please enter your current value."},
		{"abc", "Current value must be a number."},
		{"-1", "Current value cannot be negative."},
		{"1" + strings.Repeat("0", 400), "Current value is too large."},
	}

	for _, tt := range tests {
		errs := Struct(model.GoalProgressForm{CurrentValue: tt.value})
		require.NotNil(t, errs, "value %q", tt.value)
		assert.Equal(t, tt.want, errs.Get("current_value"))
	}

	assert.Nil(t, Struct(model.GoalProgressForm{CurrentValue: "1" + strings.Repeat("0", 300)}))
}

func TestWorkoutRequestDefaultsAndSlices(t *testing.T) {
	req := model.DefaultWorkoutPlanRequest()
	req.Goal = "strength"
	req.FitnessLevel = "beginner"

	errs := Struct(req)
	require.NotNil(t, errs)
	assert.Equal(t, "Please select at least one focus area.", errs.Get("focus_areas"))

	req.FocusAreas = []string{"core"}
	req.TimePerWorkout = 10
	errs = Struct(req)
	assert.Equal(t, "Number must be greater than or equal to 15.", errs.Get("time_per_workout"))

	req.TimePerWorkout = 45
	req.Equipment = []string{"rowing-machine"}
	errs = Struct(req)
	assert.True(t, errs.Has("equipment"))

	req.Equipment = nil
	assert.Nil(t, Struct(req))
}

func TestExportRequestNeedsASection(t *testing.T) {
	req := model.DefaultExportRequest()
	req.IncludeActivities, req.IncludeGoals, req.IncludeBodyMetrics = false, false, false

	errs := Struct(req)
	require.NotNil(t, errs)
	assert.Equal(t, "Select at least one kind of data to export.", errs.Get("include_goals"))

	req.IncludeActivities = true
	assert.Nil(t, Struct(req))
}

func TestParseDateAndToday(t *testing.T) {
	fixClock(t, time.Date(2025, 5, 18, 23, 59, 0, 0, time.UTC))

	d, err := ParseDate("2025-05-19")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC), Today())

	_, err = ParseDate("19/05/2025")
	assert.Error(t, err)
}

func TestValidateEmailAndName(t *testing.T) {
	assert.NoError(t, ValidateEmail("alex@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))

	assert.NoError(t, ValidateName("Alex"))
	assert.Error(t, ValidateName("   "))
}
