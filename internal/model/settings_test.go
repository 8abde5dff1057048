package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportRequestSince(t *testing.T) {
	now := time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		dateRange string
		want      time.Time
	}{
		{DateRangeAll, time.Time{}},
		{DateRangeCustom, time.Time{}},
		{DateRangeLastMonth, time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)},
		{DateRangeLast3Months, time.Date(2025, 2, 18, 0, 0, 0, 0, time.UTC)},
		{DateRangeLastYear, time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.dateRange, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportRequest{DateRange: tt.dateRange}.Since(now))
		})
	}
}

func TestRequestBadges(t *testing.T) {
	w := WorkoutPlanRequest{Goal: "muscle-gain", FitnessLevel: "intermediate", WorkoutsPerWeek: 3, TimePerWorkout: 45}
	assert.Equal(t, []string{"Muscle Gain", "Intermediate", "3x Weekly", "45 min"}, w.Badges())

	n := NutritionRequest{Goal: "muscle-gain", Gender: "male", Age: 30, Weight: 70, Height: 175, ActivityLevel: "moderate"}
	assert.Equal(t, []string{"Muscle Gain", "Male, 30 years", "70 kg, 175 cm", "Moderately Active"}, n.Badges())
}

func TestMealCalories(t *testing.T) {
	m := Meal{Items: []MealItem{{"Protein bar", 200}, {"Banana", 100}}}
	assert.Equal(t, 300, m.Calories())
}
