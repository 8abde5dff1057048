package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	km := 5.2
	activities := []*Activity{
		{Type: ActivityRunning, DurationMin: 45, Calories: 420, DistanceKm: &km},
		{Type: ActivityWeightlifting, DurationMin: 55, Calories: 380},
		{Type: ActivityYoga, DurationMin: 40, Calories: 180},
	}

	stats := ComputeStats(activities)

	assert.Equal(t, 3, stats.TotalActivities)
	assert.Equal(t, 980, stats.Calories)
	assert.Equal(t, 140, stats.ActiveMinutes)
	assert.Equal(t, 2, stats.Workouts)
	assert.InDelta(t, 2.33, stats.ActiveHours(), 0.01)
}

func TestStreak(t *testing.T) {
	today := time.Date(2025, 5, 18, 9, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, -offset) }

	assert.Equal(t, 3, Streak([]time.Time{day(0), day(1), day(2), day(4)}, today))
	assert.Equal(t, 2, Streak([]time.Time{day(1), day(2)}, today), "streak survives an empty today")
	assert.Equal(t, 0, Streak([]time.Time{day(2)}, today))
	assert.Equal(t, 0, Streak(nil, today))
}

func TestActivityIconAndCategory(t *testing.T) {
	assert.Equal(t, "🧘‍♀️", (&Activity{Type: ActivityYoga}).Icon())
	assert.Equal(t, "💪", (&Activity{Type: "climbing"}).Icon())
	assert.Equal(t, CategoryCardio, (&Activity{Type: ActivityHIIT}).Category())
	assert.Equal(t, CategoryStrength, (&Activity{Type: ActivityWeightlifting}).Category())
	assert.True(t, ValidActivityType(ActivitySwimming))
	assert.False(t, ValidActivityType("all"))
}
