package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterGoals(t *testing.T) {
	goals := []*Goal{
		{ID: "1", Status: GoalStatusActive},
		{ID: "2", Status: GoalStatusCompleted},
		{ID: "3", Status: GoalStatusExpired},
		{ID: "4", Status: GoalStatusCompleted},
	}

	tests := []struct {
		name   string
		status string
		want   []string
	}{
		{"completed only", GoalStatusCompleted, []string{"2", "4"}},
		{"active only", GoalStatusActive, []string{"1"}},
		{"all", GoalTabAll, []string{"1", "2", "3", "4"}},
		{"empty means all", "", []string{"1", "2", "3", "4"}},
		{"unknown status", "paused", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, g := range FilterGoals(goals, tt.status) {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProgressFor(t *testing.T) {
	g := &Goal{TargetValue: 5}

	assert.Equal(t, 0, g.ProgressFor(0))
	assert.Equal(t, 64, g.ProgressFor(3.2))
	assert.Equal(t, 100, g.ProgressFor(5))
	assert.Equal(t, 100, g.ProgressFor(9))
	assert.Equal(t, 0, g.ProgressFor(-2))
	assert.Equal(t, 0, (&Goal{}).ProgressFor(3))
}

func TestProgressForHugeValues(t *testing.T) {
	g := &Goal{TargetValue: 0.5}

	assert.Equal(t, 100, g.ProgressFor(1e308))
	assert.Equal(t, 100, g.ProgressFor(math.MaxFloat64))
	assert.Equal(t, 0, g.ProgressFor(-math.MaxFloat64))
	assert.Equal(t, 0, g.ProgressFor(math.NaN()))
}

func TestNearCompletionAndDaysLeft(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	g := &Goal{Status: GoalStatusActive, Progress: 85, Deadline: now.Add(36 * time.Hour)}

	assert.True(t, g.NearCompletion())
	assert.Equal(t, 2, g.DaysLeft(now))

	g.Status = GoalStatusCompleted
	assert.False(t, g.NearCompletion())
}
