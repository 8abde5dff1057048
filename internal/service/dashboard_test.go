package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

func TestDashboardService(t *testing.T) {
	database := setupTestDB(t)
	activityRepo := repository.NewActivityRepository(database)
	goalRepo := repository.NewGoalRepository(database)

	// Wednesday
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	createActivity(t, activityRepo, model.ActivityRunning, time.Date(2026, 10, 12, 7, 0, 0, 0, time.UTC), 30, 300)
	createActivity(t, activityRepo, model.ActivityYoga, time.Date(2026, 10, 13, 7, 0, 0, 0, time.UTC), 60, 200)
	createActivity(t, activityRepo, model.ActivityWeightlifting, time.Date(2026, 10, 14, 7, 0, 0, 0, time.UTC), 45, 350)
	createActivity(t, activityRepo, model.ActivityRunning, time.Date(2026, 9, 20, 7, 0, 0, 0, time.UTC), 30, 300)

	deadline := now.AddDate(0, 2, 0)
	createGoal(t, goalRepo, "Almost there", model.GoalStatusActive, 85, deadline)
	createGoal(t, goalRepo, "Just started", model.GoalStatusActive, 20, deadline)
	createGoal(t, goalRepo, "Finished", model.GoalStatusCompleted, 100, deadline)

	svc := NewDashboardService(NewActivityService(activityRepo), NewGoalService(goalRepo), newTestContent(t))
	svc.now = func() time.Time { return now }

	d, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalActivities)
	assert.Equal(t, 200, d.MonthOverMonthPct)
	assert.Equal(t, 850, d.CaloriesThisMonth)
	assert.Equal(t, 3, d.Streak)

	assert.Equal(t, 2, d.ActiveGoals)
	assert.Equal(t, 1, d.NearCompletion)
	require.Len(t, d.Goals, 2)
	assert.Equal(t, "Almost there", d.Goals[0].Title)

	require.Len(t, d.Week, 7)
	assert.Equal(t, "Mon", d.Week[0].Label)
	assert.Equal(t, "Sun", d.Week[6].Label)
	assert.Equal(t, []int{300, 200, 350, 0, 0, 0, 0}, []int{
		d.Week[0].Calories, d.Week[1].Calories, d.Week[2].Calories,
		d.Week[3].Calories, d.Week[4].Calories, d.Week[5].Calories, d.Week[6].Calories,
	})
	assert.Equal(t, 350, d.WeekMax())

	require.Len(t, d.WeeklyStats, 3)
	assert.Equal(t, CategoryHours{Category: model.CategoryCardio, Hours: 0.5, Percent: 22}, d.WeeklyStats[0])
	assert.Equal(t, CategoryHours{Category: model.CategoryStrength, Hours: 0.75, Percent: 33}, d.WeeklyStats[1])
	assert.Equal(t, CategoryHours{Category: model.CategoryFlexibility, Hours: 1, Percent: 44}, d.WeeklyStats[2])
	assert.InDelta(t, 2.25, d.WeeklyHours(), 0.001)

	require.Len(t, d.Recent, 4)
	assert.Equal(t, model.ActivityWeightlifting, d.Recent[0].Type)

	require.Len(t, d.Tips, 2)
	assert.Equal(t, "HIIT Cardio Session", d.Tips[0].Heading)
}
