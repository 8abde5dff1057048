package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

func TestActivityServiceStats(t *testing.T) {
	repo := repository.NewActivityRepository(setupTestDB(t))
	svc := NewActivityService(repo)
	base := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	createActivity(t, repo, model.ActivityRunning, base, 30, 320)
	createActivity(t, repo, model.ActivityWeightlifting, base.AddDate(0, 0, 1), 45, 280)
	createActivity(t, repo, model.ActivityYoga, base.AddDate(0, 0, 2), 60, 180)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, model.ActivityStats{TotalActivities: 3, Calories: 780, ActiveMinutes: 135, Workouts: 2}, stats)

	recent, err := svc.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, model.ActivityYoga, recent[0].Type)
}

func TestActivityServiceCalendar(t *testing.T) {
	repo := repository.NewActivityRepository(setupTestDB(t))
	svc := NewActivityService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	run := createActivity(t, repo, model.ActivityRunning, time.Date(2026, 3, 5, 7, 0, 0, 0, time.UTC), 30, 320)
	createActivity(t, repo, model.ActivityCycling, time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC), 60, 450)
	createActivity(t, repo, model.ActivitySwimming, time.Date(2026, 3, 20, 7, 0, 0, 0, time.UTC), 40, 380)
	createActivity(t, repo, model.ActivityYoga, time.Date(2026, 4, 2, 7, 0, 0, 0, time.UTC), 60, 180)

	cal, err := svc.Calendar(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	// March 2026 starts on a Sunday and ends on a Tuesday.
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cal.Month)
	require.Len(t, cal.Weeks, 5)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cal.Weeks[0][0].Date)
	assert.Equal(t, time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC), cal.Weeks[4][6].Date)
	assert.False(t, cal.Weeks[4][6].InMonth)

	var active, selected, today []int
	for _, week := range cal.Weeks {
		for _, d := range week {
			if d.Active {
				active = append(active, d.Date.Day())
			}
			if d.Selected {
				selected = append(selected, d.Date.Day())
			}
			if d.Today {
				today = append(today, d.Date.Day())
			}
		}
	}
	assert.Equal(t, []int{5, 20, 2}, active)
	assert.Equal(t, []int{5}, selected)
	assert.Equal(t, []int{10}, today)

	require.Len(t, cal.Activities, 2)
	assert.Equal(t, model.ActivityCycling, cal.Activities[0].Type)
	assert.Equal(t, run.ID, cal.Activities[1].ID)

	assert.Equal(t, time.February, cal.PrevMonth().Month())
	assert.Equal(t, time.April, cal.NextMonth().Month())
}
