package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/model"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func newGoal(title, status string, progress int, deadline time.Time) *model.Goal {
	now := time.Now().UTC()
	return &model.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Category:    "cardio",
		TargetValue: 100,
		Unit:        "km",
		Deadline:    deadline,
		Progress:    progress,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestGoalRepositoryCreateAndByID(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	deadline := time.Date(2030, 7, 15, 0, 0, 0, 0, time.UTC)

	goal := newGoal("Run 100 kilometers", model.GoalStatusActive, 0, deadline)
	goal.Description = "Complete 100 kilometers of running in total"
	require.NoError(t, repo.Create(goal))

	got, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 100 kilometers", got.Title)
	assert.Equal(t, "Complete 100 kilometers of running in total", got.Description)
	assert.Equal(t, 100.0, got.TargetValue)
	assert.True(t, deadline.Equal(got.Deadline))
	assert.Nil(t, got.CompletedAt)

	_, err = repo.ByID("missing")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalRepositoryGoalsByStatusAndSort(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	far := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(newGoal("Swim 20 kilometers", model.GoalStatusActive, 60, far.AddDate(0, 3, 0))))
	require.NoError(t, repo.Create(newGoal("bench press 100 kg", model.GoalStatusActive, 85, far)))
	require.NoError(t, repo.Create(newGoal("Complete 30 yoga sessions", model.GoalStatusCompleted, 100, far)))

	completed, err := repo.Goals(model.GoalStatusCompleted, GoalSortRecent)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Complete 30 yoga sessions", completed[0].Title)

	all, err := repo.Goals(model.GoalTabAll, GoalSortTitle)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bench press 100 kg", all[0].Title)

	byProgress, err := repo.Goals(model.GoalStatusActive, GoalSortProgress)
	require.NoError(t, err)
	require.Len(t, byProgress, 2)
	assert.Equal(t, 85, byProgress[0].Progress)

	byDeadline, err := repo.Goals("", GoalSortDeadline)
	require.NoError(t, err)
	assert.Equal(t, "Swim 20 kilometers", byDeadline[2].Title)

	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, counts[model.GoalStatusActive])
	assert.Equal(t, 1, counts[model.GoalStatusCompleted])
	assert.Equal(t, 0, counts[model.GoalStatusExpired])
}

func TestGoalRepositoryUpdate(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	goal := newGoal("Lose 5 kg", model.GoalStatusActive, 0, time.Date(2030, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(goal))

	done := time.Now().UTC()
	goal.CurrentValue = 100
	goal.Progress = 100
	goal.Status = model.GoalStatusCompleted
	goal.CompletedAt = &done
	require.NoError(t, repo.Update(goal))

	got, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.CompletedAt)

	missing := newGoal("ghost", model.GoalStatusActive, 0, done)
	assert.ErrorIs(t, repo.Update(missing), ErrGoalNotFound)
}

func TestGoalRepositoryExpireOverdue(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	now := time.Date(2025, 5, 18, 12, 0, 0, 0, time.UTC)

	overdue := newGoal("overdue", model.GoalStatusActive, 40, now.AddDate(0, 0, -2))
	upcoming := newGoal("upcoming", model.GoalStatusActive, 40, now.AddDate(0, 0, 2))
	finished := newGoal("finished", model.GoalStatusCompleted, 100, now.AddDate(0, 0, -10))
	for _, g := range []*model.Goal{overdue, upcoming, finished} {
		require.NoError(t, repo.Create(g))
	}

	n, err := repo.ExpireOverdue(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.ByID(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusExpired, got.Status)

	got, err = repo.ByID(finished.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusCompleted, got.Status)
}

func newActivity(kind, title, location string, start time.Time, minutes, calories int, km *float64) *model.Activity {
	return &model.Activity{
		ID:          uuid.New().String(),
		Type:        kind,
		Title:       title,
		StartedAt:   start,
		DurationMin: minutes,
		DistanceKm:  km,
		Calories:    calories,
		Location:    location,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestActivityRepositoryFilters(t *testing.T) {
	repo := NewActivityRepository(setupTestDB(t))
	day := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	km := 18.0

	require.NoError(t, repo.Create(newActivity(model.ActivityRunning, "Morning Run", "Central Park", day.Add(8*time.Hour), 45, 420, nil)))
	require.NoError(t, repo.Create(newActivity(model.ActivityCycling, "Trail Ride", "Riverside Trail", day.Add(-17*time.Hour), 60, 520, &km)))
	require.NoError(t, repo.Create(newActivity(model.ActivityYoga, "Evening Flow", "Yoga Studio", day.Add(18*time.Hour), 40, 180, nil)))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := repo.Activities(model.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Evening Flow", all[0].Title, "newest first")
	require.NotNil(t, all[2].DistanceKm)
	assert.Equal(t, 18.0, *all[2].DistanceKm)

	onDay, err := repo.Activities(model.DayFilter(day.Add(12 * time.Hour)))
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	cycling, err := repo.Activities(model.ActivityFilter{Type: model.ActivityCycling})
	require.NoError(t, err)
	require.Len(t, cycling, 1)
	assert.Equal(t, "Trail Ride", cycling[0].Title)

	search, err := repo.Activities(model.ActivityFilter{Search: "central"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Morning Run", search[0].Title)

	page, err := repo.Activities(model.ActivityFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Trail Ride", page[0].Title)
}

func TestActivityRepositoryActiveDays(t *testing.T) {
	repo := NewActivityRepository(setupTestDB(t))
	may := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(newActivity(model.ActivityRunning, "a", "", may.Add(7*time.Hour), 30, 300, nil)))
	require.NoError(t, repo.Create(newActivity(model.ActivityYoga, "b", "", may.Add(19*time.Hour), 30, 100, nil)))
	require.NoError(t, repo.Create(newActivity(model.ActivityHIIT, "c", "", may.AddDate(0, 0, 2).Add(6*time.Hour), 30, 380, nil)))
	require.NoError(t, repo.Create(newActivity(model.ActivityHIIT, "d", "", may.AddDate(0, 1, 0), 30, 380, nil)))

	days, err := repo.ActiveDays(may, may.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{may, may.AddDate(0, 0, 2)}, days)
}

func TestExportRepositoryLifecycle(t *testing.T) {
	repo := NewExportRepository(setupTestDB(t))
	now := time.Now().UTC()

	export := &model.Export{
		ID:        uuid.New().String(),
		Format:    model.ExportFormatCSV,
		DateRange: model.DateRangeAll,
		Sections:  "activities,goals",
		Status:    model.ExportStatusPending,
		CreatedAt: now,
	}
	require.NoError(t, repo.Create(export))

	require.NoError(t, repo.MarkReady(export.ID, "exports/x.csv", now))
	got, err := repo.ByID(export.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExportStatusReady, got.Status)
	assert.Equal(t, "exports/x.csv", got.StoragePath)
	require.NotNil(t, got.CompletedAt)

	assert.ErrorIs(t, repo.MarkFailed("missing", "boom", now), ErrExportNotFound)
	_, err = repo.ByID("missing")
	assert.ErrorIs(t, err, ErrExportNotFound)
}
