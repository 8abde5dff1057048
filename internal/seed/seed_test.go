package seed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

func TestDemoDataIsValid(t *testing.T) {
	data, err := load()
	require.NoError(t, err)

	require.Len(t, data.Goals, 5)
	for _, g := range data.Goals {
		assert.Contains(t, model.GoalCategories, g.Category, g.Title)
		assert.Contains(t, model.GoalUnits, g.Unit, g.Title)
		assert.Positive(t, g.TargetValue, g.Title)
	}

	require.NotEmpty(t, data.Activities)
	for _, a := range data.Activities {
		assert.True(t, model.ValidActivityType(a.Type), a.Title)
		_, err := time.Parse("15:04", a.At)
		assert.NoError(t, err, a.Title)
	}
}

func TestSeed(t *testing.T) {
	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	goals := repository.NewGoalRepository(database)
	activities := repository.NewActivityRepository(database)
	now := time.Date(2026, 5, 18, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(context.Background(), goals, activities, now))

	counts, err := goals.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, 4, counts[model.GoalStatusActive])
	assert.Equal(t, 1, counts[model.GoalStatusCompleted])

	all, err := goals.Goals(model.GoalTabAll, repository.GoalSortTitle)
	require.NoError(t, err)
	bench := all[0]
	assert.Equal(t, "Bench press 100 kg", bench.Title)
	assert.Equal(t, 85, bench.Progress)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), bench.Deadline.UTC())

	list, err := activities.Activities(model.ActivityFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, "Morning Run", list[0].Title)
	assert.Equal(t, time.Date(2026, 5, 18, 8, 30, 0, 0, time.UTC), list[0].StartedAt.UTC())
	require.NotNil(t, list[0].DistanceKm)
	assert.Equal(t, 5.2, *list[0].DistanceKm)

	// Seeding twice does not duplicate rows.
	require.NoError(t, Seed(context.Background(), goals, activities, now))
	n, err := activities.Count()
	require.NoError(t, err)
	assert.Equal(t, len(list), n)
}
