package service

import (
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

var testContentFS = fstest.MapFS{
	"content/ai/workout-recommendations.md": {Data: []byte("---\ntitle: AI Recommendations\n---\n- Warm up first.\n")},
	"content/ai/nutrition-note.md":          {Data: []byte("---\ntitle: Important Note\n---\nEat whole foods.\n")},
	"content/ai/progress-summary.md":        {Data: []byte("Keep going.\n")},
	"content/tips/recovery.md":              {Data: []byte("---\ntitle: Recovery Status\norder: 2\n---\nRest today.\n")},
	"content/tips/workout.md":               {Data: []byte("---\ntitle: AI Workout Recommendation\nheading: HIIT Cardio Session\nlink: /app/ai?tab=workout\norder: 1\n---\nThirty minutes.\n")},
}

func newTestContent(t *testing.T) *ContentService {
	t.Helper()

	content := NewContentService(testContentFS)
	require.NoError(t, content.Load())
	return content
}

func createActivity(t *testing.T, repo repository.ActivityRepository, typ string, startedAt time.Time, minutes, calories int) *model.Activity {
	t.Helper()

	a := &model.Activity{
		ID:          uuid.New().String(),
		Type:        typ,
		Title:       typ + " session",
		StartedAt:   startedAt,
		DurationMin: minutes,
		Calories:    calories,
		Location:    "Central Park",
		CreatedAt:   startedAt,
	}
	require.NoError(t, repo.Create(a))
	return a
}

func createGoal(t *testing.T, repo repository.GoalRepository, title, status string, progress int, deadline time.Time) *model.Goal {
	t.Helper()

	now := time.Now().UTC()
	g := &model.Goal{
		ID:           uuid.New().String(),
		Title:        title,
		Category:     "strength",
		TargetValue:  100,
		CurrentValue: float64(progress),
		Unit:         "kg",
		Deadline:     deadline,
		Progress:     progress,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(g))
	return g
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(time.DateOnly)
}
