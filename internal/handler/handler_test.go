package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/storage"
)

type fixture struct {
	goals      repository.GoalRepository
	activities repository.ActivityRepository
	store      *storage.LocalStorage
	goal       *GoalHandler
	activity   *ActivityHandler
	dashboard  *DashboardHandler
	ai         *AIHandler
	aiService  *service.AIService
	settings   *SettingsHandler
	health     *HealthHandler
}

func setup(t *testing.T) *fixture {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	goalRepo := repository.NewGoalRepository(database)
	activityRepo := repository.NewActivityRepository(database)
	exportRepo := repository.NewExportRepository(database)

	store, err := storage.NewLocalStorage(t.TempDir(), storage.LocalURLPrefix)
	require.NoError(t, err)

	content := service.NewContentService(fittrack.ContentFS)
	require.NoError(t, content.Load())

	activityService := service.NewActivityService(activityRepo)
	goalService := service.NewGoalService(goalRepo)
	aiService := service.NewAIService(service.NewMemoryJobStore(time.Minute), service.NewGenerator(content), 10*time.Millisecond)
	email := service.NewEmailService("", "noreply@example.com", "http://localhost:8090", "FitTrack", true)
	exportService := service.NewExportService(exportRepo, activityRepo, goalRepo, store, email, "http://localhost:8090", "Alex", "alex@example.com")
	settingsService := service.NewSettingsService(exportRepo, exportService)
	t.Cleanup(settingsService.Wait)

	return &fixture{
		goals:      goalRepo,
		activities: activityRepo,
		store:      store,
		goal:       NewGoalHandler(goalService),
		activity:   NewActivityHandler(activityService),
		dashboard:  NewDashboardHandler(service.NewDashboardService(activityService, goalService, content)),
		ai:         NewAIHandler(aiService),
		aiService:  aiService,
		settings:   NewSettingsHandler(settingsService),
		health:     NewHealthHandler(database),
	}
}

func (f *fixture) createGoal(t *testing.T, title, status string, current float64) *model.Goal {
	t.Helper()

	now := time.Now().UTC()
	g := &model.Goal{
		ID:           uuid.New().String(),
		Title:        title,
		Category:     "strength",
		TargetValue:  100,
		CurrentValue: current,
		Unit:         "kg",
		Deadline:     now.AddDate(0, 1, 0),
		Progress:     int(current),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.goals.Create(g))
	return g
}

func (f *fixture) createActivity(t *testing.T, typ, title string, startedAt time.Time) {
	t.Helper()

	require.NoError(t, f.activities.Create(&model.Activity{
		ID:          uuid.New().String(),
		Type:        typ,
		Title:       title,
		StartedAt:   startedAt,
		DurationMin: 30,
		Calories:    300,
		Location:    "Central Park",
		CreatedAt:   startedAt,
	}))
}

func get(target string, htmx bool) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		r.Header.Set("HX-Request", "true")
	}
	return r
}

func postForm(method, target string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("HX-Request", "true")
	return r
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(time.DateOnly)
}

func validGoalForm() url.Values {
	return url.Values{
		"title":        {"Run a Marathon"},
		"description":  {"Complete a full marathon"},
		"category":     {"cardio"},
		"target_value": {"42.2"},
		"unit":         {"km"},
		"deadline":     {futureDate(90)},
	}
}

func TestGoalsPage(t *testing.T) {
	f := setup(t)
	f.createGoal(t, "Bench Press 100kg", model.GoalStatusActive, 40)
	f.createGoal(t, "Run 5k", model.GoalStatusCompleted, 100)

	t.Run("full page", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.goal.GoalsPage(w, get("/app/goals", false))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<html lang="en">`)
		assert.Contains(t, w.Body.String(), "Bench Press 100kg")
		assert.NotContains(t, w.Body.String(), "Run 5k")
	})

	t.Run("htmx renders the content only", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.goal.GoalsPage(w, get("/app/goals?tab=completed", true))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `<html lang="en">`)
		assert.Contains(t, w.Body.String(), "Run 5k")
		assert.NotContains(t, w.Body.String(), "Bench Press 100kg")
	})
}

func TestGoalCreateRejectsShortTitle(t *testing.T) {
	f := setup(t)

	form := validGoalForm()
	form.Set("title", "A")

	w := httptest.NewRecorder()
	f.goal.Create(w, postForm(http.MethodPost, "/app/goals", form))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#goal-form", w.Header().Get("HX-Retarget"))
	assert.Equal(t, "outerHTML", w.Header().Get("HX-Reswap"))
	assert.Contains(t, w.Body.String(), "Goal title must be at least 2 characters.")

	goals, err := f.goals.Goals(model.GoalTabAll, "")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalCreate(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.goal.Create(w, postForm(http.MethodPost, "/app/goals", validGoalForm()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("HX-Retarget"))
	assert.Contains(t, w.Header().Get("HX-Push-Url"), "tab=active")

	body := w.Body.String()
	assert.Contains(t, body, "Run a Marathon")
	assert.Contains(t, body, `hx-swap-oob="innerHTML:#dialog"`)
	assert.Contains(t, body, "Goal created")
	assert.Contains(t, body, "Your new fitness goal has been created successfully.")

	goals, err := f.goals.Goals(model.GoalTabAll, "")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, model.GoalStatusActive, goals[0].Status)
	assert.Equal(t, 0, goals[0].Progress)
}

func TestGoalProgressDialog(t *testing.T) {
	f := setup(t)
	goal := f.createGoal(t, "Bench Press 100kg", model.GoalStatusActive, 40)

	r := get("/app/goals/"+goal.ID+"/progress-dialog", true)
	r.SetPathValue("id", goal.ID)
	w := httptest.NewRecorder()
	f.goal.ProgressDialog(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bench Press 100kg")
	assert.Contains(t, w.Body.String(), `id="progress-form"`)

	r = get("/app/goals/missing/progress-dialog", true)
	r.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	f.goal.ProgressDialog(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGoalUpdateProgress(t *testing.T) {
	f := setup(t)
	goal := f.createGoal(t, "Bench Press 100kg", model.GoalStatusActive, 40)

	patch := func(value string) *httptest.ResponseRecorder {
		r := postForm(http.MethodPatch, "/app/goals/"+goal.ID+"/progress", url.Values{
			"current_value": {value},
			"tab":           {model.GoalTabAll},
		})
		r.SetPathValue("id", goal.ID)
		w := httptest.NewRecorder()
		f.goal.UpdateProgress(w, r)
		return w
	}

	w := patch("abc")
	assert.Equal(t, "#progress-form", w.Header().Get("HX-Retarget"))

	w = patch("60")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Progress updated")

	w = patch("100")
	assert.Contains(t, w.Body.String(), "Goal completed")

	stored, err := f.goals.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusCompleted, stored.Status)
	assert.Equal(t, 100, stored.Progress)
	assert.NotNil(t, stored.CompletedAt)

	// Completed goals are closed for updates.
	w = patch("50")
	assert.Equal(t, "none", w.Header().Get("HX-Reswap"))
	assert.Contains(t, w.Body.String(), "Only active goals can be updated.")
}

func TestActivitiesPage(t *testing.T) {
	f := setup(t)
	now := time.Now().UTC()
	morning := now.Add(-time.Hour)
	f.createActivity(t, model.ActivityRunning, "Morning Run", morning)
	f.createActivity(t, model.ActivityYoga, "Evening Yoga", now.AddDate(0, 0, -1))

	t.Run("full page", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.activity.ActivitiesPage(w, get("/app/activities", false))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Morning Run")
		assert.Contains(t, w.Body.String(), "Evening Yoga")
	})

	t.Run("filter by type", func(t *testing.T) {
		r := get("/app/activities?type=yoga", true)
		r.Header.Set("HX-Target", "activity-list")
		w := httptest.NewRecorder()
		f.activity.ActivitiesPage(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `<html lang="en">`)
		assert.Contains(t, w.Body.String(), "Evening Yoga")
		assert.NotContains(t, w.Body.String(), "Morning Run")
	})

	t.Run("search", func(t *testing.T) {
		r := get("/app/activities?q=morning", true)
		r.Header.Set("HX-Target", "activity-list")
		w := httptest.NewRecorder()
		f.activity.ActivitiesPage(w, r)

		assert.Contains(t, w.Body.String(), "Morning Run")
		assert.NotContains(t, w.Body.String(), "Evening Yoga")
	})

	t.Run("calendar", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.activity.ActivitiesPage(w, get("/app/activities?view=calendar&date="+morning.Format(time.DateOnly), false))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Morning Run")
	})
}

func TestDashboardPage(t *testing.T) {
	f := setup(t)
	f.createActivity(t, model.ActivityRunning, "Morning Run", time.Now().UTC().Add(-time.Hour))
	f.createGoal(t, "Bench Press 100kg", model.GoalStatusActive, 85)

	w := httptest.NewRecorder()
	f.dashboard.DashboardPage(w, get("/app/dashboard", false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Morning Run")
	assert.Contains(t, w.Body.String(), "Bench Press 100kg")
}

func validWorkoutForm() url.Values {
	return url.Values{
		"goal":              {"muscle-gain"},
		"fitness_level":     {"intermediate"},
		"workouts_per_week": {"3"},
		"time_per_workout":  {"45"},
		"equipment":         {"dumbbells", "bench"},
		"focus_areas":       {"upper-body", "core"},
	}
}

func TestAIWorkoutPlan(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.ai.StartWorkoutPlan(w, postForm(http.MethodPost, "/app/ai/workout-plan", validWorkoutForm()))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Generating Plan...")
	assert.Contains(t, body, "disabled")

	start := strings.Index(body, "/app/ai/jobs/")
	require.NotEqual(t, -1, start)
	jobID, _, _ := strings.Cut(body[start+len("/app/ai/jobs/"):], "?")

	require.Eventually(t, func() bool {
		job, err := f.aiService.Job(context.Background(), jobID)
		return err == nil && job.IsReady()
	}, time.Second, 5*time.Millisecond)

	r := get("/app/ai/jobs/"+jobID+"?kind=workout", true)
	r.SetPathValue("id", jobID)
	w = httptest.NewRecorder()
	f.ai.Job(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Day 1: Upper Body")
	assert.Contains(t, w.Body.String(), "Create New Plan")
	assert.NotContains(t, w.Body.String(), "/app/ai/jobs/")
}

func TestAIWorkoutPlanValidation(t *testing.T) {
	f := setup(t)

	form := validWorkoutForm()
	form.Del("goal")
	form.Del("focus_areas")

	w := httptest.NewRecorder()
	f.ai.StartWorkoutPlan(w, postForm(http.MethodPost, "/app/ai/workout-plan", form))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a fitness goal.")
	assert.Contains(t, w.Body.String(), "Please select at least one focus area.")
	assert.NotContains(t, w.Body.String(), "/app/ai/jobs/")
}

func TestAIJobExpired(t *testing.T) {
	f := setup(t)

	r := get("/app/ai/jobs/unknown?kind=nutrition", true)
	r.SetPathValue("id", "unknown")
	w := httptest.NewRecorder()
	f.ai.Job(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Generate Nutrition Plan")
	assert.Contains(t, w.Body.String(), "Generation expired")
}

func TestAINewPanel(t *testing.T) {
	f := setup(t)

	form := validWorkoutForm()
	form.Set("time_per_workout", "60")
	w := httptest.NewRecorder()
	f.ai.StartWorkoutPlan(w, postForm(http.MethodPost, "/app/ai/workout-plan", form))
	require.Contains(t, w.Body.String(), `<option value="muscle-gain" selected>`)

	r := get("/app/ai/workout/new", true)
	r.SetPathValue("panel", "workout")
	w = httptest.NewRecorder()
	f.ai.NewPanel(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Generate Workout Plan")
	assert.Contains(t, body, `<option value="">Select your goal</option>`)
	assert.NotContains(t, body, `value="muscle-gain" selected`)
	assert.NotContains(t, body, `value="dumbbells" checked`)
	assert.NotContains(t, body, `value="upper-body" checked`)
	assert.Contains(t, body, `name="time_per_workout" min="15" max="120" step="5" value="45"`)
	assert.NotContains(t, body, "/app/ai/jobs/")

	w = httptest.NewRecorder()
	f.ai.StartProgressAnalysis(w, postForm(http.MethodPost, "/app/ai/progress", url.Values{"timeframe": {"1-month"}}))
	require.Contains(t, w.Body.String(), `<option value="1-month" selected>`)

	r = get("/app/ai/progress/new", true)
	r.SetPathValue("panel", "progress")
	w = httptest.NewRecorder()
	f.ai.NewPanel(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Analyze Progress")
	assert.Contains(t, body, `<option value="3-months" selected>`)
	assert.NotContains(t, body, `<option value="1-month" selected>`)

	r = get("/app/ai/bogus/new", true)
	r.SetPathValue("panel", "bogus")
	w = httptest.NewRecorder()
	f.ai.NewPanel(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAITooManyRequests(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.ai.TooManyRequests(w, postForm(http.MethodPost, "/app/ai/workout-plan", validWorkoutForm()))

	assert.Equal(t, "none", w.Header().Get("HX-Reswap"))
	assert.Contains(t, w.Body.String(), "Slow down")
}

func TestSettingsSaveUnits(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.settings.SaveUnits(w, postForm(http.MethodPost, "/app/settings/units", url.Values{
		"weight_unit":      {"lbs"},
		"height_unit":      {"ft"},
		"distance_unit":    {"miles"},
		"temperature_unit": {"fahrenheit"},
	}))
	assert.Contains(t, w.Body.String(), "Units updated")
	assert.Contains(t, w.Body.String(), "Your measurement units have been updated successfully.")

	w = httptest.NewRecorder()
	f.settings.SaveUnits(w, postForm(http.MethodPost, "/app/settings/units", url.Values{
		"weight_unit": {"stone"},
	}))
	assert.Contains(t, w.Body.String(), "Please select a weight unit.")
	assert.NotContains(t, w.Body.String(), "Units updated")
}

func TestSettingsSavePrivacy(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.settings.SavePrivacy(w, postForm(http.MethodPost, "/app/settings/privacy", url.Values{
		"profile_visibility": {"private"},
		"goal_sharing":       {"true"},
	}))
	assert.Contains(t, w.Body.String(), "Privacy settings updated")
	assert.Contains(t, w.Body.String(), "Your privacy settings have been updated successfully.")
}

func TestSettingsRequestExport(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.settings.RequestExport(w, postForm(http.MethodPost, "/app/settings/export", url.Values{
		"format":        {"json"},
		"date_range":    {"all"},
		"include_goals": {"true"},
	}))
	assert.Contains(t, w.Body.String(), "Data export initiated")
	assert.Contains(t, w.Body.String(), "You will receive an email when it&#39;s ready.")

	w = httptest.NewRecorder()
	f.settings.RequestExport(w, postForm(http.MethodPost, "/app/settings/export", url.Values{
		"format":     {"pdf"},
		"date_range": {"all"},
	}))
	assert.Contains(t, w.Body.String(), "Please select an export format.")
	assert.Contains(t, w.Body.String(), "Select at least one kind of data to export.")
}

func TestSettingsPage(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.settings.SettingsPage(w, get("/app/settings?tab=subscription", false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.FreePlan.Name)
}

func TestExportDownload(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.store.Save(context.Background(), "exports/data.csv", strings.NewReader("a,b\n1,2\n")))
	h := NewExportHandler(f.store)

	r := get("/exports/exports/data.csv", false)
	r.SetPathValue("path", "exports/data.csv")
	w := httptest.NewRecorder()
	h.Download(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a,b\n1,2\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="data.csv"`)

	for _, name := range []string{"missing.csv", "../secret", "exports"} {
		r = get("/exports/"+name, false)
		r.SetPathValue("path", name)
		w = httptest.NewRecorder()
		h.Download(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code, name)
	}
}

func TestHealthAndRobots(t *testing.T) {
	f := setup(t)

	w := httptest.NewRecorder()
	f.health.Health(w, get("/healthz", false))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())

	w = httptest.NewRecorder()
	NewSEOHandler().Robots(w, get("/robots.txt", false))
	assert.Contains(t, w.Body.String(), "Disallow: /app/")
}

func TestNotFoundPage(t *testing.T) {
	w := httptest.NewRecorder()
	NewHomeHandler().NotFoundPage(w, get("/nope", false))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
