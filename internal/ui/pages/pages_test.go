package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestLayoutUsesRequestContext(t *testing.T) {
	ctx := context.Background()
	ctx = templ.WithNonce(ctx, "nonce123")
	ctx = ctxkeys.WithCSRFToken(ctx, "csrf456")
	ctx = ctxkeys.WithURLPath(ctx, "/app/goals")
	ctx = ctxkeys.WithConfig(ctx, &config.Config{AppName: "FitTrack Test", OwnerName: "Alex Morgan"})

	html := render(t, ctx, Settings(NewSettingsPage(SettingsTabUnits)))

	assert.Contains(t, html, `nonce="nonce123"`)
	assert.Contains(t, html, "csrf456")
	assert.Contains(t, html, "FitTrack Test")
	assert.Contains(t, html, "AM")
	assert.Contains(t, html, `aria-current="page"`)
}

func TestWorkoutPanelStates(t *testing.T) {
	ctx := context.Background()
	req := model.DefaultWorkoutPlanRequest()

	t.Run("form", func(t *testing.T) {
		html := render(t, ctx, WorkoutPanelView(NewWorkoutPanel(req, nil, nil)))
		assert.Contains(t, html, "Generate Workout Plan")
		assert.NotContains(t, html, "/app/ai/jobs/")
	})

	t.Run("errors", func(t *testing.T) {
		errs := validation.Errors{"goal": "Please select a fitness goal."}
		html := render(t, ctx, WorkoutPanelView(NewWorkoutPanel(req, nil, errs)))
		assert.Contains(t, html, "Please select a fitness goal.")
	})

	t.Run("pending", func(t *testing.T) {
		job := &model.GenerationJob{ID: "job-1", Kind: model.JobKindWorkoutPlan, Status: model.JobStatusPending}
		html := render(t, ctx, JobPanel(job))
		assert.Contains(t, html, "Generating Plan...")
		assert.Contains(t, html, "/app/ai/jobs/job-1?kind=workout-plan")
	})

	t.Run("ready", func(t *testing.T) {
		now := time.Now()
		job := &model.GenerationJob{
			ID:      "job-1",
			Kind:    model.JobKindWorkoutPlan,
			Status:  model.JobStatusReady,
			ReadyAt: &now,
			Workout: &req,
			Result: &model.GenerationResult{WorkoutPlan: &model.WorkoutPlan{
				Badges: []string{"Strength"},
				Days:   []model.WorkoutDay{{Title: "Day 1: Upper Body", Weekday: "Monday", DurationMin: 45}},
			}},
		}
		html := render(t, ctx, JobPanel(job))
		assert.Contains(t, html, "Day 1: Upper Body")
		assert.Contains(t, html, "Create New Plan")
		assert.NotContains(t, html, "/app/ai/jobs/")
	})
}

func TestPanelState(t *testing.T) {
	assert.False(t, PanelState{}.Pending())
	assert.False(t, PanelState{}.Ready())

	pending := PanelState{Job: &model.GenerationJob{Status: model.JobStatusPending}}
	assert.True(t, pending.Pending())
	assert.False(t, pending.Ready())

	// Ready without a result still shows the form.
	noResult := PanelState{Job: &model.GenerationJob{Status: model.JobStatusReady}}
	assert.False(t, noResult.Pending())
	assert.False(t, noResult.Ready())
}

func TestActivitiesPageURLs(t *testing.T) {
	p := ActivitiesPage{Type: "yoga", Query: "park", Page: 2}

	assert.Equal(t, "/app/activities?q=park&type=yoga&view=list", p.PrevPageURL())
	assert.Equal(t, "/app/activities?page=3&q=park&type=yoga&view=list", p.NextPageURL())

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "/app/activities?date=2026-03-14&view=calendar", p.DayURL(day))
	assert.Equal(t, "/app/activities?date=2026-03-01&view=calendar", p.MonthURL(day))
}

func TestGoalsContent(t *testing.T) {
	today := time.Now().UTC()
	goals := []*model.Goal{{
		ID:          "g1",
		Title:       "Run a Marathon",
		Category:    "cardio",
		TargetValue: 42.2,
		Unit:        "km",
		Deadline:    today.AddDate(0, 0, 30),
		Progress:    45,
		Status:      model.GoalStatusActive,
	}}

	html := render(t, context.Background(), GoalsContent(GoalsPage{
		Tab:    model.GoalTabActive,
		Goals:  goals,
		Counts: map[string]int{model.GoalTabActive: 1, model.GoalTabAll: 1},
		Today:  today,
	}))

	assert.Contains(t, html, "Run a Marathon")
	assert.Contains(t, html, "/app/goals/g1/progress-dialog")
}

func TestValidTabs(t *testing.T) {
	assert.True(t, ValidAITab(AITabNutrition))
	assert.False(t, ValidAITab("bogus"))
	assert.True(t, ValidSettingsTab(SettingsTabExport))
	assert.False(t, ValidSettingsTab(""))
}

func TestFieldErrorEscapes(t *testing.T) {
	html := render(t, context.Background(), fieldError("<b>bad</b>"))
	assert.Contains(t, html, "&lt;b&gt;bad&lt;/b&gt;")

	assert.Empty(t, render(t, context.Background(), fieldError("")))
}

func TestNutritionPanelKeepsInputs(t *testing.T) {
	req := model.DefaultNutritionRequest()
	req.Weight = 72.5
	req.Goal = "muscle-gain"
	req.DietaryRestrictions = []string{"vegan"}

	html := render(t, context.Background(), NutritionPanelView(NewNutritionPanel(req, nil, nil)))

	assert.Contains(t, html, `value="72.5"`)
	assert.Contains(t, html, `<option value="muscle-gain" selected>`)
	assert.Contains(t, html, `value="vegan" checked`)
	assert.NotContains(t, html, `value="keto" checked`)
}

func TestSettingsTabs(t *testing.T) {
	html := render(t, context.Background(), Settings(NewSettingsPage(SettingsTabSubscription)))
	assert.Contains(t, html, model.FreePlan.Name)
	assert.NotContains(t, html, `id="units-form"`)

	html = render(t, context.Background(), Settings(NewSettingsPage(SettingsTabExport)))
	assert.Contains(t, html, `id="export-form"`)
}
