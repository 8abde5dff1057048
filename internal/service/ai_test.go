package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

func newTestAIService(t *testing.T, delay time.Duration) *AIService {
	t.Helper()
	return NewAIService(NewMemoryJobStore(time.Minute), NewGenerator(newTestContent(t)), delay)
}

func validWorkoutRequest() model.WorkoutPlanRequest {
	req := model.DefaultWorkoutPlanRequest()
	req.Goal = "muscle-gain"
	req.FitnessLevel = "intermediate"
	req.Equipment = []string{"dumbbells", "bench"}
	req.FocusAreas = []string{"upper-body", "core"}
	return req
}

func TestAIServiceWorkoutPlanBecomesReady(t *testing.T) {
	svc := newTestAIService(t, 20*time.Millisecond)
	ctx := context.Background()

	job, err := svc.StartWorkoutPlan(ctx, validWorkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusPending, job.Status)

	pending, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, pending.IsReady())
	assert.Nil(t, pending.Result)

	require.Eventually(t, func() bool {
		j, err := svc.Job(ctx, job.ID)
		return err == nil && j.IsReady()
	}, time.Second, 5*time.Millisecond)

	ready, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, ready.ReadyAt)
	require.NotNil(t, ready.Result)
	require.NotNil(t, ready.Result.WorkoutPlan)

	plan := ready.Result.WorkoutPlan
	assert.Equal(t, []string{"Muscle Gain", "Intermediate", "3x Weekly", "45 min"}, plan.Badges)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, "Day 1: Upper Body", plan.Days[0].Title)
	assert.Equal(t, "Bench Press", plan.Days[0].Exercises[0].Name)
	assert.Equal(t, "AI Recommendations", plan.Recommendations.Title)
	assert.Contains(t, plan.Recommendations.HTML, "Warm up first.")
}

func TestAIServiceJobCompletesOnce(t *testing.T) {
	svc := newTestAIService(t, time.Hour)
	ctx := context.Background()

	job, err := svc.StartProgressAnalysis(ctx, model.DefaultProgressRequest())
	require.NoError(t, err)

	result := svc.generator.Result(job)
	ok, err := svc.complete(job.ID, job.Kind, result)
	require.NoError(t, err)
	assert.True(t, ok)

	first, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, first.IsReady())

	ok, err = svc.complete(job.ID, job.Kind, result)
	require.NoError(t, err)
	assert.False(t, ok)

	second, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, first.ReadyAt.Equal(*second.ReadyAt))
}

func TestAIServiceValidatesRequests(t *testing.T) {
	svc := newTestAIService(t, time.Millisecond)
	ctx := context.Background()

	req := validWorkoutRequest()
	req.FocusAreas = nil
	req.WorkoutsPerWeek = 9

	job, err := svc.StartWorkoutPlan(ctx, req)
	assert.Nil(t, job)
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select at least one focus area.", verrs.Get("focus_areas"))
	assert.True(t, verrs.Has("workouts_per_week"))

	_, err = svc.StartNutrition(ctx, model.DefaultNutritionRequest())
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select a nutrition goal.", verrs.Get("goal"))

	_, err = svc.StartProgressAnalysis(ctx, model.ProgressRequest{Timeframe: "forever"})
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select a timeframe.", verrs.Get("timeframe"))
}

func TestAIServiceNutritionPlan(t *testing.T) {
	svc := newTestAIService(t, time.Millisecond)
	ctx := context.Background()

	req := model.DefaultNutritionRequest()
	req.Goal = "muscle-gain"
	req.Gender = "male"
	req.ActivityLevel = "moderate"

	job, err := svc.StartNutrition(ctx, req)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		j, err := svc.Job(ctx, job.ID)
		return err == nil && j.IsReady()
	}, time.Second, 5*time.Millisecond)

	ready, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	plan := ready.Result.NutritionPlan
	require.NotNil(t, plan)

	assert.Equal(t, []string{"Muscle Gain", "Male, 30 years", "70 kg, 175 cm", "Moderately Active"}, plan.Badges)
	assert.Equal(t, model.MacroSummary{Calories: 2650, ProteinG: 175, CarbsG: 265, FatG: 88}, plan.Summary)
	require.Len(t, plan.Meals, 5)
	assert.Equal(t, 650, plan.Meals[0].Calories())
	assert.Equal(t, 750, plan.Meals[1].Calories())
	assert.Len(t, plan.FoodGroups, 4)
	assert.Len(t, plan.Supplements, 4)
	assert.Equal(t, "Important Note", plan.Note.Title)
}

func TestAIServiceUnknownJob(t *testing.T) {
	svc := newTestAIService(t, time.Millisecond)

	_, err := svc.Job(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryJobStoreExpires(t *testing.T) {
	store := NewMemoryJobStore(time.Minute).(*memoryJobStore)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &model.GenerationJob{ID: "a", Status: model.JobStatusPending}))
	_, err := store.Job(ctx, "a")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Job(ctx, "a")
	assert.ErrorIs(t, err, ErrJobNotFound)

	require.NoError(t, store.Create(ctx, &model.GenerationJob{ID: "b", Status: model.JobStatusPending}))
	assert.Len(t, store.jobs, 1)

	_, err = store.Complete(ctx, "a", &model.GenerationResult{}, now)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestNewJobStoreDefaultsToMemory(t *testing.T) {
	store, err := NewJobStore(context.Background(), "", time.Minute)
	require.NoError(t, err)
	assert.IsType(t, &memoryJobStore{}, store)

	_, err = NewJobStore(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}
