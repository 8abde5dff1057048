package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

func validGoalForm() model.GoalForm {
	return model.GoalForm{
		Title:       "Run a Marathon",
		Description: "Complete a full marathon",
		Category:    "cardio",
		TargetValue: "42.2",
		Unit:        "km",
		Deadline:    futureDate(90),
	}
}

func TestGoalServiceCreateRejectsShortTitle(t *testing.T) {
	svc := NewGoalService(repository.NewGoalRepository(setupTestDB(t)))

	form := validGoalForm()
	form.Title = "A"

	goal, err := svc.Create(form)
	require.Error(t, err)
	assert.Nil(t, goal)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Goal title must be at least 2 characters.", verrs.Get("title"))

	goals, err := svc.Goals(model.GoalTabAll, "")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalServiceCreateRejectsPaddedTitle(t *testing.T) {
	svc := NewGoalService(repository.NewGoalRepository(setupTestDB(t)))

	for _, title := range []string{"  ", "a ", "\t b\n"} {
		form := validGoalForm()
		form.Title = title

		goal, err := svc.Create(form)
		assert.Nil(t, goal, "title %q", title)

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs), "title %q", title)
		assert.Equal(t, "Goal title must be at least 2 characters.", verrs.Get("title"))
	}

	goals, err := svc.Goals(model.GoalTabAll, "")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalServiceCreateTrimsTitle(t *testing.T) {
	svc := NewGoalService(repository.NewGoalRepository(setupTestDB(t)))

	form := validGoalForm()
	form.Title = "  Run 5k "

	goal, err := svc.Create(form)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", goal.Title)

	stored, err := svc.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", stored.Title)
}

func TestGoalServiceCreateReportsEveryInvalidField(t *testing.T) {
	svc := NewGoalService(repository.NewGoalRepository(setupTestDB(t)))

	_, err := svc.Create(model.GoalForm{Deadline: time.Now().UTC().Format(time.DateOnly)})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select a category.", verrs.Get("category"))
	assert.Equal(t, "Please enter a target value.", verrs.Get("target_value"))
	assert.Equal(t, "Please select a unit.", verrs.Get("unit"))
	assert.Equal(t, "Please select a deadline after today.", verrs.Get("deadline"))
}

func TestGoalServiceCreate(t *testing.T) {
	svc := NewGoalService(repository.NewGoalRepository(setupTestDB(t)))

	goal, err := svc.Create(validGoalForm())
	require.NoError(t, err)

	goals, err := svc.Goals(model.GoalTabAll, "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	got := goals[0]
	assert.Equal(t, goal.ID, got.ID)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, model.GoalStatusActive, got.Status)
	assert.Equal(t, 0, got.Progress)
	assert.Equal(t, 0.0, got.CurrentValue)
	assert.Equal(t, 42.2, got.TargetValue)
	assert.Equal(t, futureDate(90), got.Deadline.UTC().Format(time.DateOnly))
}

func TestGoalServiceGoalsByTab(t *testing.T) {
	repo := repository.NewGoalRepository(setupTestDB(t))
	svc := NewGoalService(repo)
	deadline := time.Now().UTC().AddDate(0, 1, 0)

	createGoal(t, repo, "Bench 100", model.GoalStatusActive, 75, deadline)
	createGoal(t, repo, "Run 5k", model.GoalStatusCompleted, 100, deadline)
	createGoal(t, repo, "Swim 10k", model.GoalStatusExpired, 30, deadline)

	completed, err := svc.Goals(model.GoalTabCompleted, "")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Run 5k", completed[0].Title)

	active, err := svc.Goals("bogus", "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Bench 100", active[0].Title)

	all, err := svc.Goals(model.GoalTabAll, repository.GoalSortTitle)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bench 100", all[0].Title)
}

func TestGoalServiceUpdateProgress(t *testing.T) {
	repo := repository.NewGoalRepository(setupTestDB(t))
	svc := NewGoalService(repo)
	goal := createGoal(t, repo, "Deadlift 100kg", model.GoalStatusActive, 0, time.Now().UTC().AddDate(0, 1, 0))

	updated, err := svc.UpdateProgress(goal.ID, model.GoalProgressForm{CurrentValue: "50"})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, model.GoalStatusActive, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	updated, err = svc.UpdateProgress(goal.ID, model.GoalProgressForm{CurrentValue: "120"})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, model.GoalStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	stored, err := svc.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusCompleted, stored.Status)
	assert.Equal(t, 120.0, stored.CurrentValue)

	_, err = svc.UpdateProgress(goal.ID, model.GoalProgressForm{CurrentValue: "10"})
	assert.ErrorIs(t, err, ErrGoalNotActive)

	_, err = svc.UpdateProgress("missing", model.GoalProgressForm{CurrentValue: "10"})
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestGoalServiceUpdateProgressValidates(t *testing.T) {
	repo := repository.NewGoalRepository(setupTestDB(t))
	svc := NewGoalService(repo)
	goal := createGoal(t, repo, "Deadlift 100kg", model.GoalStatusActive, 0, time.Now().UTC().AddDate(0, 1, 0))

	_, err := svc.UpdateProgress(goal.ID, model.GoalProgressForm{CurrentValue: "-5"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Current value cannot be negative.", verrs.Get("current_value"))
}

func TestGoalServiceExpireOverdue(t *testing.T) {
	repo := repository.NewGoalRepository(setupTestDB(t))
	svc := NewGoalService(repo)

	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	overdue := createGoal(t, repo, "Overdue", model.GoalStatusActive, 40, time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC))
	dueToday := createGoal(t, repo, "Due today", model.GoalStatusActive, 40, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	done := createGoal(t, repo, "Done", model.GoalStatusCompleted, 100, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	n, err := svc.ExpireOverdue(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for id, want := range map[string]string{
		overdue.ID:  model.GoalStatusExpired,
		dueToday.ID: model.GoalStatusActive,
		done.ID:     model.GoalStatusCompleted,
	} {
		g, err := repo.ByID(id)
		require.NoError(t, err)
		assert.Equal(t, want, g.Status, g.Title)
	}
}
