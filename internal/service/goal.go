package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fittrack/internal/metrics"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

var ErrGoalNotActive = errors.New("goal is not active")

type GoalService struct {
	repo repository.GoalRepository
	now  func() time.Time
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
		now:  time.Now,
	}
}

// Create validates form and stores a new active goal. Invalid forms return
// validation.Errors and store nothing.
func (s *GoalService) Create(form model.GoalForm) (*model.Goal, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	if errs := validation.Struct(form); errs != nil {
		return nil, errs
	}

	target, err := strconv.ParseFloat(strings.TrimSpace(form.TargetValue), 64)
	if err != nil {
		return nil, validation.Errors{"target_value": "Target value must be a number."}
	}
	deadline, err := validation.ParseDate(form.Deadline)
	if err != nil {
		return nil, validation.Errors{"deadline": "Please select a deadline."}
	}

	now := s.now()
	goal := &model.Goal{
		ID:           uuid.New().String(),
		Title:        form.Title,
		Description:  form.Description,
		Category:     form.Category,
		TargetValue:  target,
		CurrentValue: 0,
		Unit:         form.Unit,
		Deadline:     deadline,
		Progress:     0,
		Status:       model.GoalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	metrics.TrackGoalOperation("create")
	return goal, nil
}

func (s *GoalService) ByID(goalID string) (*model.Goal, error) {
	return s.repo.ByID(goalID)
}

// Goals lists the goals shown under tab. Unknown tabs fall back to active.
func (s *GoalService) Goals(tab, sortBy string) ([]*model.Goal, error) {
	if !model.ValidGoalTab(tab) {
		tab = model.GoalTabActive
	}

	goals, err := s.repo.Goals(model.GoalTabAll, sortBy)
	if err != nil {
		return nil, err
	}
	return model.FilterGoals(goals, tab), nil
}

func (s *GoalService) CountByStatus() (map[string]int, error) {
	return s.repo.CountByStatus()
}

// UpdateProgress records a new current value for an active goal. Reaching
// the target completes the goal.
func (s *GoalService) UpdateProgress(goalID string, form model.GoalProgressForm) (*model.Goal, error) {
	if errs := validation.Struct(form); errs != nil {
		return nil, errs
	}

	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}
	if !goal.IsActive() {
		return nil, ErrGoalNotActive
	}

	current, err := strconv.ParseFloat(strings.TrimSpace(form.CurrentValue), 64)
	if err != nil {
		return nil, validation.Errors{"current_value": "Current value must be a number."}
	}

	now := s.now()
	goal.CurrentValue = current
	goal.Progress = goal.ProgressFor(current)
	goal.UpdatedAt = now
	if goal.Progress >= 100 {
		goal.Status = model.GoalStatusCompleted
		goal.CompletedAt = &now
	}

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	metrics.TrackGoalOperation("progress")
	if goal.Status == model.GoalStatusCompleted {
		metrics.TrackGoalOperation("complete")
		slog.Info("goal completed", "goal_id", goal.ID, "title", goal.Title)
	}
	return goal, nil
}

// ExpireOverdue expires active goals whose deadline day is before the day of now.
func (s *GoalService) ExpireOverdue(now time.Time) (int64, error) {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	n, err := s.repo.ExpireOverdue(today)
	if err != nil {
		return 0, fmt.Errorf("failed to expire goals: %w", err)
	}
	if n > 0 {
		metrics.TrackGoalOperations("expire", int(n))
		slog.Info("expired overdue goals", "count", n)
	}
	return n, nil
}

// StartExpiryLoop expires overdue goals now and then every interval until ctx is done.
func (s *GoalService) StartExpiryLoop(ctx context.Context, interval time.Duration) {
	go func() {
		_, err := s.ExpireOverdue(s.now())
		if err != nil {
			slog.Error("goal expiry failed", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, err := s.ExpireOverdue(s.now())
				if err != nil {
					slog.Error("goal expiry failed", "error", err)
				}
			}
		}
	}()
}
