package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

type demoData struct {
	Goals      []demoGoal     `yaml:"goals"`
	Activities []demoActivity `yaml:"activities"`
}

type demoGoal struct {
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	Category       string  `yaml:"category"`
	TargetValue    float64 `yaml:"target_value"`
	CurrentValue   float64 `yaml:"current_value"`
	Unit           string  `yaml:"unit"`
	DeadlineInDays int     `yaml:"deadline_in_days"`
	Status         string  `yaml:"status"`
}

type demoActivity struct {
	Type        string   `yaml:"type"`
	Title       string   `yaml:"title"`
	DaysAgo     int      `yaml:"days_ago"`
	At          string   `yaml:"at"`
	DurationMin int      `yaml:"duration_min"`
	DistanceKm  *float64 `yaml:"distance_km"`
	Calories    int      `yaml:"calories"`
	Location    string   `yaml:"location"`
}

func load() (*demoData, error) {
	var data demoData
	err := yaml.Unmarshal(demoYAML, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse demo data: %w", err)
	}
	return &data, nil
}

// Seed inserts the demo goals and activities, dated relative to now. Tables
// that already hold rows are left alone.
func Seed(ctx context.Context, goals repository.GoalRepository, activities repository.ActivityRepository, now time.Time) error {
	data, err := load()
	if err != nil {
		return err
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts, err := goals.CountByStatus()
	if err != nil {
		return fmt.Errorf("failed to count goals: %w", err)
	}
	if counts[model.GoalStatusActive]+counts[model.GoalStatusCompleted]+counts[model.GoalStatusExpired] == 0 {
		for _, g := range data.Goals {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := goals.Create(g.goal(today, now))
			if err != nil {
				return fmt.Errorf("failed to seed goal %q: %w", g.Title, err)
			}
		}
		slog.Info("seeded demo goals", "count", len(data.Goals))
	}

	n, err := activities.Count()
	if err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if n == 0 {
		for _, a := range data.Activities {
			if err := ctx.Err(); err != nil {
				return err
			}
			activity, err := a.activity(today, now)
			if err != nil {
				return err
			}
			err = activities.Create(activity)
			if err != nil {
				return fmt.Errorf("failed to seed activity %q: %w", a.Title, err)
			}
		}
		slog.Info("seeded demo activities", "count", len(data.Activities))
	}

	return nil
}

func (g demoGoal) goal(today, now time.Time) *model.Goal {
	goal := &model.Goal{
		ID:           uuid.New().String(),
		Title:        g.Title,
		Description:  g.Description,
		Category:     g.Category,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Deadline:     today.AddDate(0, 0, g.DeadlineInDays),
		Status:       g.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	goal.Progress = goal.ProgressFor(g.CurrentValue)
	if goal.Status == model.GoalStatusCompleted {
		completed := goal.Deadline.AddDate(0, 0, -7)
		goal.CompletedAt = &completed
	}
	return goal
}

func (a demoActivity) activity(today, now time.Time) (*model.Activity, error) {
	at, err := time.Parse("15:04", a.At)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q for activity %q: %w", a.At, a.Title, err)
	}

	started := today.AddDate(0, 0, -a.DaysAgo).Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute)
	// Entries for later today end right now instead.
	if started.After(now) {
		started = now.Add(-time.Duration(a.DurationMin) * time.Minute)
	}

	return &model.Activity{
		ID:          uuid.New().String(),
		Type:        a.Type,
		Title:       a.Title,
		StartedAt:   started,
		DurationMin: a.DurationMin,
		DistanceKm:  a.DistanceKm,
		Calories:    a.Calories,
		Location:    a.Location,
		CreatedAt:   started,
	}, nil
}
