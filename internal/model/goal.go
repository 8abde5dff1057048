package model

import (
	"math"
	"time"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusExpired   = "expired"
)

// Goal tabs on the goals page. GoalTabAll shows every status.
const (
	GoalTabActive    = GoalStatusActive
	GoalTabCompleted = GoalStatusCompleted
	GoalTabAll       = "all"
)

// NearCompletionProgress is the progress from which a goal counts as "near completion".
const NearCompletionProgress = 80

var GoalCategories = []string{"cardio", "strength", "weight", "flexibility", "endurance", "other"}

var GoalUnits = []string{"kg", "lbs", "km", "miles", "reps", "sessions", "days"}

type Goal struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description,omitempty"`
	Category     string     `db:"category" json:"category"`
	TargetValue  float64    `db:"target_value" json:"target_value"`
	CurrentValue float64    `db:"current_value" json:"current_value"`
	Unit         string     `db:"unit" json:"unit"`
	Deadline     time.Time  `db:"deadline" json:"deadline"`
	Progress     int        `db:"progress" json:"progress"`
	Status       string     `db:"status" json:"status"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ProgressFor returns the percentage reached with current, clamped to [0,100].
func (g *Goal) ProgressFor(current float64) int {
	if g.TargetValue <= 0 {
		return 0
	}
	p := math.Round(current / g.TargetValue * 100)
	if math.IsNaN(p) {
		return 0
	}
	return int(max(0, min(100, p)))
}

func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

func (g *Goal) NearCompletion() bool {
	return g.IsActive() && g.Progress >= NearCompletionProgress
}

// DaysLeft is the number of whole days until the deadline, negative once it passed.
func (g *Goal) DaysLeft(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

// FilterGoals returns the goals shown under a tab. Empty or "all" returns every goal.
func FilterGoals(goals []*Goal, status string) []*Goal {
	if status == "" || status == GoalTabAll {
		return goals
	}
	filtered := make([]*Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status == status {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func ValidGoalTab(tab string) bool {
	switch tab {
	case GoalTabActive, GoalTabCompleted, GoalTabAll:
		return true
	}
	return false
}

// GoalForm is the submitted "create goal" form.
type GoalForm struct {
	Title       string `form:"title" validate:"min=2" msg:"Goal title must be at least 2 characters."`
	Description string `form:"description" validate:"max=500" msg:"Description must be at most 500 characters."`
	Category    string `form:"category" validate:"required,oneof=cardio strength weight flexibility endurance other" msg:"Please select a category."`
	TargetValue string `form:"target_value" validate:"required,numeric,finite,positive" msg:"Please enter a target value." msg_numeric:"Target value must be a number." msg_finite:"Target value is too large." msg_positive:"Target value must be greater than zero."`
	Unit        string `form:"unit" validate:"required,oneof=kg lbs km miles reps sessions days" msg:"Please select a unit."`
	Deadline    string `form:"deadline" validate:"required,future" msg:"Please select a deadline." msg_future:"Please select a deadline after today."`
}

// GoalProgressForm is the submitted "update progress" form.
type GoalProgressForm struct {
	CurrentValue string `form:"current_value" validate:"required,numeric,finite,nonnegative" msg:"Please enter your current value." msg_numeric:"Current value must be a number." msg_finite:"Current value is too large." msg_nonnegative:"Current value cannot be negative."`
}
