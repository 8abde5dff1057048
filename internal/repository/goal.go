package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

const (
	GoalSortRecent   = "recent"
	GoalSortDeadline = "deadline"
	GoalSortProgress = "progress"
	GoalSortTitle    = "title"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	Goals(status, sortBy string) ([]*model.Goal, error)
	CountByStatus() (map[string]int, error)
	Update(goal *model.Goal) error
	ExpireOverdue(now time.Time) (int64, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, title, description, category, target_value, current_value, unit,
	                             deadline, progress, status, completed_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Unit,
		goal.Deadline.UTC(),
		goal.Progress,
		goal.Status,
		utcPtr(goal.CompletedAt),
		goal.CreatedAt.UTC(),
		goal.UpdatedAt.UTC(),
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Goals lists goals with the given status; "" or "all" lists every goal.
func (r *goalRepository) Goals(status, sortBy string) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	var orderBy string
	switch sortBy {
	case GoalSortDeadline:
		orderBy = "ORDER BY deadline ASC, LOWER(title) ASC"
	case GoalSortProgress:
		orderBy = "ORDER BY progress DESC, updated_at DESC"
	case GoalSortTitle:
		orderBy = "ORDER BY LOWER(title) ASC"
	default: // GoalSortRecent or empty
		orderBy = "ORDER BY created_at DESC"
	}

	var err error
	if status == "" || status == model.GoalTabAll {
		err = r.db.Select(&goals, `SELECT * FROM goals `+orderBy)
	} else {
		err = r.db.Select(&goals, `SELECT * FROM goals WHERE status = $1 `+orderBy, status)
	}
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountByStatus() (map[string]int, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}

	err := r.db.Select(&rows, `SELECT status, COUNT(*) AS count FROM goals GROUP BY status`)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{
		model.GoalStatusActive:    0,
		model.GoalStatusCompleted: 0,
		model.GoalStatusExpired:   0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, category = $3, target_value = $4, current_value = $5,
	              unit = $6, deadline = $7, progress = $8, status = $9, completed_at = $10, updated_at = $11
	          WHERE id = $12`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Unit,
		goal.Deadline.UTC(),
		goal.Progress,
		goal.Status,
		utcPtr(goal.CompletedAt),
		time.Now().UTC(),
		goal.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// ExpireOverdue marks active goals whose deadline is before now as expired.
func (r *goalRepository) ExpireOverdue(now time.Time) (int64, error) {
	query := `UPDATE goals SET status = $1, updated_at = $2 WHERE status = $3 AND deadline < $4`

	now = now.UTC()
	result, err := r.db.Exec(query, model.GoalStatusExpired, now, model.GoalStatusActive, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
