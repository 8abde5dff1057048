package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	Activities(filter model.ActivityFilter) ([]*model.Activity, error)
	ActiveDays(from, to time.Time) ([]time.Time, error)
	Count() (int, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.Activity) error {
	query := `INSERT INTO activities (id, type, title, started_at, duration_min, distance_km, calories, location, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		activity.ID,
		activity.Type,
		activity.Title,
		activity.StartedAt.UTC(),
		activity.DurationMin,
		activity.DistanceKm,
		activity.Calories,
		activity.Location,
		activity.CreatedAt.UTC(),
	)

	return err
}

// Activities lists activities newest first.
func (r *activityRepository) Activities(filter model.ActivityFilter) ([]*model.Activity, error) {
	activities := []*model.Activity{}

	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		where = append(where, "type = "+arg(filter.Type))
	}
	if !filter.From.IsZero() {
		where = append(where, "started_at >= "+arg(filter.From.UTC()))
	}
	if !filter.To.IsZero() {
		where = append(where, "started_at < "+arg(filter.To.UTC()))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		p := arg("%" + strings.ToLower(q) + "%")
		where = append(where, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(location) LIKE %s OR LOWER(type) LIKE %s)", p, p, p))
	}

	query := `SELECT * FROM activities`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY started_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)
	}

	err := r.db.Select(&activities, query, args...)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// ActiveDays returns the distinct days (midnight UTC) with at least one activity in [from, to).
func (r *activityRepository) ActiveDays(from, to time.Time) ([]time.Time, error) {
	var starts []time.Time
	query := `SELECT started_at FROM activities WHERE started_at >= $1 AND started_at < $2 ORDER BY started_at ASC`

	err := r.db.Select(&starts, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	days := []time.Time{}
	seen := map[time.Time]bool{}
	for _, s := range starts {
		y, m, d := s.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days, nil
}

func (r *activityRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM activities`)
	return count, err
}
