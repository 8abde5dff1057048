package model

import (
	"sort"
	"time"
)

const (
	ActivityRunning       = "running"
	ActivityCycling       = "cycling"
	ActivitySwimming      = "swimming"
	ActivityWeightlifting = "weightlifting"
	ActivityYoga          = "yoga"
	ActivityHIIT          = "hiit"
	ActivityOther         = "other"
)

var ActivityTypes = []string{
	ActivityRunning, ActivityCycling, ActivitySwimming,
	ActivityWeightlifting, ActivityYoga, ActivityHIIT, ActivityOther,
}

// Training categories used by the weekly stats.
const (
	CategoryCardio      = "cardio"
	CategoryStrength    = "strength"
	CategoryFlexibility = "flexibility"
)

var activityIcons = map[string]string{
	ActivityRunning:       "🏃‍♂️",
	ActivityCycling:       "🚴‍♂️",
	ActivitySwimming:      "🏊‍♂️",
	ActivityWeightlifting: "🏋️‍♂️",
	ActivityYoga:          "🧘‍♀️",
	ActivityHIIT:          "⚡",
	ActivityOther:         "💪",
}

type Activity struct {
	ID          string    `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Title       string    `db:"title" json:"title"`
	StartedAt   time.Time `db:"started_at" json:"started_at"`
	DurationMin int       `db:"duration_min" json:"duration_min"`
	DistanceKm  *float64  `db:"distance_km" json:"distance_km,omitempty"`
	Calories    int       `db:"calories" json:"calories"`
	Location    string    `db:"location" json:"location"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (a *Activity) Icon() string {
	if icon, ok := activityIcons[a.Type]; ok {
		return icon
	}
	return activityIcons[ActivityOther]
}

func (a *Activity) EndedAt() time.Time {
	return a.StartedAt.Add(time.Duration(a.DurationMin) * time.Minute)
}

func (a *Activity) Category() string {
	switch a.Type {
	case ActivityRunning, ActivityCycling, ActivitySwimming, ActivityHIIT:
		return CategoryCardio
	case ActivityYoga:
		return CategoryFlexibility
	default:
		return CategoryStrength
	}
}

func ValidActivityType(t string) bool {
	for _, at := range ActivityTypes {
		if at == t {
			return true
		}
	}
	return false
}

// ActivityFilter narrows the activity log. Zero values disable a criterion.
// From is inclusive, To exclusive.
type ActivityFilter struct {
	Type   string
	From   time.Time
	To     time.Time
	Search string
	Limit  int
	Offset int
}

// DayFilter returns a filter covering the calendar day of t (UTC).
func DayFilter(t time.Time) ActivityFilter {
	y, m, d := t.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return ActivityFilter{From: from, To: from.AddDate(0, 0, 1)}
}

type ActivityStats struct {
	TotalActivities int
	Calories        int
	ActiveMinutes   int
	Workouts        int
}

func (s ActivityStats) ActiveHours() float64 {
	return float64(s.ActiveMinutes) / 60
}

// ComputeStats summarizes activities. Workouts counts the non-cardio sessions.
func ComputeStats(activities []*Activity) ActivityStats {
	var stats ActivityStats
	for _, a := range activities {
		stats.TotalActivities++
		stats.Calories += a.Calories
		stats.ActiveMinutes += a.DurationMin
		if a.Category() != CategoryCardio {
			stats.Workouts++
		}
	}
	return stats
}

// Streak counts consecutive active days ending today (or yesterday when
// nothing was logged yet today).
func Streak(activeDays []time.Time, today time.Time) int {
	days := make(map[string]bool, len(activeDays))
	for _, d := range activeDays {
		days[d.Format(time.DateOnly)] = true
	}

	day := today
	if !days[day.Format(time.DateOnly)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format(time.DateOnly)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// SortByStart orders activities newest first.
func SortByStart(activities []*Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartedAt.After(activities[j].StartedAt)
	})
}
