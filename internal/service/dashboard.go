package service

import (
	"math"
	"time"

	"github.com/templui/fittrack/internal/model"
)

const (
	dashboardRecentActivities = 5
	dashboardGoals            = 4
)

type Dashboard struct {
	TotalActivities   int
	MonthOverMonthPct int
	ActiveGoals       int
	NearCompletion    int
	CaloriesThisMonth int
	Streak            int
	Week              []WeekdaySummary
	Goals             []*model.Goal
	Recent            []*model.Activity
	WeeklyStats       []CategoryHours
	Tips              []*Note
}

type WeekdaySummary struct {
	Label    string
	Calories int
	Minutes  int
}

type CategoryHours struct {
	Category string
	Hours    float64
	Percent  int
}

func (d *Dashboard) WeekMax() int {
	m := 0
	for _, day := range d.Week {
		m = max(m, day.Calories)
	}
	return m
}

func (d *Dashboard) WeeklyHours() float64 {
	total := 0.0
	for _, c := range d.WeeklyStats {
		total += c.Hours
	}
	return total
}

type DashboardService struct {
	activities *ActivityService
	goals      *GoalService
	content    *ContentService
	now        func() time.Time
}

func NewDashboardService(activities *ActivityService, goals *GoalService, content *ContentService) *DashboardService {
	return &DashboardService{
		activities: activities,
		goals:      goals,
		content:    content,
		now:        time.Now,
	}
}

func (s *DashboardService) Dashboard() (*Dashboard, error) {
	now := s.now().UTC()
	today := dayOf(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -mondayOffset(today))

	all, err := s.activities.Activities(model.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalActivities: len(all),
		Tips:            s.content.Tips(),
	}

	thisMonth, lastMonth := 0, 0
	for _, a := range all {
		switch {
		case !a.StartedAt.Before(monthStart):
			thisMonth++
			d.CaloriesThisMonth += a.Calories
		case !a.StartedAt.Before(monthStart.AddDate(0, -1, 0)):
			lastMonth++
		}
	}
	if lastMonth > 0 {
		d.MonthOverMonthPct = int(math.Round(float64(thisMonth-lastMonth) / float64(lastMonth) * 100))
	}

	activeDays, err := s.activities.ActiveDays(today.AddDate(-1, 0, 0), today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	d.Streak = model.Streak(activeDays, today)

	week, err := s.activities.Activities(model.ActivityFilter{From: weekStart, To: weekStart.AddDate(0, 0, 7)})
	if err != nil {
		return nil, err
	}
	d.Week = weekOverview(week, weekStart)
	d.WeeklyStats = weeklyStats(week)

	goals, err := s.goals.Goals(model.GoalTabActive, "progress")
	if err != nil {
		return nil, err
	}
	d.ActiveGoals = len(goals)
	for _, g := range goals {
		if g.NearCompletion() {
			d.NearCompletion++
		}
	}
	d.Goals = goals[:min(len(goals), dashboardGoals)]

	if len(all) > dashboardRecentActivities {
		d.Recent = all[:dashboardRecentActivities]
	} else {
		d.Recent = all
	}

	return d, nil
}

// mondayOffset is the number of days since the last Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func weekOverview(activities []*model.Activity, weekStart time.Time) []WeekdaySummary {
	days := make([]WeekdaySummary, 7)
	for i := range days {
		days[i].Label = weekStart.AddDate(0, 0, i).Format("Mon")
	}
	for _, a := range activities {
		i := int(dayOf(a.StartedAt).Sub(weekStart).Hours() / 24)
		if i < 0 || i >= len(days) {
			continue
		}
		days[i].Calories += a.Calories
		days[i].Minutes += a.DurationMin
	}
	return days
}

func weeklyStats(activities []*model.Activity) []CategoryHours {
	minutes := map[string]int{}
	total := 0
	for _, a := range activities {
		minutes[a.Category()] += a.DurationMin
		total += a.DurationMin
	}

	stats := []CategoryHours{}
	for _, c := range []string{model.CategoryCardio, model.CategoryStrength, model.CategoryFlexibility} {
		h := CategoryHours{Category: c, Hours: float64(minutes[c]) / 60}
		if total > 0 {
			h.Percent = int(math.Round(float64(minutes[c]) / float64(total) * 100))
		}
		stats = append(stats, h)
	}
	return stats
}
