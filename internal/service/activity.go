package service

import (
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

type ActivityService struct {
	repo repository.ActivityRepository
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *ActivityService) Activities(filter model.ActivityFilter) ([]*model.Activity, error) {
	return s.repo.Activities(filter)
}

func (s *ActivityService) Recent(n int) ([]*model.Activity, error) {
	return s.repo.Activities(model.ActivityFilter{Limit: n})
}

// ActiveDays lists the days in [from, to) with at least one activity.
func (s *ActivityService) ActiveDays(from, to time.Time) ([]time.Time, error) {
	return s.repo.ActiveDays(from, to)
}

// Stats summarizes every logged activity.
func (s *ActivityService) Stats() (model.ActivityStats, error) {
	activities, err := s.repo.Activities(model.ActivityFilter{})
	if err != nil {
		return model.ActivityStats{}, err
	}
	return model.ComputeStats(activities), nil
}

type CalendarDay struct {
	Date     time.Time
	InMonth  bool
	Active   bool
	Selected bool
	Today    bool
}

type Calendar struct {
	Month      time.Time
	Weeks      [][]CalendarDay
	Selected   time.Time
	Activities []*model.Activity
}

func (c *Calendar) PrevMonth() time.Time {
	return c.Month.AddDate(0, -1, 0)
}

func (c *Calendar) NextMonth() time.Time {
	return c.Month.AddDate(0, 1, 0)
}

// Calendar builds the month grid containing month (weeks start on Sunday)
// and lists the activities of the selected day.
func (s *ActivityService) Calendar(month, selected time.Time) (*Calendar, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := first.AddDate(0, 1, 0)
	if wd := end.Weekday(); wd != time.Sunday {
		end = end.AddDate(0, 0, 7-int(wd))
	}

	activeDays, err := s.repo.ActiveDays(start, end)
	if err != nil {
		return nil, err
	}
	active := make(map[time.Time]bool, len(activeDays))
	for _, d := range activeDays {
		active[d] = true
	}

	sel := dayOf(selected)
	today := dayOf(s.now())

	cal := &Calendar{Month: first, Selected: sel}
	for day := start; day.Before(end); day = day.AddDate(0, 0, 7) {
		week := make([]CalendarDay, 7)
		for i := range week {
			d := day.AddDate(0, 0, i)
			week[i] = CalendarDay{
				Date:     d,
				InMonth:  d.Month() == first.Month(),
				Active:   active[d],
				Selected: d.Equal(sel),
				Today:    d.Equal(today),
			}
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	cal.Activities, err = s.repo.Activities(model.DayFilter(sel))
	if err != nil {
		return nil, err
	}
	return cal, nil
}

// dayOf truncates t to midnight UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
