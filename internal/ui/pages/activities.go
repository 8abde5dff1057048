package pages

import (
	"net/url"
	"strconv"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
)

const (
	ActivityViewList     = "list"
	ActivityViewCalendar = "calendar"
)

type ActivitiesPage struct {
	View       string
	Stats      model.ActivityStats
	Types      []string
	Type       string
	Query      string
	Activities []*model.Activity
	Page       int
	HasMore    bool
	Calendar   *service.Calendar
}

func (p ActivitiesPage) listURL(page int) string {
	v := url.Values{"view": {ActivityViewList}}
	if p.Type != "" {
		v.Set("type", p.Type)
	}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return "/app/activities?" + v.Encode()
}

func (p ActivitiesPage) PrevPageURL() string {
	return p.listURL(p.Page - 1)
}

func (p ActivitiesPage) NextPageURL() string {
	return p.listURL(p.Page + 1)
}

// DayURL selects day on the calendar view.
func (p ActivitiesPage) DayURL(day time.Time) string {
	return "/app/activities?" + url.Values{
		"view": {ActivityViewCalendar},
		"date": {day.Format(time.DateOnly)},
	}.Encode()
}

// MonthURL shows month on the calendar, selecting its first day.
func (p ActivitiesPage) MonthURL(month time.Time) string {
	return p.DayURL(time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC))
}

var weekdayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func calendarDayClass(d service.CalendarDay) string {
	class := "relative flex h-10 items-center justify-center rounded-md"
	switch {
	case d.Selected:
		class += " bg-emerald-600 text-white"
	case d.Today:
		class += " bg-emerald-50 font-semibold"
	default:
		class += " hover:bg-gray-100"
	}
	if !d.InMonth {
		class += " text-gray-300"
	}
	return class
}
