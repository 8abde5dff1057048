package pages

import (
	"net/url"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

var GoalTabs = []model.Option{
	{Value: model.GoalTabActive, Label: "Active"},
	{Value: model.GoalTabCompleted, Label: "Completed"},
	{Value: model.GoalTabAll, Label: "All"},
}

var GoalSortOptions = []model.Option{
	{Value: repository.GoalSortRecent, Label: "Recently added"},
	{Value: repository.GoalSortDeadline, Label: "Deadline"},
	{Value: repository.GoalSortProgress, Label: "Progress"},
	{Value: repository.GoalSortTitle, Label: "Title"},
}

type GoalsPage struct {
	Tab    string
	Sort   string
	Goals  []*model.Goal
	Counts map[string]int
	Today  time.Time
}

func (p GoalsPage) TabURL(tab string) string {
	return "/app/goals?" + url.Values{"tab": {tab}, "sort": {p.Sort}}.Encode()
}

func (p GoalsPage) NewDialogURL() string {
	return "/app/goals/new-dialog?" + url.Values{"tab": {p.Tab}, "sort": {p.Sort}}.Encode()
}

type GoalDialog struct {
	Tab     string
	Sort    string
	Form    model.GoalForm
	Errors  validation.Errors
	MinDate string
}

// minDate is the earliest deadline the date picker offers: tomorrow.
func (d GoalDialog) minDate() string {
	if d.MinDate != "" {
		return d.MinDate
	}
	return validation.Today().AddDate(0, 0, 1).Format(time.DateOnly)
}

type ProgressDialog struct {
	Tab    string
	Sort   string
	Goal   *model.Goal
	Form   model.GoalProgressForm
	Errors validation.Errors
}

func goalBarClass(g *model.Goal) string {
	if g.Status == model.GoalStatusExpired {
		return "h-2 rounded-full bg-red-400"
	}
	return "h-2 rounded-full bg-emerald-500"
}
