package pages

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

const (
	AITabWorkout   = "workout"
	AITabNutrition = "nutrition"
	AITabProgress  = "progress"
)

var AITabs = []model.Option{
	{Value: AITabWorkout, Label: "Workout Plan"},
	{Value: AITabNutrition, Label: "Nutrition"},
	{Value: AITabProgress, Label: "Progress Analysis"},
}

func ValidAITab(tab string) bool {
	for _, t := range AITabs {
		if t.Value == tab {
			return true
		}
	}
	return false
}

// PanelState is shared by the three generation panels: an editable form,
// a disabled form polling a pending job, or the job's result.
type PanelState struct {
	Errors validation.Errors
	Job    *model.GenerationJob
}

func (p PanelState) Pending() bool {
	return p.Job != nil && !p.Job.IsReady()
}

func (p PanelState) Ready() bool {
	return p.Job != nil && p.Job.IsReady() && p.Job.Result != nil
}

type WorkoutPanel struct {
	PanelState
	Request model.WorkoutPlanRequest
}

type NutritionPanel struct {
	PanelState
	Request model.NutritionRequest
}

type ProgressPanel struct {
	PanelState
	Request model.ProgressRequest
}

func NewWorkoutPanel(req model.WorkoutPlanRequest, job *model.GenerationJob, errs validation.Errors) WorkoutPanel {
	return WorkoutPanel{PanelState: PanelState{Errors: errs, Job: job}, Request: req}
}

func NewNutritionPanel(req model.NutritionRequest, job *model.GenerationJob, errs validation.Errors) NutritionPanel {
	return NutritionPanel{PanelState: PanelState{Errors: errs, Job: job}, Request: req}
}

func NewProgressPanel(req model.ProgressRequest, job *model.GenerationJob, errs validation.Errors) ProgressPanel {
	return ProgressPanel{PanelState: PanelState{Errors: errs, Job: job}, Request: req}
}

type AIPage struct {
	Tab       string
	Workout   WorkoutPanel
	Nutrition NutritionPanel
	Progress  ProgressPanel
}

func pollURL(job *model.GenerationJob) string {
	return fmt.Sprintf("/app/ai/jobs/%s?kind=%s", job.ID, job.Kind)
}

var barColors = map[string]string{
	"purple":  "bg-purple-500",
	"emerald": "bg-emerald-500",
	"blue":    "bg-blue-500",
	"amber":   "bg-amber-500",
}

func barColor(color string) string {
	if c, ok := barColors[color]; ok {
		return c
	}
	return "bg-gray-400"
}

// JobPanel renders the panel a job belongs to from the request stored on it.
func JobPanel(job *model.GenerationJob) templ.Component {
	switch job.Kind {
	case model.JobKindNutrition:
		req := model.DefaultNutritionRequest()
		if job.Nutrition != nil {
			req = *job.Nutrition
		}
		return NutritionPanelView(NewNutritionPanel(req, job, nil))
	case model.JobKindProgress:
		req := model.DefaultProgressRequest()
		if job.Progress != nil {
			req = *job.Progress
		}
		return ProgressPanelView(NewProgressPanel(req, job, nil))
	default:
		req := model.DefaultWorkoutPlanRequest()
		if job.Workout != nil {
			req = *job.Workout
		}
		return WorkoutPanelView(NewWorkoutPanel(req, job, nil))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
