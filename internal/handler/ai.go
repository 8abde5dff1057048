package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
	"github.com/templui/fittrack/internal/validation"
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

func (h *AIHandler) AIPage(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !pages.ValidAITab(tab) {
		tab = pages.AITabWorkout
	}

	ui.Render(w, r, pages.AI(pages.AIPage{
		Tab:       tab,
		Workout:   pages.NewWorkoutPanel(model.DefaultWorkoutPlanRequest(), nil, nil),
		Nutrition: pages.NewNutritionPanel(model.DefaultNutritionRequest(), nil, nil),
		Progress:  pages.NewProgressPanel(model.DefaultProgressRequest(), nil, nil),
	}))
}

func (h *AIHandler) StartWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	req := parseWorkoutRequest(r)

	job, err := h.aiService.StartWorkoutPlan(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.WorkoutPanelView(pages.NewWorkoutPanel(req, nil, verrs)))
			return
		}
		slog.Error("failed to start workout plan", "error", err)
		failWithToast(w, r, "Error", "Failed to generate your workout plan. Please try again.")
		return
	}

	ui.Render(w, r, pages.WorkoutPanelView(pages.NewWorkoutPanel(req, job, nil)))
}

func (h *AIHandler) StartNutrition(w http.ResponseWriter, r *http.Request) {
	req := parseNutritionRequest(r)

	job, err := h.aiService.StartNutrition(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.NutritionPanelView(pages.NewNutritionPanel(req, nil, verrs)))
			return
		}
		slog.Error("failed to start nutrition plan", "error", err)
		failWithToast(w, r, "Error", "Failed to generate your nutrition plan. Please try again.")
		return
	}

	ui.Render(w, r, pages.NutritionPanelView(pages.NewNutritionPanel(req, job, nil)))
}

func (h *AIHandler) StartProgressAnalysis(w http.ResponseWriter, r *http.Request) {
	req := model.ProgressRequest{Timeframe: r.FormValue("timeframe")}

	job, err := h.aiService.StartProgressAnalysis(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.ProgressPanelView(pages.NewProgressPanel(req, nil, verrs)))
			return
		}
		slog.Error("failed to start progress analysis", "error", err)
		failWithToast(w, r, "Error", "Failed to analyze your progress. Please try again.")
		return
	}

	ui.Render(w, r, pages.ProgressPanelView(pages.NewProgressPanel(req, job, nil)))
}

// Job is polled by a pending panel. It answers with the same pending panel
// (which polls again) until the job is ready, then with the results.
func (h *AIHandler) Job(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	job, err := h.aiService.Job(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			// Expired or unknown: hand the panel back as an empty form.
			h.renderEmptyPanel(w, r, panelForKind(r.URL.Query().Get("kind")))
			errorToast(w, r, "Generation expired", "Please submit the form again.")
			return
		}
		slog.Error("failed to get generation job", "error", err, "job_id", jobID)
		failWithToast(w, r, "Error", "Failed to load your results. Please try again.")
		return
	}

	ui.Render(w, r, pages.JobPanel(job))
}

// NewPanel resets a panel to its empty form ("Create New Plan").
func (h *AIHandler) NewPanel(w http.ResponseWriter, r *http.Request) {
	panel := r.PathValue("panel")
	if !pages.ValidAITab(panel) {
		http.NotFound(w, r)
		return
	}
	h.renderEmptyPanel(w, r, panel)
}

// TooManyRequests answers rate limited generation requests with a toast and
// leaves the form untouched.
func (h *AIHandler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	failWithToast(w, r, "Slow down", "You're generating plans too quickly. Please wait a moment.")
}

func (h *AIHandler) renderEmptyPanel(w http.ResponseWriter, r *http.Request, panel string) {
	switch panel {
	case pages.AITabNutrition:
		ui.Render(w, r, pages.NutritionPanelView(pages.NewNutritionPanel(model.DefaultNutritionRequest(), nil, nil)))
	case pages.AITabProgress:
		ui.Render(w, r, pages.ProgressPanelView(pages.NewProgressPanel(model.DefaultProgressRequest(), nil, nil)))
	default:
		ui.Render(w, r, pages.WorkoutPanelView(pages.NewWorkoutPanel(model.DefaultWorkoutPlanRequest(), nil, nil)))
	}
}

func panelForKind(kind string) string {
	switch kind {
	case model.JobKindNutrition:
		return pages.AITabNutrition
	case model.JobKindProgress:
		return pages.AITabProgress
	default:
		return pages.AITabWorkout
	}
}

func parseWorkoutRequest(r *http.Request) model.WorkoutPlanRequest {
	_ = r.ParseForm()
	return model.WorkoutPlanRequest{
		Goal:            r.FormValue("goal"),
		FitnessLevel:    r.FormValue("fitness_level"),
		WorkoutsPerWeek: formInt(r, "workouts_per_week"),
		TimePerWorkout:  formInt(r, "time_per_workout"),
		Equipment:       r.PostForm["equipment"],
		FocusAreas:      r.PostForm["focus_areas"],
	}
}

func parseNutritionRequest(r *http.Request) model.NutritionRequest {
	_ = r.ParseForm()
	return model.NutritionRequest{
		Goal:                r.FormValue("goal"),
		Weight:              formFloat(r, "weight"),
		Height:              formFloat(r, "height"),
		Age:                 formInt(r, "age"),
		Gender:              r.FormValue("gender"),
		ActivityLevel:       r.FormValue("activity_level"),
		DietaryRestrictions: r.PostForm["dietary_restrictions"],
	}
}

// formInt returns 0 for missing or malformed values; range rules reject them.
func formInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	return n
}

func formFloat(r *http.Request, key string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue(key)), 64)
	return f
}
