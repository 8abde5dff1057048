package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
	"github.com/templui/fittrack/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// listParams reads the tab and sort shown on the goals page, from the query
// string or from the hidden fields of a dialog form.
func listParams(get func(string) string) (tab, sortBy string) {
	tab = get("tab")
	if !model.ValidGoalTab(tab) {
		tab = model.GoalTabActive
	}
	sortBy = repository.GoalSortRecent
	for _, o := range pages.GoalSortOptions {
		if o.Value == get("sort") {
			sortBy = o.Value
		}
	}
	return tab, sortBy
}

func (h *GoalHandler) goalsPage(tab, sortBy string) (pages.GoalsPage, error) {
	goals, err := h.goalService.Goals(tab, sortBy)
	if err != nil {
		return pages.GoalsPage{}, err
	}

	counts, err := h.goalService.CountByStatus()
	if err != nil {
		return pages.GoalsPage{}, err
	}
	all := 0
	for _, n := range counts {
		all += n
	}
	counts[model.GoalTabAll] = all

	return pages.GoalsPage{
		Tab:    tab,
		Sort:   sortBy,
		Goals:  goals,
		Counts: counts,
		Today:  time.Now().UTC(),
	}, nil
}

func (h *GoalHandler) GoalsPage(w http.ResponseWriter, r *http.Request) {
	tab, sortBy := listParams(r.URL.Query().Get)

	data, err := h.goalsPage(tab, sortBy)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "tab", tab, "sort", sortBy)
		http.Error(w, "Failed to load goals", http.StatusInternalServerError)
		return
	}

	// If HTMX request, only render the content portion
	if ui.IsHTMX(r) {
		ui.Render(w, r, pages.GoalsContent(data))
		return
	}

	ui.Render(w, r, pages.Goals(data))
}

func (h *GoalHandler) NewGoalDialog(w http.ResponseWriter, r *http.Request) {
	tab, sortBy := listParams(r.URL.Query().Get)
	ui.Render(w, r, pages.NewGoalDialog(pages.GoalDialog{Tab: tab, Sort: sortBy}))
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, sortBy := listParams(r.FormValue)
	form := model.GoalForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		TargetValue: r.FormValue("target_value"),
		Unit:        r.FormValue("unit"),
		Deadline:    r.FormValue("deadline"),
	}

	goal, err := h.goalService.Create(form)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Retarget(w, "#goal-form", "outerHTML")
			ui.Render(w, r, pages.GoalForm(pages.GoalDialog{
				Tab:    model.GoalTabActive,
				Sort:   sortBy,
				Form:   form,
				Errors: verrs,
			}))
			return
		}

		slog.Error("failed to create goal", "error", err)
		failWithToast(w, r, "Error", "Failed to create goal")
		return
	}

	slog.Info("goal created", "goal_id", goal.ID, "title", goal.Title, "category", goal.Category)

	// New goals are active: switch the list to that tab.
	data, err := h.goalsPage(model.GoalTabActive, sortBy)
	if err != nil {
		slog.Error("failed to get goals", "error", err)
		failWithToast(w, r, "Error", "Goal created, but the list could not be refreshed")
		return
	}

	w.Header().Set("HX-Push-Url", goalsURL(model.GoalTabActive, sortBy))
	ui.Render(w, r, pages.GoalsContent(data))
	closeDialog(w, r)
	successToast(w, r, "Goal created", "Your new fitness goal has been created successfully.")
}

func (h *GoalHandler) ProgressDialog(w http.ResponseWriter, r *http.Request) {
	tab, sortBy := listParams(r.URL.Query().Get)
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			http.Error(w, "Goal not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to get goal", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to load goal", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.GoalProgressDialog(pages.ProgressDialog{
		Tab:  tab,
		Sort: sortBy,
		Goal: goal,
		Form: model.GoalProgressForm{CurrentValue: strconv.FormatFloat(goal.CurrentValue, 'f', -1, 64)},
	}))
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	tab, sortBy := listParams(r.FormValue)
	goalID := r.PathValue("id")
	form := model.GoalProgressForm{CurrentValue: r.FormValue("current_value")}

	goal, err := h.goalService.UpdateProgress(goalID, form)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			existing, lookupErr := h.goalService.ByID(goalID)
			if lookupErr != nil {
				slog.Error("failed to get goal", "error", lookupErr, "goal_id", goalID)
				failWithToast(w, r, "Error", "Failed to update progress")
				return
			}
			ui.Retarget(w, "#progress-form", "outerHTML")
			ui.Render(w, r, pages.GoalProgressForm(pages.ProgressDialog{
				Tab:    tab,
				Sort:   sortBy,
				Goal:   existing,
				Form:   form,
				Errors: verrs,
			}))
		case errors.Is(err, repository.ErrGoalNotFound):
			http.Error(w, "Goal not found", http.StatusNotFound)
		case errors.Is(err, service.ErrGoalNotActive):
			w.Header().Set("HX-Reswap", "none")
			closeDialog(w, r)
			errorToast(w, r, "Goal closed", "Only active goals can be updated.")
		default:
			slog.Error("failed to update goal progress", "error", err, "goal_id", goalID)
			failWithToast(w, r, "Error", "Failed to update progress")
		}
		return
	}

	data, err := h.goalsPage(tab, sortBy)
	if err != nil {
		slog.Error("failed to get goals", "error", err)
		failWithToast(w, r, "Error", "Progress saved, but the list could not be refreshed")
		return
	}

	ui.Render(w, r, pages.GoalsContent(data))
	closeDialog(w, r)
	if goal.Status == model.GoalStatusCompleted {
		successToast(w, r, "Goal completed", "Congratulations, you reached your goal!")
		return
	}
	successToast(w, r, "Progress updated", "Your goal progress has been saved.")
}

func goalsURL(tab, sortBy string) string {
	return "/app/goals?" + url.Values{"tab": {tab}, "sort": {sortBy}}.Encode()
}
