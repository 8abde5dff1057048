package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
	"github.com/templui/fittrack/internal/validation"
)

const activitiesPerPage = 10

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) ActivitiesPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	data := pages.ActivitiesPage{
		View:  pages.ActivityViewList,
		Types: model.ActivityTypes,
		Query: strings.TrimSpace(q.Get("q")),
		Page:  1,
	}
	if q.Get("view") == pages.ActivityViewCalendar {
		data.View = pages.ActivityViewCalendar
	}
	if t := q.Get("type"); model.ValidActivityType(t) {
		data.Type = t
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
		data.Page = page
	}

	var err error
	if data.View == pages.ActivityViewCalendar {
		selected := time.Now().UTC()
		if day, perr := validation.ParseDate(q.Get("date")); perr == nil {
			selected = day
		}
		data.Calendar, err = h.activityService.Calendar(selected, selected)
	} else {
		err = h.loadPage(&data)
	}
	if err != nil {
		slog.Error("failed to load activities", "error", err, "view", data.View)
		http.Error(w, "Failed to load activities", http.StatusInternalServerError)
		return
	}

	if ui.IsHTMX(r) {
		switch ui.HXTarget(r) {
		case "activity-list":
			ui.Render(w, r, pages.ActivityList(data))
			return
		case "activities-content":
			ui.Render(w, r, pages.ActivitiesContent(data))
			return
		}
	}

	data.Stats, err = h.activityService.Stats()
	if err != nil {
		slog.Error("failed to compute activity stats", "error", err)
		http.Error(w, "Failed to load activities", http.StatusInternalServerError)
		return
	}
	ui.Render(w, r, pages.Activities(data))
}

// loadPage fetches one page of the filtered list, plus one row to tell
// whether another page follows.
func (h *ActivityHandler) loadPage(data *pages.ActivitiesPage) error {
	activities, err := h.activityService.Activities(model.ActivityFilter{
		Type:   data.Type,
		Search: data.Query,
		Limit:  activitiesPerPage + 1,
		Offset: (data.Page - 1) * activitiesPerPage,
	})
	if err != nil {
		return err
	}

	if len(activities) > activitiesPerPage {
		data.HasMore = true
		activities = activities[:activitiesPerPage]
	}
	data.Activities = activities
	return nil
}
