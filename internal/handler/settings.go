package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/ui/pages"
	"github.com/templui/fittrack/internal/validation"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !pages.ValidSettingsTab(tab) {
		tab = pages.SettingsTabUnits
	}
	ui.Render(w, r, pages.Settings(pages.NewSettingsPage(tab)))
}

func (h *SettingsHandler) SaveUnits(w http.ResponseWriter, r *http.Request) {
	prefs := model.UnitsPreferences{
		WeightUnit:      r.FormValue("weight_unit"),
		HeightUnit:      r.FormValue("height_unit"),
		DistanceUnit:    r.FormValue("distance_unit"),
		TemperatureUnit: r.FormValue("temperature_unit"),
	}

	err := h.settingsService.SaveUnits(prefs)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.UnitsFormView(pages.UnitsForm{Prefs: prefs, Errors: verrs}))
			return
		}
		slog.Error("failed to save units", "error", err)
		failWithToast(w, r, "Error", "Failed to update your units. Please try again.")
		return
	}

	ui.Render(w, r, pages.UnitsFormView(pages.UnitsForm{Prefs: prefs}))
	successToast(w, r, "Units updated", "Your measurement units have been updated successfully.")
}

func (h *SettingsHandler) SavePrivacy(w http.ResponseWriter, r *http.Request) {
	prefs := model.PrivacyPreferences{
		ProfileVisibility:   r.FormValue("profile_visibility"),
		ActivitySharing:     formBool(r, "activity_sharing"),
		GoalSharing:         formBool(r, "goal_sharing"),
		AllowDataCollection: formBool(r, "allow_data_collection"),
	}

	err := h.settingsService.SavePrivacy(prefs)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.PrivacyFormView(pages.PrivacyForm{Prefs: prefs, Errors: verrs}))
			return
		}
		slog.Error("failed to save privacy settings", "error", err)
		failWithToast(w, r, "Error", "Failed to update your privacy settings. Please try again.")
		return
	}

	ui.Render(w, r, pages.PrivacyFormView(pages.PrivacyForm{Prefs: prefs}))
	successToast(w, r, "Privacy settings updated", "Your privacy settings have been updated successfully.")
}

func (h *SettingsHandler) RequestExport(w http.ResponseWriter, r *http.Request) {
	req := model.ExportRequest{
		Format:             r.FormValue("format"),
		DateRange:          r.FormValue("date_range"),
		IncludeActivities:  formBool(r, "include_activities"),
		IncludeGoals:       formBool(r, "include_goals"),
		IncludeBodyMetrics: formBool(r, "include_body_metrics"),
	}

	_, err := h.settingsService.RequestExport(req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			ui.Render(w, r, pages.ExportFormView(pages.ExportForm{Request: req, Errors: verrs}))
			return
		}
		slog.Error("failed to request export", "error", err)
		failWithToast(w, r, "Error", "Failed to start your data export. Please try again.")
		return
	}

	ui.Render(w, r, pages.ExportFormView(pages.ExportForm{Request: req}))
	successToast(w, r, "Data export initiated", "Your data export has been initiated. You will receive an email when it's ready.")
}

// formBool reads a checkbox. Unchecked boxes are not submitted at all.
func formBool(r *http.Request, key string) bool {
	return r.FormValue(key) == "true"
}
