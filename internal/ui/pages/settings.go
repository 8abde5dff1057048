package pages

import (
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

const (
	SettingsTabUnits        = "units"
	SettingsTabPrivacy      = "privacy"
	SettingsTabExport       = "export"
	SettingsTabSubscription = "subscription"
)

var SettingsTabs = []model.Option{
	{Value: SettingsTabUnits, Label: "Units"},
	{Value: SettingsTabPrivacy, Label: "Privacy"},
	{Value: SettingsTabExport, Label: "Export"},
	{Value: SettingsTabSubscription, Label: "Subscription"},
}

func ValidSettingsTab(tab string) bool {
	for _, t := range SettingsTabs {
		if t.Value == tab {
			return true
		}
	}
	return false
}

type UnitsForm struct {
	Prefs  model.UnitsPreferences
	Errors validation.Errors
}

type PrivacyForm struct {
	Prefs  model.PrivacyPreferences
	Errors validation.Errors
}

type ExportForm struct {
	Request model.ExportRequest
	Errors  validation.Errors
}

type SettingsPage struct {
	Tab     string
	Units   UnitsForm
	Privacy PrivacyForm
	Export  ExportForm
	Plan    model.Plan
}

// NewSettingsPage shows tab with every form at its defaults.
func NewSettingsPage(tab string) SettingsPage {
	return SettingsPage{
		Tab:     tab,
		Units:   UnitsForm{Prefs: model.DefaultUnitsPreferences()},
		Privacy: PrivacyForm{Prefs: model.DefaultPrivacyPreferences()},
		Export:  ExportForm{Request: model.DefaultExportRequest()},
		Plan:    model.FreePlan,
	}
}
