package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

func TestSettingsServiceSaveUnits(t *testing.T) {
	svc := NewSettingsService(nil, nil)

	assert.NoError(t, svc.SaveUnits(model.DefaultUnitsPreferences()))

	prefs := model.DefaultUnitsPreferences()
	prefs.WeightUnit = "stone"
	err := svc.SaveUnits(prefs)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select a weight unit.", verrs.Get("weight_unit"))
}

func TestSettingsServiceSavePrivacy(t *testing.T) {
	svc := NewSettingsService(nil, nil)

	assert.NoError(t, svc.SavePrivacy(model.DefaultPrivacyPreferences()))
	assert.Error(t, svc.SavePrivacy(model.PrivacyPreferences{ProfileVisibility: "everyone"}))
}

func TestSettingsServiceRequestExport(t *testing.T) {
	f := setupExport(t)
	svc := NewSettingsService(f.exports, f.svc)

	export, err := svc.RequestExport(model.DefaultExportRequest())
	require.NoError(t, err)
	assert.Equal(t, model.ExportStatusPending, export.Status)
	assert.Equal(t, "activities,goals,body_metrics", export.Sections)

	require.Eventually(t, func() bool {
		stored, err := f.exports.ByID(export.ID)
		return err == nil && stored.Status == model.ExportStatusReady
	}, 5*time.Second, 10*time.Millisecond)
	svc.Wait()
}

func TestSettingsServiceRequestExportNeedsSection(t *testing.T) {
	svc := NewSettingsService(nil, nil)

	_, err := svc.RequestExport(model.ExportRequest{Format: model.ExportFormatJSON, DateRange: model.DateRangeAll})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Select at least one kind of data to export.", verrs.Get("include_goals"))
}
