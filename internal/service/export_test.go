package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/storage"
)

type exportFixture struct {
	svc      *ExportService
	exports  repository.ExportRepository
	storeDir string
}

func setupExport(t *testing.T) *exportFixture {
	t.Helper()

	database := setupTestDB(t)
	activityRepo := repository.NewActivityRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	exportRepo := repository.NewExportRepository(database)

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, storage.LocalURLPrefix)
	require.NoError(t, err)

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	createActivity(t, activityRepo, model.ActivityRunning, now.AddDate(0, 0, -3), 30, 320)
	createActivity(t, activityRepo, model.ActivityYoga, now.AddDate(0, -2, 0), 60, 180)
	createGoal(t, goalRepo, "Bench 100", model.GoalStatusActive, 60, now.AddDate(0, 1, 0))

	email := NewEmailService("", "noreply@example.com", "http://localhost:8090", "FitTrack", true)
	svc := NewExportService(exportRepo, activityRepo, goalRepo, store, email, "http://localhost:8090", "Alex", "alex@example.com")
	svc.now = func() time.Time { return now }

	return &exportFixture{svc: svc, exports: exportRepo, storeDir: dir}
}

func TestExportServiceBuildCSV(t *testing.T) {
	f := setupExport(t)

	data, err := f.svc.Build(model.ExportRequest{
		Format:             model.ExportFormatCSV,
		DateRange:          model.DateRangeLastMonth,
		IncludeActivities:  true,
		IncludeBodyMetrics: true,
	})
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"# activities"}, records[0])
	assert.Equal(t, "started_at", records[1][3])
	// Only the run falls inside the last month.
	assert.Equal(t, model.ActivityRunning, records[2][1])
	assert.Equal(t, []string{"# body_metrics"}, records[3])
	assert.Equal(t, []string{"month", "Weight (kg)", "Muscle Mass (kg)", "Body Fat (%)"}, records[4])
	assert.Equal(t, []string{"Jan", "75", "32", "18"}, records[5])
	assert.NotContains(t, string(data), "# goals")
}

func TestExportServiceBuildJSON(t *testing.T) {
	f := setupExport(t)

	data, err := f.svc.Build(model.ExportRequest{
		Format:            model.ExportFormatJSON,
		DateRange:         model.DateRangeCustom,
		IncludeActivities: true,
		IncludeGoals:      true,
	})
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Activities, 2)
	require.Len(t, doc.Goals, 1)
	assert.Equal(t, "Bench 100", doc.Goals[0].Title)
	assert.Nil(t, doc.BodyMetrics)
}

func TestExportServiceBuildUnknownFormat(t *testing.T) {
	f := setupExport(t)

	_, err := f.svc.Build(model.ExportRequest{Format: "pdf", IncludeGoals: true})
	assert.ErrorIs(t, err, ErrExportFormat)
}

func TestExportServiceRun(t *testing.T) {
	f := setupExport(t)
	req := model.DefaultExportRequest()

	export := &model.Export{
		ID:        "exp-1",
		Format:    req.Format,
		DateRange: req.DateRange,
		Status:    model.ExportStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.exports.Create(export))

	require.NoError(t, f.svc.Run(context.Background(), export, req))

	stored, err := f.exports.ByID("exp-1")
	require.NoError(t, err)
	assert.Equal(t, model.ExportStatusReady, stored.Status)
	assert.Equal(t, "2026/06/exp-1.csv", stored.StoragePath)
	require.NotNil(t, stored.CompletedAt)

	data, err := os.ReadFile(filepath.Join(f.storeDir, "2026", "06", "exp-1.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# goals")
}

func TestExportServiceRunFailure(t *testing.T) {
	f := setupExport(t)

	export := &model.Export{ID: "exp-2", Format: "pdf", DateRange: "all", Status: model.ExportStatusPending, CreatedAt: time.Now().UTC()}
	require.NoError(t, f.exports.Create(export))

	err := f.svc.Run(context.Background(), export, model.ExportRequest{Format: "pdf", IncludeGoals: true})
	require.ErrorIs(t, err, ErrExportFormat)

	stored, err := f.exports.ByID("exp-2")
	require.NoError(t, err)
	assert.Equal(t, model.ExportStatusFailed, stored.Status)
	assert.Contains(t, stored.Error, "unsupported export format")
}

func TestExportServiceBuildKeepsEmptyRequestedSections(t *testing.T) {
	database := setupTestDB(t)
	store, err := storage.NewLocalStorage(t.TempDir(), storage.LocalURLPrefix)
	require.NoError(t, err)
	email := NewEmailService("", "noreply@example.com", "http://localhost:8090", "FitTrack", true)
	svc := NewExportService(repository.NewExportRepository(database), repository.NewActivityRepository(database),
		repository.NewGoalRepository(database), store, email, "http://localhost:8090", "Alex", "alex@example.com")

	req := model.ExportRequest{
		Format:            model.ExportFormatJSON,
		DateRange:         model.DateRangeAll,
		IncludeActivities: true,
		IncludeGoals:      true,
	}

	data, err := svc.Build(req)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `[]`, string(raw["activities"]))
	assert.JSONEq(t, `[]`, string(raw["goals"]))
	assert.NotContains(t, raw, "body_metrics")

	req.Format = model.ExportFormatCSV
	data, err = svc.Build(req)
	require.NoError(t, err)

	assert.Contains(t, string(data), "# activities")
	assert.Contains(t, string(data), "# goals\nid,title,category,current_value,target_value,unit,deadline,progress,status\n")
}
