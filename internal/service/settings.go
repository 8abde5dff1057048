package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

// exportTimeout bounds a background export run.
const exportTimeout = 5 * time.Minute

// SettingsService handles the settings forms. Units and privacy preferences
// are validated and logged, never stored.
type SettingsService struct {
	exports   repository.ExportRepository
	exportSvc *ExportService
	now       func() time.Time
	wg        sync.WaitGroup
}

func NewSettingsService(exports repository.ExportRepository, exportSvc *ExportService) *SettingsService {
	return &SettingsService{
		exports:   exports,
		exportSvc: exportSvc,
		now:       time.Now,
	}
}

func (s *SettingsService) SaveUnits(prefs model.UnitsPreferences) error {
	if errs := validation.Struct(prefs); errs != nil {
		return errs
	}

	slog.Info("units preferences submitted",
		"weight_unit", prefs.WeightUnit,
		"height_unit", prefs.HeightUnit,
		"distance_unit", prefs.DistanceUnit,
		"temperature_unit", prefs.TemperatureUnit,
	)
	return nil
}

func (s *SettingsService) SavePrivacy(prefs model.PrivacyPreferences) error {
	if errs := validation.Struct(prefs); errs != nil {
		return errs
	}

	slog.Info("privacy preferences submitted",
		"profile_visibility", prefs.ProfileVisibility,
		"activity_sharing", prefs.ActivitySharing,
		"goal_sharing", prefs.GoalSharing,
		"allow_data_collection", prefs.AllowDataCollection,
	)
	return nil
}

// RequestExport validates req, records a pending export and builds it in
// the background.
func (s *SettingsService) RequestExport(req model.ExportRequest) (*model.Export, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	export := &model.Export{
		ID:        uuid.New().String(),
		Format:    req.Format,
		DateRange: req.DateRange,
		Sections:  strings.Join(Sections(req), ","),
		Status:    model.ExportStatusPending,
		CreatedAt: s.now(),
	}

	err := s.exports.Create(export)
	if err != nil {
		return nil, fmt.Errorf("failed to create export: %w", err)
	}

	slog.Info("data export requested",
		"export_id", export.ID,
		"format", req.Format,
		"date_range", req.DateRange,
		"sections", export.Sections,
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		err := s.exportSvc.Run(ctx, export, req)
		if err != nil {
			slog.Error("data export failed", "error", err, "export_id", export.ID)
		}
	}()

	return export, nil
}

// Wait blocks until background exports have finished.
func (s *SettingsService) Wait() {
	s.wg.Wait()
}
