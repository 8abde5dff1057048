package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/templui/fittrack/internal/metrics"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/storage"
)

var ErrExportFormat = errors.New("unsupported export format")

// Section names recorded on an export.
const (
	ExportSectionActivities  = "activities"
	ExportSectionGoals       = "goals"
	ExportSectionBodyMetrics = "body_metrics"
)

// ExportService writes the user's data to storage and emails a download link.
type ExportService struct {
	exports    repository.ExportRepository
	activities repository.ActivityRepository
	goals      repository.GoalRepository
	storage    storage.Storage
	email      *EmailService
	appURL     string
	ownerName  string
	ownerEmail string
	now        func() time.Time
}

func NewExportService(
	exports repository.ExportRepository,
	activities repository.ActivityRepository,
	goals repository.GoalRepository,
	store storage.Storage,
	email *EmailService,
	appURL, ownerName, ownerEmail string,
) *ExportService {
	return &ExportService{
		exports:    exports,
		activities: activities,
		goals:      goals,
		storage:    store,
		email:      email,
		appURL:     appURL,
		ownerName:  ownerName,
		ownerEmail: ownerEmail,
		now:        time.Now,
	}
}

func (s *ExportService) ByID(exportID string) (*model.Export, error) {
	return s.exports.ByID(exportID)
}

// Run builds the export document, stores it and notifies the owner. The
// export record ends up ready or failed.
func (s *ExportService) Run(ctx context.Context, export *model.Export, req model.ExportRequest) error {
	err := s.run(ctx, export, req)
	if err == nil {
		metrics.TrackExport(export.Format, model.ExportStatusReady)
		return nil
	}

	metrics.TrackExport(export.Format, model.ExportStatusFailed)
	markErr := s.exports.MarkFailed(export.ID, err.Error(), s.now())
	if markErr != nil {
		slog.Error("failed to mark export failed", "error", markErr, "export_id", export.ID)
	}
	emailErr := s.email.SendExportFailedEmail(ctx, s.ownerEmail, s.ownerName)
	if emailErr != nil {
		slog.Error("failed to send export failed email", "error", emailErr, "export_id", export.ID)
	}
	return err
}

func (s *ExportService) run(ctx context.Context, export *model.Export, req model.ExportRequest) error {
	data, err := s.Build(req)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("%s/%s.%s", s.now().UTC().Format("2006/01"), export.ID, req.Format)
	err = s.storage.Save(ctx, path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to store export: %w", err)
	}

	err = s.exports.MarkReady(export.ID, path, s.now())
	if err != nil {
		return fmt.Errorf("failed to mark export ready: %w", err)
	}

	url, err := s.storage.URL(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to build download url: %w", err)
	}
	if strings.HasPrefix(url, "/") {
		url = strings.TrimSuffix(s.appURL, "/") + url
	}

	err = s.email.SendExportReadyEmail(ctx, s.ownerEmail, s.ownerName, url, req.Format)
	if err != nil {
		// The file is stored; a lost email is not an export failure.
		slog.Error("failed to send export ready email", "error", err, "export_id", export.ID)
	}

	slog.Info("data export ready", "export_id", export.ID, "format", req.Format, "path", path, "bytes", len(data))
	return nil
}

// ExportDocument is the JSON export layout. A requested section is an empty
// list rather than nil, so it stays in the output when it has no records.
type ExportDocument struct {
	ExportedAt  time.Time         `json:"exported_at"`
	DateRange   string            `json:"date_range"`
	Activities  []*model.Activity `json:"activities,omitzero"`
	Goals       []*model.Goal     `json:"goals,omitzero"`
	BodyMetrics *BodyMetrics      `json:"body_metrics,omitempty"`
}

type BodyMetrics struct {
	Labels []string       `json:"labels"`
	Series []model.Series `json:"series"`
}

func (s *ExportService) document(req model.ExportRequest) (*ExportDocument, error) {
	now := s.now()
	since := req.Since(now)

	doc := &ExportDocument{ExportedAt: now.UTC(), DateRange: req.DateRange}

	if req.IncludeActivities {
		activities, err := s.activities.Activities(model.ActivityFilter{From: since})
		if err != nil {
			return nil, fmt.Errorf("failed to load activities: %w", err)
		}
		doc.Activities = append([]*model.Activity{}, activities...)
	}

	if req.IncludeGoals {
		goals, err := s.goals.Goals(model.GoalTabAll, "recent")
		if err != nil {
			return nil, fmt.Errorf("failed to load goals: %w", err)
		}
		doc.Goals = []*model.Goal{}
		for _, g := range goals {
			if since.IsZero() || !g.CreatedAt.Before(since) {
				doc.Goals = append(doc.Goals, g)
			}
		}
	}

	if req.IncludeBodyMetrics {
		doc.BodyMetrics = &BodyMetrics{Labels: BodyMetricLabels, Series: BodyMetricSeries()}
	}

	return doc, nil
}

// Build renders the export in the requested format.
func (s *ExportService) Build(req model.ExportRequest) ([]byte, error) {
	doc, err := s.document(req)
	if err != nil {
		return nil, err
	}

	switch req.Format {
	case model.ExportFormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case model.ExportFormatCSV:
		return exportCSV(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrExportFormat, req.Format)
	}
}

// exportCSV writes one block per section: a "# name" marker row, a header
// row and the records, separated by an empty line.
func exportCSV(doc *ExportDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	section := func(name string, header []string, rows [][]string) {
		w.Flush()
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		w.Write([]string{"# " + name})
		w.Write(header)
		w.WriteAll(rows)
	}

	if doc.Activities != nil {
		rows := make([][]string, 0, len(doc.Activities))
		for _, a := range doc.Activities {
			distance := ""
			if a.DistanceKm != nil {
				distance = strconv.FormatFloat(*a.DistanceKm, 'f', -1, 64)
			}
			rows = append(rows, []string{
				a.ID, a.Type, a.Title, a.StartedAt.UTC().Format(time.RFC3339),
				strconv.Itoa(a.DurationMin), distance, strconv.Itoa(a.Calories), a.Location,
			})
		}
		section(ExportSectionActivities,
			[]string{"id", "type", "title", "started_at", "duration_min", "distance_km", "calories", "location"},
			rows)
	}

	if doc.Goals != nil {
		rows := make([][]string, 0, len(doc.Goals))
		for _, g := range doc.Goals {
			rows = append(rows, []string{
				g.ID, g.Title, g.Category,
				strconv.FormatFloat(g.CurrentValue, 'f', -1, 64),
				strconv.FormatFloat(g.TargetValue, 'f', -1, 64),
				g.Unit, g.Deadline.UTC().Format(time.DateOnly), strconv.Itoa(g.Progress), g.Status,
			})
		}
		section(ExportSectionGoals,
			[]string{"id", "title", "category", "current_value", "target_value", "unit", "deadline", "progress", "status"},
			rows)
	}

	if doc.BodyMetrics != nil {
		header := append([]string{"month"}, seriesNames(doc.BodyMetrics.Series)...)
		rows := make([][]string, 0, len(doc.BodyMetrics.Labels))
		for i, label := range doc.BodyMetrics.Labels {
			row := []string{label}
			for _, series := range doc.BodyMetrics.Series {
				row = append(row, strconv.FormatFloat(series.Values[i], 'f', -1, 64))
			}
			rows = append(rows, row)
		}
		section(ExportSectionBodyMetrics, header, rows)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func seriesNames(series []model.Series) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}

// Sections lists the sections an export request includes.
func Sections(req model.ExportRequest) []string {
	sections := []string{}
	if req.IncludeActivities {
		sections = append(sections, ExportSectionActivities)
	}
	if req.IncludeGoals {
		sections = append(sections, ExportSectionGoals)
	}
	if req.IncludeBodyMetrics {
		sections = append(sections, ExportSectionBodyMetrics)
	}
	return sections
}
