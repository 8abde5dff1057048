package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

var ErrExportNotFound = errors.New("export not found")

type ExportRepository interface {
	Create(export *model.Export) error
	ByID(exportID string) (*model.Export, error)
	MarkReady(exportID, storagePath string, at time.Time) error
	MarkFailed(exportID, reason string, at time.Time) error
}

type exportRepository struct {
	db *sqlx.DB
}

func NewExportRepository(db *sqlx.DB) ExportRepository {
	return &exportRepository{db: db}
}

func (r *exportRepository) Create(export *model.Export) error {
	query := `INSERT INTO exports (id, format, date_range, sections, status, storage_path, error, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		export.ID,
		export.Format,
		export.DateRange,
		export.Sections,
		export.Status,
		export.StoragePath,
		export.Error,
		export.CreatedAt.UTC(),
	)
	return err
}

func (r *exportRepository) ByID(exportID string) (*model.Export, error) {
	export := &model.Export{}

	err := r.db.Get(export, `SELECT * FROM exports WHERE id = $1`, exportID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExportNotFound
	}
	if err != nil {
		return nil, err
	}

	return export, nil
}

func (r *exportRepository) MarkReady(exportID, storagePath string, at time.Time) error {
	return r.finish(`UPDATE exports SET status = $1, storage_path = $2, completed_at = $3 WHERE id = $4`,
		model.ExportStatusReady, storagePath, at.UTC(), exportID)
}

func (r *exportRepository) MarkFailed(exportID, reason string, at time.Time) error {
	return r.finish(`UPDATE exports SET status = $1, error = $2, completed_at = $3 WHERE id = $4`,
		model.ExportStatusFailed, reason, at.UTC(), exportID)
}

func (r *exportRepository) finish(query string, args ...any) error {
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExportNotFound
	}

	return nil
}
