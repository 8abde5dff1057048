package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/templui/fittrack/internal/config"
)

var ErrInvalidPath = errors.New("invalid storage path")

// Storage defines the interface for export file storage
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, file io.Reader) error

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// URL returns a download URL for the file
	URL(ctx context.Context, path string) (string, error)
}

// New creates the storage backend selected by STORAGE_DRIVER.
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case cfg.StorageDriverS3:
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Endpoint:      c.S3Endpoint,
			PresignExpiry: c.S3PresignExpiry,
		})
	case cfg.StorageDriverLocal, "":
		slog.Info("initializing local storage", "path", c.StorageLocalPath)
		return NewLocalStorage(c.StorageLocalPath, LocalURLPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
