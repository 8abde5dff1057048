package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalURLPrefix is where the server exposes locally stored files.
const LocalURLPrefix = "/exports/"

// LocalStorage keeps files in a directory on disk. Used in development and
// single-node deployments; files are served by the app under LocalURLPrefix.
type LocalStorage struct {
	root      string
	urlPrefix string
}

func NewLocalStorage(root, urlPrefix string) (*LocalStorage, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{root: root, urlPrefix: urlPrefix}, nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, file io.Reader) error {
	full, err := s.resolve(name)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(full), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, file)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), full)
}

func (s *LocalStorage) Delete(_ context.Context, name string) error {
	full, err := s.resolve(name)
	if err != nil {
		return err
	}

	err = os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(_ context.Context, name string) (string, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s.urlPrefix, "/") + "/" + clean, nil
}

// Open returns the stored file for serving.
func (s *LocalStorage) Open(name string) (*os.File, error) {
	full, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (s *LocalStorage) resolve(name string) (string, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// cleanPath rejects absolute paths and anything escaping the storage root.
func cleanPath(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return "", ErrInvalidPath
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return clean, nil
}
