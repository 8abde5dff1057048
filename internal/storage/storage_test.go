package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/config"
)

func TestLocalStorageSaveURLDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	s, err := NewLocalStorage(root, LocalURLPrefix)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "2025/05/export.csv", strings.NewReader("id,type\n1,running\n")))

	data, err := os.ReadFile(filepath.Join(root, "2025", "05", "export.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,type\n1,running\n", string(data))

	url, err := s.URL(ctx, "2025/05/export.csv")
	require.NoError(t, err)
	assert.Equal(t, "/exports/2025/05/export.csv", url)

	f, err := s.Open("2025/05/export.csv")
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Contains(t, string(body), "running")

	require.NoError(t, s.Delete(ctx, "2025/05/export.csv"))
	require.NoError(t, s.Delete(ctx, "2025/05/export.csv"), "deleting twice is fine")
	_, err = os.Stat(filepath.Join(root, "2025", "05", "export.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), LocalURLPrefix)
	require.NoError(t, err)

	for _, name := range []string{"", "/etc/passwd", "../secret", "a/../../b", `..\win`} {
		err := s.Save(context.Background(), name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidPath, name)
	}
}

func TestNewSelectsDriver(t *testing.T) {
	s, err := New(&config.Config{StorageDriver: config.StorageDriverLocal, StorageLocalPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(&config.Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", contentType("a.csv"))
	assert.Equal(t, "application/json", contentType("a.json"))
	assert.Equal(t, "application/octet-stream", contentType("a.unknownext"))
}
