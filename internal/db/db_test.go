package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDir(t *testing.T) {
	assert.Equal(t, "data", sqliteDir("sqlite", "./data/fittrack.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/tmp/x", sqliteDir("sqlite", "file:/tmp/x/app.db?cache=shared"))
	assert.Equal(t, "", sqliteDir("sqlite", ":memory:"))
	assert.Equal(t, "", sqliteDir("sqlite", "file:test?mode=memory&cache=shared"))
	assert.Equal(t, "", sqliteDir("pgx", "postgres://localhost/fittrack"))
}

func TestMigrationsUpAndDown(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "nested", "test.db")

	database, err := Init("sqlite", conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	for _, table := range []string{"goals", "activities", "exports"} {
		var count int
		err := database.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, table)
	}

	require.NoError(t, MigrateDown(database.DB, "sqlite"))

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'exports'`))
	assert.Equal(t, 0, count)
}
