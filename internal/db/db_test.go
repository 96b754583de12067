package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_Memory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// The schema must be in place after open.
	var n int
	err = database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='tasks'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "raimon.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	assert.FileExists(t, path)
}

func TestOpenDB_MemorySurvivesSequentialQueries(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO event_logs (id, user_id, kind, payload, created_at)
		VALUES ('e-1', 'u-1', 'APP_OPEN', '{}', '2026-08-30T09:00:00Z')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM event_logs`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("RAIMON_DB", "/tmp/custom/raimon.db")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/raimon.db", path)
}

func TestDefaultPath_HomeFallback(t *testing.T) {
	t.Setenv("RAIMON_DB", "")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".raimon", "raimon.db")), path)
}
