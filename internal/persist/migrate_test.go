package persist

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateStore_NoneBackend(t *testing.T) {
	err := MigrateStore(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func tableExists(t *testing.T, dbPath, table string) bool {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestMigrateStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migration.db")

	// Run migration to latest version (should go to version 1)
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
	for _, table := range allTables {
		assert.True(t, tableExists(t, dbPath, table), "table %s", table)
	}

	// Run migration again (should be a no-op)
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	// Run migration to a specific version (version 1)
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 1))

	// Rollback to version 0
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 0))
	for _, table := range allTables {
		assert.False(t, tableExists(t, dbPath, table), "table %s", table)
	}

	// Migrate back up to version 1
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 1))
}

func TestMigrateStore_AdoptsExistingTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "existing.db")
	store, err := NewProfileStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.SaveOnboarding(samplePlan("Camille", onboardedAt, schema.Preferences{}))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	store, err = NewProfileStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	profiles, err := store.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestMigrateStore_SQLiteInMemory(t *testing.T) {
	require.NoError(t, MigrateStore(schema.SQLiteBackend, ":memory:", -1))
}

func TestWithMultiStatements(t *testing.T) {
	dsn, err := withMultiStatements("user:pass@tcp(localhost:3306)/nutriplan")
	require.NoError(t, err)
	assert.Contains(t, dsn, "multiStatements=true")
	assert.Contains(t, dsn, "tcp(localhost:3306)/nutriplan")

	_, err = withMultiStatements("not a dsn")
	assert.Error(t, err)
}
