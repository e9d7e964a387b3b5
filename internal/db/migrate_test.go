package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRaw(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openRaw(t)
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	database := openRaw(t)

	tables := []string{
		"assessments", "study_stats", "subject_progress",
		"activities", "recommendations", "recommendation_tags", "study_plan",
	}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	database := openRaw(t)

	for _, idx := range []string{"idx_assessments_order", "idx_activities_occurred"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'index' AND name = ?`, idx,
		).Scan(&name)
		assert.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsScoreOnIncompleteAssessment(t *testing.T) {
	database := openRaw(t)

	_, err := database.Exec(`INSERT INTO assessments
		(id, title, type, difficulty, item_count, score, completed, created_at)
		VALUES ('a', 'A', 'essay', 'advanced', 3, 80, 0, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_MemoryIsSingleConnection(t *testing.T) {
	database := openRaw(t)
	assert.Equal(t, 1, database.Stats().MaxOpenConnections)
}
