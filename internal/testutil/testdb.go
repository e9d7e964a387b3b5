package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/db"
)

// SeedTime is the reference "now" used when seeding test catalogs.
var SeedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededDB is NewTestDB with the landing catalog loaded at SeedTime.
func NewSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	if err := db.Seed(context.Background(), NewTestUoW(database), SeedTime); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
