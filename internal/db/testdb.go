package db

import (
	"database/sql"
	"testing"
)

// NewTestDB opens an in-memory database with the schema applied, for use
// in tests.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	// Each pooled connection would otherwise see its own empty in-memory
	// database.
	database.SetMaxOpenConns(1)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	return database
}
