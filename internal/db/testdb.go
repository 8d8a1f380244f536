package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// NewTestDB creates a throwaway SQLite database for a test, with the schema
// applied. A file in t.TempDir is used rather than :memory: so tests run
// under the same WAL configuration as a real deployment.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(filepath.Join(t.TempDir(), "test.sqlite3"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("creating test database schema: %v", err)
	}

	return conn
}
