// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Opens a throwaway SQLite store in a temp directory.
package storage

import (
	"path/filepath"
	"testing"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "glucolog.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }
