// Package testutil provides shared test helpers for setting up
// temporary ledger databases.
package testutil

import (
	"path/filepath"
	"testing"

	"tally/internal/storage"
)

// TestRepo creates a repository backed by a temporary SQLite file that
// is removed when the test finishes.
func TestRepo(t *testing.T) *storage.Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally-test.db")
	repo, err := storage.NewRepository(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}
