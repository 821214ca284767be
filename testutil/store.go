// Package testutil provides shared helpers for tests that need a real
// file-backed trip store. Everything here writes only under t.TempDir, so
// tests never touch the working directory and clean up automatically.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/roadtrip-planner/internal/store"
)

// NewFileStore creates a FileStore persisting to a fresh temp-directory path.
// The backing file does not exist until the first SaveAll.
func NewFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "saved_trips.json"))
}

// SeededFileStore creates a FileStore whose backing file already holds the
// given state, for tests that start from saved trips.
func SeededFileStore(t *testing.T, state store.State) *store.FileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "saved_trips.json")
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		t.Fatalf("testutil.SeededFileStore: encode: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("testutil.SeededFileStore: write: %v", err)
	}
	return store.NewFileStore(path)
}
