// Package store contains the durable persistence layer for trip profiles.
// All state lives in a single JSON file mapping username → trip name → trip.
// No business logic lives here — only file I/O and the pure helpers that
// slice per-user views out of the whole-state map.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkordes/roadtrip-planner/internal/domain"
)

// State is the whole persisted structure: every user's trips, keyed by the
// canonical (lower-cased) username, then by trip name.
type State = map[string]map[string]domain.Trip

// TripStore defines the persistence operations for the trip collection.
// The service layer depends on this interface, not the file-backed
// implementation, which allows it to be unit-tested with a mock.
type TripStore interface {
	// LoadAll reads the full state from durable storage. A missing file or
	// any decode failure yields an empty state — it never returns an error.
	// Every mutating operation calls this first; no in-memory copy is
	// trusted across operations.
	LoadAll() State

	// SaveAll replaces the durable state with the given one in a single
	// whole-file write. An I/O failure is returned to the caller; the
	// previous file contents survive intact (the write is temp+rename).
	SaveAll(state State) error
}

// FileStore is the JSON-file implementation of TripStore.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore persisting to the given file path.
// The file does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll reads and decodes the state file. Fails open: any read or decode
// problem is treated as "no saved trips yet".
func (s *FileStore) LoadAll() State {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return State{}
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}
	}
	if state == nil {
		state = State{}
	}
	return state
}

// SaveAll writes the full state as indented JSON. The write goes to a temp
// file in the same directory followed by a rename, so a crash mid-write never
// leaves a truncated state file behind.
func (s *FileStore) SaveAll(state State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("store.FileStore.SaveAll: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store.FileStore.SaveAll: temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store.FileStore.SaveAll: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store.FileStore.SaveAll: close: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store.FileStore.SaveAll: rename: %w", err)
	}
	return nil
}

// UserTrips returns the trips belonging to one user, or an empty map when the
// user has none. Usernames are fully isolated namespaces — a user can never
// see another user's map.
func UserTrips(username string, state State) map[string]domain.Trip {
	if trips, ok := state[username]; ok && trips != nil {
		return trips
	}
	return map[string]domain.Trip{}
}

// SetUserTrips replaces one user's trip map inside the whole state and
// returns the updated state value.
func SetUserTrips(username string, userTrips map[string]domain.Trip, state State) State {
	state[username] = userTrips
	return state
}
