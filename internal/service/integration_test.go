package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/roadtrip-planner/internal/domain"
	"github.com/pkordes/roadtrip-planner/internal/service"
	"github.com/pkordes/roadtrip-planner/internal/store"
	"github.com/pkordes/roadtrip-planner/testutil"
)

// These tests run the service against a real file-backed store, so they cover
// the full persistence path: JSON encode/decode, the atomic rename, and the
// reload-before-mutate cycle. The mock-based tests in trip_test.go cover the
// business rules in isolation.

// TestSaveThenReload_SurvivesRestart simulates a process restart by pointing
// a second service at the same backing file.
func TestSaveThenReload_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	fs := testutil.NewFileStore(t)

	first := service.NewTripService(fs)
	saved, err := first.Save(ctx, "tim", validTrip("Beach Week"))
	require.NoError(t, err)
	require.Equal(t, "Beach Week", saved.Name)

	// "Restart": a fresh service over the same file must see the trip.
	second := service.NewTripService(fs)
	got, err := second.Get(ctx, "tim", "Beach Week")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

// TestSave_SuffixingSurvivesRestart verifies collision suffixes are computed
// against what is on disk, not against anything held in memory.
func TestSave_SuffixingSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	fs := testutil.NewFileStore(t)

	first := service.NewTripService(fs)
	_, err := first.Save(ctx, "tim", validTrip("Beach Week"))
	require.NoError(t, err)

	second := service.NewTripService(fs)
	saved, err := second.Save(ctx, "tim", validTrip("Beach Week"))
	require.NoError(t, err)
	assert.Equal(t, "Beach Week (1)", saved.Name)

	trips, err := second.List(ctx, "tim")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Beach Week", trips[0].Name)
	assert.Equal(t, "Beach Week (1)", trips[1].Name)
}

// TestDelete_PersistsAcrossReload starts from a seeded file and verifies a
// delete actually reaches disk.
func TestDelete_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	fs := testutil.SeededFileStore(t, store.State{
		"tim": {
			"Beach Week": validTrip("Beach Week"),
			"Lake Run":   validTrip("Lake Run"),
		},
	})

	svc := service.NewTripService(fs)
	require.NoError(t, svc.Delete(ctx, "tim", "Lake Run"))

	fresh := service.NewTripService(fs)
	trips, err := fresh.List(ctx, "tim")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Beach Week", trips[0].Name)

	_, err = fresh.Get(ctx, "tim", "Lake Run")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSave_OtherUsersUntouched verifies a write for one user round-trips the
// other users' sections of the file unchanged.
func TestSave_OtherUsersUntouched(t *testing.T) {
	ctx := context.Background()
	fs := testutil.SeededFileStore(t, store.State{
		"buddy": {"Desert Loop": validTrip("Desert Loop")},
	})

	svc := service.NewTripService(fs)
	_, err := svc.Save(ctx, "tim", validTrip("Beach Week"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "buddy", "Desert Loop")
	require.NoError(t, err)
	assert.Equal(t, "Desert Loop", got.Name)
}
