// Package service contains the business logic for the road-trip planner.
// Services validate inputs, enforce naming rules, and orchestrate store
// calls. No file I/O lives here — services depend on the store interface,
// not the implementation.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkordes/roadtrip-planner/internal/domain"
	"github.com/pkordes/roadtrip-planner/internal/store"
)

// TripService implements business logic for trip profile operations.
//
// Every mutating operation reloads the full state from the store before
// touching it, so a stale in-memory copy can never clobber another session's
// saves within this process. The mutex serialises read-modify-write cycles
// between goroutines; across processes the last writer still wins, which is
// an accepted limitation of the single-file design.
type TripService struct {
	store store.TripStore
	mu    sync.Mutex
}

// NewTripService constructs a TripService backed by the provided TripStore.
func NewTripService(s store.TripStore) *TripService {
	return &TripService{store: s}
}

// List returns the user's saved trips sorted by name.
func (s *TripService) List(ctx context.Context, username string) ([]domain.Trip, error) {
	trips := store.UserTrips(username, s.store.LoadAll())

	names := make([]string, 0, len(trips))
	for name := range trips {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.Trip, 0, len(names))
	for _, name := range names {
		out = append(out, trips[name])
	}
	return out, nil
}

// Get returns a single saved trip by name.
// Returns domain.ErrNotFound when the user has no trip with that name.
func (s *TripService) Get(ctx context.Context, username, name string) (domain.Trip, error) {
	trips := store.UserTrips(username, s.store.LoadAll())

	trip, ok := trips[name]
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// Save persists a trip profile under a collision-safe name and returns the
// stored record, whose Name field carries the final resolved name.
//
// Save never overwrites: saving a name that already exists produces a new
// entry with a " (n)" suffix. The state is reloaded from disk immediately
// before the write so concurrent saves from this process are not lost.
func (s *TripService) Save(ctx context.Context, username string, trip domain.Trip) (domain.Trip, error) {
	name := strings.TrimSpace(trip.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w: trip name is required", domain.ErrValidation)
	}
	if name == domain.ReservedNewTripName {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w: %q is a reserved name", domain.ErrValidation, domain.ReservedNewTripName)
	}
	trip.Name = name

	if err := normalizeTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.LoadAll()
	userTrips := store.UserTrips(username, state)

	existing := make(map[string]bool, len(userTrips))
	for n := range userTrips {
		existing[n] = true
	}
	trip.Name = UniqueName(name, existing)

	userTrips[trip.Name] = trip
	state = store.SetUserTrips(username, userTrips, state)

	if err := s.store.SaveAll(state); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	return trip, nil
}

// Delete removes a saved trip by name.
// A name the user does not have yields domain.ErrNotFound and the stored
// state is left completely untouched — nothing is written.
func (s *TripService) Delete(ctx context.Context, username, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.store.LoadAll()
	userTrips := store.UserTrips(username, state)

	if _, ok := userTrips[name]; !ok {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrNotFound)
	}

	delete(userTrips, name)
	state = store.SetUserTrips(username, userTrips, state)

	if err := s.store.SaveAll(state); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// normalizeTrip coerces a submitted profile into its canonical stored shape:
// zero budgets become nil ("unset", never zero), empty optional POI strings
// become nil, unknown discovery tags are dropped, and every POI must carry a
// non-empty label.
func normalizeTrip(trip *domain.Trip) error {
	trip.OverallBudget = dropZero(trip.OverallBudget)
	trip.LodgingBudget = dropZero(trip.LodgingBudget)
	trip.FoodBudget = dropZero(trip.FoodBudget)

	kept := trip.DiscoveryCategories[:0]
	for _, c := range trip.DiscoveryCategories {
		if c.Valid() {
			kept = append(kept, c)
		}
	}
	trip.DiscoveryCategories = kept
	if trip.DiscoveryCategories == nil {
		trip.DiscoveryCategories = []domain.DiscoveryCategory{}
	}

	if trip.PointsOfInterest == nil {
		trip.PointsOfInterest = []domain.PointOfInterest{}
	}
	for i := range trip.PointsOfInterest {
		poi := &trip.PointsOfInterest[i]
		poi.Label = strings.TrimSpace(poi.Label)
		if poi.Label == "" {
			return fmt.Errorf("%w: every point of interest needs a label (stop %d)", domain.ErrValidation, i+1)
		}
		if poi.Kind == "" {
			poi.Kind = domain.POICityOrRegion
		}
		if poi.Priority == "" {
			poi.Priority = domain.PriorityNiceToHave
		}
		poi.LocationHint = dropEmpty(poi.LocationHint)
		poi.Category = dropEmpty(poi.Category)
		poi.Details = dropEmpty(poi.Details)
		poi.MaxDetourHours = dropZero(poi.MaxDetourHours)
		poi.MinTimeOnSiteHours = dropZero(poi.MinTimeOnSiteHours)
	}
	return nil
}

// dropZero maps both nil and a pointed-to zero to nil.
func dropZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// dropEmpty maps both nil and a pointed-to blank string to nil.
func dropEmpty(v *string) *string {
	if v == nil {
		return nil
	}
	if trimmed := strings.TrimSpace(*v); trimmed == "" {
		return nil
	}
	return v
}
