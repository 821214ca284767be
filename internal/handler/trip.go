package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/roadtrip-planner/internal/domain"
	"github.com/pkordes/roadtrip-planner/internal/middleware"
)

// username pulls the authenticated user out of the request context.
// Routes reaching trip handlers are always wrapped by the auth middleware,
// so a missing username means broken wiring, answered with 401 regardless.
func username(w http.ResponseWriter, r *http.Request) (string, bool) {
	u, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, unauthorizedBody())
	}
	return u, ok
}

// ListTrips handles GET /api/trips.
// Returns the user's saved trips sorted by name. The reserved "<New Trip>"
// sentinel can never appear here — it is rejected at save time.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	user, ok := username(w, r)
	if !ok {
		return
	}

	trips, err := s.trips.List(r.Context(), user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

// TripTemplate handles GET /api/trips/template.
// Returns the default profile a client should present for "<New Trip>".
func (s *Server) TripTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.NewTrip())
}

// GetTrip handles GET /api/trips/{name}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := username(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.Get(r.Context(), user, chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// CreateTrip handles POST /api/trips.
// The saved record comes back with its final name — which gains a " (n)"
// suffix when the submitted name is already taken.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := username(w, r)
	if !ok {
		return
	}

	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON trip profile"))
		return
	}

	saved, err := s.trips.Save(r.Context(), user, trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// DeleteTrip handles DELETE /api/trips/{name}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := username(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), user, chi.URLParam(r, "name")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
