package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/roadtrip-planner/internal/domain"
	"github.com/pkordes/roadtrip-planner/internal/planner"
)

// planResponse is the POST /api/plan body: the itinerary prose, or — when
// the planner is disabled or the remote call failed — the explanatory
// message. Either way the client renders Itinerary as plain text.
type planResponse struct {
	Itinerary string `json:"itinerary"`
}

// plannerStatusResponse is the GET /api/planner/status body.
type plannerStatusResponse struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

// PlanTrip handles POST /api/plan.
// The submitted profile does not have to be saved first — planning works on
// whatever the user is currently editing. The call blocks until the model
// answers; there is no retry and no timeout.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	if _, ok := username(w, r); !ok {
		return
	}

	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON trip profile"))
		return
	}

	configYAML, err := planner.EncodeDocument(planner.BuildDocument(trip))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	itinerary := s.planner.Plan(r.Context(), configYAML)
	writeJSON(w, http.StatusOK, planResponse{Itinerary: itinerary})
}

// PlannerStatus handles GET /api/planner/status.
// Lets the UI show "planner ready" or the disabled-state message without
// attempting a planning call.
func (s *Server) PlannerStatus(w http.ResponseWriter, r *http.Request) {
	ready, message := s.planner.Ready()
	writeJSON(w, http.StatusOK, plannerStatusResponse{Ready: ready, Message: message})
}
