// Package handler implements the HTTP handlers for the road-trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (auth.go, trip.go, plan.go, health.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/roadtrip-planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	List(ctx context.Context, username string) ([]domain.Trip, error)
	Get(ctx context.Context, username, name string) (domain.Trip, error)
	Save(ctx context.Context, username string, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, username, name string) error
}

// LoginServicer defines the credential and session operations the login
// handler depends on. Satisfied by auth.Authenticator.
type LoginServicer interface {
	Login(username, password string) (string, error)
	IssueToken(username string) (string, error)
}

// PlannerClient defines the itinerary-planning operations the plan handlers
// depend on. Plan returns prose, never an error — planner failures arrive as
// descriptive text the UI renders as-is.
type PlannerClient interface {
	Ready() (bool, string)
	Plan(ctx context.Context, configYAML string) string
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Routes.
type Server struct {
	trips   TripServicer
	auth    LoginServicer
	planner PlannerClient
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, auth LoginServicer, planner PlannerClient) *Server {
	return &Server{trips: trips, auth: auth, planner: planner}
}

// Routes builds the API routing table. requireAuth wraps every route that
// needs a logged-in user; login, health, and the spec stay public.
func (s *Server) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/api/healthz", s.GetHealth)
	r.Post("/api/login", s.Login)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/trips", s.ListTrips)
		r.Post("/api/trips", s.CreateTrip)
		r.Get("/api/trips/template", s.TripTemplate)
		r.Get("/api/trips/{name}", s.GetTrip)
		r.Delete("/api/trips/{name}", s.DeleteTrip)

		r.Post("/api/plan", s.PlanTrip)
		r.Get("/api/planner/status", s.PlannerStatus)
	})

	return r
}
