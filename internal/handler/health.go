package handler

import (
	"net/http"

	"github.com/pkordes/roadtrip-planner/spec"
)

// GetHealth handles GET /api/healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPISpec handles GET /openapi.yaml, serving the API document
// embedded at compile time so spec and running code are always in sync.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(spec.OpenAPI)
}
