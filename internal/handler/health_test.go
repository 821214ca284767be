package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/roadtrip-planner/internal/handler"
	"github.com/pkordes/roadtrip-planner/internal/middleware"
)

func newBareHandler() http.Handler {
	srv := handler.NewServer(nil, nil, nil)
	noAuth := middleware.NewAuthHandler(func(string) (string, error) { return "", fmt.Errorf("unused") })
	return srv.Routes(noAuth)
}

// TestGetHealth_200 verifies the health endpoint needs no authentication and
// reports ok.
func TestGetHealth_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	newBareHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

// TestGetOpenAPISpec_200 verifies the embedded API document is served
// publicly as YAML.
func TestGetOpenAPISpec_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	newBareHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi:")
	assert.Contains(t, rec.Body.String(), "/api/trips")
}
