package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/roadtrip-planner/internal/domain"
	"github.com/pkordes/roadtrip-planner/internal/handler"
	"github.com/pkordes/roadtrip-planner/internal/middleware"
)

// mockLoginServicer is a test double for handler.LoginServicer.
type mockLoginServicer struct {
	login      func(username, password string) (string, error)
	issueToken func(username string) (string, error)
}

func (m *mockLoginServicer) Login(username, password string) (string, error) {
	return m.login(username, password)
}
func (m *mockLoginServicer) IssueToken(username string) (string, error) {
	return m.issueToken(username)
}

var _ handler.LoginServicer = (*mockLoginServicer)(nil)

func newLoginHandler(auth handler.LoginServicer) http.Handler {
	srv := handler.NewServer(nil, auth, nil)
	noAuth := middleware.NewAuthHandler(func(string) (string, error) { return "", fmt.Errorf("unused") })
	return srv.Routes(noAuth)
}

func TestLogin_200(t *testing.T) {
	auth := &mockLoginServicer{
		login: func(username, password string) (string, error) {
			require.Equal(t, " Tim ", username)
			require.Equal(t, "hunter2", password)
			return "tim", nil
		},
		issueToken: func(username string) (string, error) {
			require.Equal(t, "tim", username)
			return "issued-token", nil
		},
	}

	body := bytes.NewBufferString(`{"username":" Tim ","password":"hunter2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	rec := httptest.NewRecorder()
	newLoginHandler(auth).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "issued-token", resp["token"])
	// The response carries the canonical username, not what was typed.
	assert.Equal(t, "tim", resp["username"])
}

func TestLogin_401_BadCredentials(t *testing.T) {
	auth := &mockLoginServicer{
		login: func(_, _ string) (string, error) {
			return "", fmt.Errorf("auth.Authenticator.Login: %w", domain.ErrUnauthorized)
		},
	}

	body := bytes.NewBufferString(`{"username":"tim","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	rec := httptest.NewRecorder()
	newLoginHandler(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unauthorized", resp.Error.Code)
}

func TestLogin_400_MalformedBody(t *testing.T) {
	auth := &mockLoginServicer{}

	body := bytes.NewBufferString("not json at all")
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	rec := httptest.NewRecorder()
	newLoginHandler(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
