package handler

import (
	"encoding/json"
	"net/http"
)

// loginRequest is the POST /api/login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is returned on a successful login. Username carries the
// canonical (lower-cased, trimmed) form, which is also the storage key for
// the user's trips.
type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login handles POST /api/login.
// Credentials are checked against the static map; on success the client gets
// a session token to send as "Authorization: Bearer <token>".
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("request body must be JSON with username and password"))
		return
	}

	username, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, unauthorizedBody())
		return
	}

	token, err := s.auth.IssueToken(username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: username})
}
