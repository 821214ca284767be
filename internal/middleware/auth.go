package middleware

import (
	"context"
	"net/http"
	"strings"
)

// usernameKey is the context key under which the authenticated username is
// stored. Unexported so only this package can write it.
type usernameKey struct{}

// TokenVerifier validates a session token and returns the username it
// belongs to. Satisfied by auth.Authenticator.VerifyToken.
type TokenVerifier func(token string) (string, error)

// NewAuthHandler returns a middleware that requires a valid
// "Authorization: Bearer <token>" header on every request it wraps.
// On success the canonical username is placed in the request context for
// handlers to read via UsernameFromContext; otherwise the request stops
// here with 401.
func NewAuthHandler(verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing or malformed Authorization header", http.StatusUnauthorized)
				return
			}

			username, err := verify(token)
			if err != nil {
				http.Error(w, "invalid or expired session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the authenticated username placed in the
// context by NewAuthHandler, or false when the request never passed through
// the auth middleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	return username, ok
}
