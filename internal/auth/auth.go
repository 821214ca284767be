// Package auth implements login against the statically configured credential
// map and the JWT session tokens handed out after a successful login.
// There is no user database: the set of users is fixed at process start.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/roadtrip-planner/internal/domain"
)

// Claims is the JWT payload for a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator checks credentials and issues/verifies session tokens.
type Authenticator struct {
	users  map[string]string // canonical username -> password
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator builds an Authenticator from the configured credential
// map. Usernames are canonicalised (trimmed, lower-cased) at construction so
// login matching is case-insensitive; passwords are trimmed but otherwise
// compared exactly.
func NewAuthenticator(users map[string]string, secret []byte, ttl time.Duration) *Authenticator {
	canonical := make(map[string]string, len(users))
	for name, password := range users {
		canonical[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(password)
	}
	return &Authenticator{users: canonical, secret: secret, ttl: ttl}
}

// Login checks a username/password pair and returns the canonical username.
// Returns domain.ErrUnauthorized for any unknown user or wrong password —
// the two cases are deliberately indistinguishable to the caller.
func (a *Authenticator) Login(username, password string) (string, error) {
	uname := strings.ToLower(strings.TrimSpace(username))
	pwd := strings.TrimSpace(password)

	stored, ok := a.users[uname]
	if !ok || stored != pwd {
		return "", fmt.Errorf("auth.Authenticator.Login: %w", domain.ErrUnauthorized)
	}
	return uname, nil
}

// IssueToken creates a signed session token for the given canonical username.
func (a *Authenticator) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Authenticator.IssueToken: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns the username it carries.
// Returns domain.ErrUnauthorized for anything that is not a live token
// signed by this server.
func (a *Authenticator) VerifyToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return "", fmt.Errorf("auth.Authenticator.VerifyToken: %w", domain.ErrUnauthorized)
	}
	return claims.Username, nil
}
