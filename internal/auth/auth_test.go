package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/roadtrip-planner/internal/auth"
	"github.com/pkordes/roadtrip-planner/internal/domain"
)

func newAuth() *auth.Authenticator {
	return auth.NewAuthenticator(
		map[string]string{"Tim": "hunter2", "buddy": "pass word"},
		[]byte("test-secret"),
		time.Hour,
	)
}

// ---- Login -----------------------------------------------------------------

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	a := newAuth()

	for _, uname := range []string{"tim", "TIM", " Tim "} {
		got, err := a.Login(uname, "hunter2")
		require.NoError(t, err, "username %q", uname)
		// The canonical form is always lower-cased and trimmed.
		assert.Equal(t, "tim", got)
	}
}

func TestLogin_CaseSensitivePassword(t *testing.T) {
	a := newAuth()

	_, err := a.Login("tim", "HUNTER2")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_TrimsPassword(t *testing.T) {
	a := newAuth()

	_, err := a.Login("tim", "  hunter2  ")

	assert.NoError(t, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	a := newAuth()

	_, err := a.Login("mallory", "hunter2")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmptyCredentialMap(t *testing.T) {
	a := auth.NewAuthenticator(nil, []byte("test-secret"), time.Hour)

	_, err := a.Login("tim", "hunter2")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ---- Tokens ----------------------------------------------------------------

func TestIssueToken_ThenVerify_RoundTrips(t *testing.T) {
	a := newAuth()

	token, err := a.IssueToken("tim")
	require.NoError(t, err)

	got, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "tim", got)
}

func TestVerifyToken_Garbage(t *testing.T) {
	a := newAuth()

	_, err := a.VerifyToken("not-a-jwt")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	a := newAuth()
	other := auth.NewAuthenticator(nil, []byte("different-secret"), time.Hour)

	token, err := a.IssueToken("tim")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_Expired(t *testing.T) {
	a := auth.NewAuthenticator(
		map[string]string{"tim": "hunter2"},
		[]byte("test-secret"),
		-time.Minute, // already expired at issue time
	)

	token, err := a.IssueToken("tim")
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
