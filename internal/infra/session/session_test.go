package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestSession_StartWithJWT(t *testing.T) {
	s := New()
	token := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	require.NoError(t, s.Start(token))

	assert.True(t, s.Authenticated())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, "42", s.Subject())
}

func TestSession_ExpiredJWTIsNotAuthenticated(t *testing.T) {
	s := New()
	token := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	require.NoError(t, s.Start(token))

	assert.False(t, s.Authenticated())
	// The token itself is still readable for the upstream logout call.
	assert.Equal(t, token, s.Token())
}

func TestSession_OpaqueTokenAccepted(t *testing.T) {
	s := New()

	require.NoError(t, s.Start("plain-opaque-token"))

	assert.True(t, s.Authenticated())
	assert.Equal(t, "plain-opaque-token", s.Token())
	assert.Empty(t, s.Subject())
}

func TestSession_EmptyTokenRejected(t *testing.T) {
	s := New()

	err := s.Start("")

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, s.Authenticated())
}

func TestSession_Clear(t *testing.T) {
	s := New()
	require.NoError(t, s.Start("token"))

	s.Clear()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Subject())
}
