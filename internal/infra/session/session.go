// Package session holds the bearer token for the authenticated user. It
// replaces ambient token storage with one explicit object that every
// upstream-calling component receives through injection.
package session

import (
	"sync"
	"time"

	"juantap/internal/domain/service"
	"juantap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when Start is called with a blank token.
var ErrEmptyToken = errors.New("empty session token")

type bearerSession struct {
	mu        sync.RWMutex
	token     string
	subject   string
	expiresAt time.Time
}

// New creates an unauthenticated session.
func New() service.Session {
	return &bearerSession{}
}

// Start installs a bearer token. The token is issued and signed by the
// upstream; the client only inspects its claims for expiry and subject, it
// never verifies the signature (it does not hold the key).
func (s *bearerSession) Start(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	var subject string
	var expiresAt time.Time

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil {
			subject = sub
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
	}
	// Opaque (non-JWT) tokens are accepted as-is with no expiry knowledge.

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.subject = subject
	s.expiresAt = expiresAt

	return nil
}

// Clear tears the session down.
func (s *bearerSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.subject = ""
	s.expiresAt = time.Time{}
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *bearerSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Authenticated reports whether a non-expired token is present.
func (s *bearerSession) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return false
	}

	return true
}

// Subject returns the token's subject claim when one is present.
func (s *bearerSession) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subject
}
