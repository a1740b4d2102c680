// Package session holds the bearer token issued by the backend at login.
package session

import (
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity passed to every backend call.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// FromAuth builds a session from a login or register response.
func FromAuth(resp models.AuthResponse) Session {
	return Session{Token: resp.Token, Username: resp.Username}
}

// Valid reports whether the session carries a token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Require returns ErrNoSession for an empty session.
func (s Session) Require() error {
	if !s.Valid() {
		return common.ErrNoSession
	}
	return nil
}

// AuthorizationHeader returns the value of the Authorization header.
func (s Session) AuthorizationHeader() string {
	return "Bearer " + s.Token
}

// ExpiresAt reads the exp claim without verifying the signature.
// The second value is false for opaque tokens or tokens without exp.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token's exp claim lies before now.
// Tokens without a readable expiry never expire locally; the backend decides.
func (s Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}
