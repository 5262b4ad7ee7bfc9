package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend's JWT payload the client cares about.
// The parse is unverified: the client has no signing key, and validation is
// the server's job. This only exists so the CLI can tell an absent or
// obviously expired session apart from a live one without a round trip.
type Claims struct {
	ID       string
	Username string
	Role     string
	IssuedAt time.Time
	Expiry   time.Time
}

var ErrNoToken = errors.New("no session token")

type tokenClaims struct {
	ID   string `json:"id"`
	User string `json:"user"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Inspect decodes the token's claims without verifying the signature.
func Inspect(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrNoToken
	}

	var tc tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims := Claims{
		ID:       tc.ID,
		Username: tc.User,
		Role:     tc.Role,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.Expiry = tc.ExpiresAt.Time
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim in the past. A token
// that cannot be parsed is treated as expired.
func Expired(token string, now time.Time) bool {
	claims, err := Inspect(token)
	if err != nil {
		return true
	}
	return !claims.Expiry.IsZero() && claims.Expiry.Before(now)
}
