package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token: the user
// identity plus the standard registered claims (expiry, issued-at).
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// GenerateToken issues a signed session token embedding the user's
	// identity, valid for the configured window.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies a token string and returns its identity claim.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the validity window of issued tokens.
	TokenDuration() time.Duration
}
