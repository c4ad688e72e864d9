package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
// The token is self-contained: the employee ID and expiry are everything
// needed to verify a request, no server-side session state exists.
type Claims struct {
	EmployeeID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token asserting the employee's identity.
	Issue(employeeID uuid.UUID) (string, error)

	// Validate checks signature and expiry of a token string. On failure it
	// returns ErrTokenExpired or ErrInvalidToken from the domain taxonomy.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
