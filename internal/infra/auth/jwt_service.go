// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"staffgate/config"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Process-wide secret key for signing tokens.
	tokenTTL time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed token asserting the employee's identity.
func (s *jwtService) Issue(employeeID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   employeeID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a token string and returns the
// embedded claims. Expired tokens and tampered tokens map to distinct domain
// errors so the client can tell them apart; neither reveals more than that.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token")
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token claims")
	}

	employeeID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid subject in token")
	}

	return &service.Claims{
		EmployeeID:       employeeID,
		RegisteredClaims: *registered,
	}, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
