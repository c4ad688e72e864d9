// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"staffgate/config"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost factor and the
// password policy come from configuration; bcrypt embeds a fresh random salt in
// every digest, so identical plaintexts never produce identical hashes.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	var policy *config.PasswordStrengthConfig
	if cfg != nil {
		policy = cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Tests use a low cost to keep hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. bcrypt's comparison
// is constant-time over the digest.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.policy
	if policy == nil {
		policy = &config.PasswordStrengthConfig{
			MinLength:        6,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		}
	}

	if len(password) < policy.MinLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			"password must be at least " + strconv.Itoa(policy.MinLength) + " characters long")
	}
	if policy.RequireUppercase && !hasUppercase(password) {
		return domainerrors.ErrValidationFailed.WithDetails("password must contain at least one uppercase letter")
	}
	if policy.RequireLowercase && !hasLowercase(password) {
		return domainerrors.ErrValidationFailed.WithDetails("password must contain at least one lowercase letter")
	}
	if policy.RequireNumbers && !hasNumbers(password) {
		return domainerrors.ErrValidationFailed.WithDetails("password must contain at least one number")
	}

	return nil
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
