package auth

import (
	"testing"

	"staffgate/config"
	domainerrors "staffgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        6,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	password := "Passw0rd"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)
	second, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)

	// Identical plaintexts must produce different digests.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	password := "Passw0rd"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrongPassw0rd", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	validPasswords := []string{
		"Passw0rd",
		"Abcde1",
		"MySecurePass1",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1", "at least 6 characters"},
		{"passw0rd", "uppercase letter"},
		{"PASSW0RD", "lowercase letter"},
		{"Password", "at least one number"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), tc.expectedErr)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "Passw0rd"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}
