package validator

import (
	"testing"

	domainerrors "staffgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	PhoneNumber string `validate:"required,kenyan_phone"`
}

func TestValidate_KenyanPhoneRule(t *testing.T) {
	v := New()

	valid := []string{
		"0712345678",
		"0112345678",
		"+254712345678",
		"+254112345678",
	}
	for _, phone := range valid {
		assert.NoError(t, v.Validate(&phoneForm{PhoneNumber: phone}), "phone %q", phone)
	}

	invalid := []string{
		"",
		"12345",
		"0812345678",    // unsupported prefix
		"071234567",     // too short
		"07123456789",   // too long
		"+15551234567",  // foreign number
		"0712 345 678",  // whitespace
		"07123456ab",    // non-digits
	}
	for _, phone := range invalid {
		err := v.Validate(&phoneForm{PhoneNumber: phone})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "phone %q", phone)
	}
}

type signupForm struct {
	FullNames            string `validate:"required,min=2,max=255"`
	IdentificationNumber string `validate:"required,min=5,max=50"`
}

func TestValidate_FieldErrorDetailsNameTheField(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{FullNames: "J", IdentificationNumber: ""})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "full_names")
	assert.Contains(t, appErr.Details(), "identification_number")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "full_names", snakeCase("FullNames"))
	assert.Equal(t, "phone_number", snakeCase("PhoneNumber"))
	assert.Equal(t, "password", snakeCase("Password"))
}
