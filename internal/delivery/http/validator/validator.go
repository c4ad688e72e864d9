// Package validator wires go-playground struct validation into echo,
// translating tag failures into the application's validation error.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	domainerrors "staffgate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// kenyanPhonePattern accepts local (07.., 01..) and international (+2547..,
// +2541..) mobile number formats.
var kenyanPhonePattern = regexp.MustCompile(`^(\+254|0)[17]\d{8}$`)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the application's custom rules registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration never fails for a func with a non-empty tag name.
	_ = v.RegisterValidation("kenyan_phone", func(fl validator.FieldLevel) bool {
		return kenyanPhonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Tag failures come back as a single
// ValidationFailed error whose details name every offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, describeFieldError(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := snakeCase(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fieldErr.Param())
	case "kenyan_phone":
		return fmt.Sprintf("%s must be a valid Kenyan phone number", field)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// snakeCase converts an exported Go field name to the snake_case form used in
// request payloads, so error details match the client's own field names.
func snakeCase(name string) string {
	var out strings.Builder
	out.Grow(len(name) + 4)

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(r + ('a' - 'A'))

			continue
		}
		out.WriteRune(r)
	}

	return out.String()
}
