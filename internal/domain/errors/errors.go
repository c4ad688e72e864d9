// Package errors defines the application error taxonomy. Every business-rule
// failure is expressed as an AppError so the delivery layer can translate it
// into a stable HTTP status and error code without inspecting raw errors.
package errors

import (
	"net/http"

	"staffgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by business error code, so copies produced by
// WithDetails still compare equal to the predefined sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Registration-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrDuplicatePhone = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_PHONE",
		"Phone number already registered",
		"",
	)

	ErrDuplicateIdentification = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_IDENTIFICATION",
		"Identification number already registered",
		"",
	)

	// ErrCodeSpaceExhausted is returned when the bounded allocation loop cannot
	// find a free employee code. Practically unreachable at expected scale.
	ErrCodeSpaceExhausted = NewBaseError(
		http.StatusInternalServerError,
		"CODE_SPACE_EXHAUSTED",
		"Could not allocate a unique employee code",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	// Login and session errors. InvalidCredentials deliberately covers both an
	// unknown code and a wrong password so callers cannot probe which codes exist.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid employee code or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Access denied. No token provided.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	// Employee-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		"",
	)

	ErrEmployeeCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMPLOYEE_CREATION_FAILED",
		"Failed to create employee",
		"",
	)

	// Upload-related errors
	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Profile image exceeds the maximum allowed size",
		"",
	)

	ErrUnsupportedImageType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE_TYPE",
		"Profile image must be an image file",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
