// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staffgate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new employee.
type RegisterInput struct {
	FullNames            string
	PhoneNumber          string
	IdentificationNumber string
	Password             string
	ConfirmPassword      string

	// ProfileImage is the stored image reference, already written by the
	// delivery layer. Empty when no image was uploaded.
	ProfileImage string
}

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	EmployeeCode string
	Password     string

	// IPAddress is the caller's address, recorded on the audit trail.
	IPAddress string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created employee and their session token.
// The generated employee code is on the entity; it is the caller's login
// identifier from here on.
type RegisterOutput struct {
	Employee *entity.Employee
	Token    string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Employee *entity.Employee
	Token    string
}

// EmployeeUsecase defines the interface for employee account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type EmployeeUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
