// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"staffgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrDuplicateCode is returned by Create when the generated employee code lost
// the race against a concurrent insert. The caller is expected to allocate a
// fresh candidate and retry; the store's unique constraint is the arbiter.
var ErrDuplicateCode = errors.New("employee code already taken")

// EmployeeRepository defines the standard operations for employee persistence.
// The application layer depends on this interface, not the concrete implementation.
type EmployeeRepository interface {
	// FindByID retrieves a single employee by their surrogate ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByCode retrieves a single employee by their 6-digit employee code.
	FindByCode(ctx context.Context, code string) (*entity.Employee, error)

	// PhoneExists reports whether any employee is registered with the phone number.
	PhoneExists(ctx context.Context, phone string) (bool, error)

	// IdentificationExists reports whether any employee is registered with the
	// identification number.
	IdentificationExists(ctx context.Context, identification string) (bool, error)

	// CodeExists reports whether the employee code is already allocated.
	CodeExists(ctx context.Context, code string) (bool, error)

	// Create persists a new employee. Uniqueness of phone number, identification
	// number, and employee code is enforced by the store; violations surface as
	// the corresponding domain errors (ErrDuplicateCode or the AppError taxonomy).
	Create(ctx context.Context, employee *entity.Employee) error

	// UpdateProfileImage replaces the stored profile image reference. All other
	// employee fields are immutable once registered.
	UpdateProfileImage(ctx context.Context, id uuid.UUID, image string) error
}
