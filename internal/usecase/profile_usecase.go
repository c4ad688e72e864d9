// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"staffgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile re-reads the employee record for the response body.
	GetProfile(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error)

	// UpdateProfileImage replaces the stored profile image reference.
	UpdateProfileImage(ctx context.Context, employeeID uuid.UUID, image string) error
}
