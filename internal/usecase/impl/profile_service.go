// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "staffgate/internal/delivery/context"
	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	employeeRepo repository.EmployeeRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the employee record for the response body.
func (srv *profileService) GetProfile(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	srv.log(ctx).Debug("Getting employee profile", slog.Any("employeeID", employeeID))

	employee, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrEmployeeNotFound.WrapMessage("employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return employee, nil
}

// UpdateProfileImage replaces the employee's stored profile image reference.
func (srv *profileService) UpdateProfileImage(ctx context.Context, employeeID uuid.UUID, image string) error {
	srv.log(ctx).Info("Updating profile image", slog.Any("employeeID", employeeID))

	if err := srv.employeeRepo.UpdateProfileImage(ctx, employeeID, image); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.ErrEmployeeNotFound.WrapMessage("employee not found")
		}

		return errors.Wrap(err, "failed to update profile image")
	}

	return nil
}
