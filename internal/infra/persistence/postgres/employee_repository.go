// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the domain.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindByID retrieves a single employee by their surrogate ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindByCode retrieves a single employee by their 6-digit employee code.
func (repo *employeeRepository) FindByCode(ctx context.Context, code string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	err := repo.db.WithContext(ctx).
		Where("employee_code = ?", code).
		First(&employeeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by code")
	}

	return toEmployeeDomain(&employeeM), nil
}

// PhoneExists reports whether any employee is registered with the phone number.
func (repo *employeeRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return repo.exists(ctx, "phone_number = ?", phone)
}

// IdentificationExists reports whether any employee is registered with the identification number.
func (repo *employeeRepository) IdentificationExists(ctx context.Context, identification string) (bool, error) {
	return repo.exists(ctx, "identification_number = ?", identification)
}

// CodeExists reports whether the employee code is already allocated.
func (repo *employeeRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return repo.exists(ctx, "employee_code = ?", code)
}

func (repo *employeeRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to query employees")
	}

	return count > 0, nil
}

// Create persists a new employee. The store's unique constraints are the real
// arbiter of uniqueness; violations are mapped to the domain taxonomy here so
// callers never see a raw driver error for a lost race.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			switch uniqueViolationColumn(err) {
			case "phone_number":
				return domainerrors.ErrDuplicatePhone.WrapMessage("phone number already registered")
			case "identification_number":
				return domainerrors.ErrDuplicateIdentification.WrapMessage("identification number already registered")
			case "employee_code":
				// Lost the generation race; the caller retries with a fresh candidate.
				return repository.ErrDuplicateCode
			default:
				return domainerrors.ErrEmployeeCreationFailed.WrapMessage("uniqueness constraint violated")
			}
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEmployeeCreationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	// Update the entity with the generated ID and timestamps.
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// UpdateProfileImage replaces the stored profile image reference.
func (repo *employeeRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, image string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", id).
		Update("profile_image", image)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:                   data.ID,
		FullNames:            data.FullNames,
		PhoneNumber:          data.PhoneNumber,
		IdentificationNumber: data.IdentificationNumber,
		EmployeeCode:         data.EmployeeCode,
		PasswordHash:         data.PasswordHash,
		ProfileImage:         data.ProfileImage,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel for persistence.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:                   data.ID,
		FullNames:            data.FullNames,
		PhoneNumber:          data.PhoneNumber,
		IdentificationNumber: data.IdentificationNumber,
		EmployeeCode:         data.EmployeeCode,
		PasswordHash:         data.PasswordHash,
		ProfileImage:         data.ProfileImage,
	}
}
