package postgres

import (
	"context"

	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// loginAttemptRepository implements the domain.LoginAttemptRepository interface.
type loginAttemptRepository struct {
	db *gorm.DB
}

// NewLoginAttemptRepository is the constructor for loginAttemptRepository.
func NewLoginAttemptRepository(db *gorm.DB) repository.LoginAttemptRepository {
	return &loginAttemptRepository{db: db}
}

// Record appends a single login attempt. The table carries no unique
// constraints, so the only failure mode is infrastructure.
func (repo *loginAttemptRepository) Record(ctx context.Context, attempt *entity.LoginAttempt) error {
	attemptM := &model.LoginAttemptModel{
		EmployeeCode: attempt.EmployeeCode,
		IPAddress:    attempt.IPAddress,
		Success:      attempt.Success,
	}

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record login attempt")
	}

	attempt.ID = attemptM.ID
	attempt.AttemptTime = attemptM.AttemptTime

	return nil
}
