package postgres

import (
	"context"
	"testing"

	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the same schema the
// migrations produce. sqlite reports constraint violations by column name,
// which is what the mapping falls back to when no PostgreSQL constraint name
// is available.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.EmployeeModel{}, &model.LoginAttemptModel{}))

	return db
}

func testEmployee() *entity.Employee {
	return &entity.Employee{
		FullNames:            "Jane Doe",
		PhoneNumber:          "0712345678",
		IdentificationNumber: "ID12345",
		EmployeeCode:         "123456",
		PasswordHash:         "$2a$12$notarealhashnotarealhash",
	}
}

func TestEmployeeRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	employee := testEmployee()
	require.NoError(t, repo.Create(ctx, employee))

	assert.NotEqual(t, uuid.Nil, employee.ID)
	assert.False(t, employee.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "0712345678", byID.PhoneNumber)

	byCode, err := repo.FindByCode(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, byCode.ID)
}

func TestEmployeeRepository_FindNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)

	_, err = repo.FindByCode(ctx, "999999")
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ExistenceChecks(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testEmployee()))

	phoneTaken, err := repo.PhoneExists(ctx, "0712345678")
	require.NoError(t, err)
	assert.True(t, phoneTaken)

	phoneFree, err := repo.PhoneExists(ctx, "0798765432")
	require.NoError(t, err)
	assert.False(t, phoneFree)

	identTaken, err := repo.IdentificationExists(ctx, "ID12345")
	require.NoError(t, err)
	assert.True(t, identTaken)

	codeTaken, err := repo.CodeExists(ctx, "123456")
	require.NoError(t, err)
	assert.True(t, codeTaken)

	codeFree, err := repo.CodeExists(ctx, "654321")
	require.NoError(t, err)
	assert.False(t, codeFree)
}

func TestEmployeeRepository_UniqueViolationMapping(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testEmployee()))

	t.Run("duplicate phone", func(t *testing.T) {
		dup := testEmployee()
		dup.IdentificationNumber = "ID99999"
		dup.EmployeeCode = "222222"

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicatePhone)
	})

	t.Run("duplicate identification", func(t *testing.T) {
		dup := testEmployee()
		dup.PhoneNumber = "0798765432"
		dup.EmployeeCode = "333333"

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentification)
	})

	t.Run("duplicate employee code", func(t *testing.T) {
		dup := testEmployee()
		dup.PhoneNumber = "0798765432"
		dup.IdentificationNumber = "ID99999"

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateCode)
	})
}

func TestEmployeeRepository_UpdateProfileImage(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	employee := testEmployee()
	require.NoError(t, repo.Create(ctx, employee))

	require.NoError(t, repo.UpdateProfileImage(ctx, employee.ID, "/uploads/avatar.jpg"))

	updated, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatar.jpg", updated.ProfileImage)

	err = repo.UpdateProfileImage(ctx, uuid.New(), "/uploads/other.jpg")
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestLoginAttemptRepository_Record(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoginAttemptRepository(db)
	ctx := context.Background()

	attempt := &entity.LoginAttempt{
		EmployeeCode: "123456",
		IPAddress:    "203.0.113.7",
		Success:      true,
	}
	require.NoError(t, repo.Record(ctx, attempt))

	assert.NotEqual(t, uuid.Nil, attempt.ID)
	assert.False(t, attempt.AttemptTime.IsZero())

	var count int64
	require.NoError(t, db.Model(&model.LoginAttemptModel{}).
		Where("employee_code = ? AND success = ?", "123456", true).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EmployeeRepo().Create(ctx, testEmployee())
	})
	require.NoError(t, err)

	_, err = repo.FindByCode(ctx, "123456")
	require.NoError(t, err)

	rollbackErr := domainerrors.ErrValidationFailed
	err = tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		other := testEmployee()
		other.PhoneNumber = "0798765432"
		other.IdentificationNumber = "ID99999"
		other.EmployeeCode = "654321"
		if createErr := repoFactory.EmployeeRepo().Create(ctx, other); createErr != nil {
			return createErr
		}

		return rollbackErr
	})
	assert.ErrorIs(t, err, rollbackErr)

	_, err = repo.FindByCode(ctx, "654321")
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}
