// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"staffgate/config"
	deliverycontext "staffgate/internal/delivery/context"
	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/domain/service"
	"staffgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const employeeCodeLength = 6

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	txManager         repository.TransactionManager
	employeeRepo      repository.EmployeeRepository
	loginAttemptRepo  repository.LoginAttemptRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	codeGenerator     service.CodeGenerator
	codeRetries       int
	logFailedAttempts bool
	logger            *slog.Logger
}

// EmployeeServiceParams holds dependencies for employeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	EmployeeRepo     repository.EmployeeRepository
	LoginAttemptRepo repository.LoginAttemptRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	CodeGenerator    service.CodeGenerator
	Config           *config.Config
	Logger           *slog.Logger
}

// NewEmployeeService is the constructor for employeeService. It receives all dependencies as interfaces.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	codeRetries := 0
	logFailedAttempts := false
	if params.Config != nil && params.Config.Auth != nil {
		codeRetries = params.Config.Auth.CodeAllocationRetries
		logFailedAttempts = params.Config.Auth.LogFailedAttempts
	}
	if codeRetries <= 0 {
		codeRetries = 10
	}

	return &employeeService{
		txManager:         params.TxManager,
		employeeRepo:      params.EmployeeRepo,
		loginAttemptRepo:  params.LoginAttemptRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		codeGenerator:     params.CodeGenerator,
		codeRetries:       codeRetries,
		logFailedAttempts: logFailedAttempts,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete employee registration process: password
// policy, duplicate pre-checks, unique code allocation, hashing, and persisting
// the record, then issuing a session token for the fresh account.
func (srv *employeeService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("phoneNumber", input.PhoneNumber))

	if input.Password != input.ConfirmPassword {
		srv.log(ctx).Warn("Password confirmation mismatch during registration", slog.String("phoneNumber", input.PhoneNumber))

		return nil, domainerrors.ErrValidationFailed.WithDetails("password and confirmation do not match")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction, bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registered *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		if err := srv.checkDuplicates(ctx, employeeRepo, input); err != nil {
			return err
		}

		created, err := srv.createWithUniqueCode(ctx, employeeRepo, input, hashedPassword)
		if err != nil {
			return err
		}
		registered = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(registered.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("employeeID", registered.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("employeeID", registered.ID), slog.String("employeeCode", registered.EmployeeCode))

	return &usecase.RegisterOutput{Employee: registered, Token: token}, nil
}

// checkDuplicates rejects phone numbers and identification numbers that are
// already registered. These are separate queries so each failure mode keeps
// its own error; the unique indexes remain the arbiter for races.
func (srv *employeeService) checkDuplicates(ctx context.Context, employeeRepo repository.EmployeeRepository, input *usecase.RegisterInput) error {
	phoneTaken, err := employeeRepo.PhoneExists(ctx, input.PhoneNumber)
	if err != nil {
		return errors.Wrap(err, "failed to check phone number")
	}
	if phoneTaken {
		return domainerrors.ErrDuplicatePhone.WrapMessage("phone number already registered")
	}

	identificationTaken, err := employeeRepo.IdentificationExists(ctx, input.IdentificationNumber)
	if err != nil {
		return errors.Wrap(err, "failed to check identification number")
	}
	if identificationTaken {
		return domainerrors.ErrDuplicateIdentification.WrapMessage("identification number already registered")
	}

	return nil
}

// createWithUniqueCode allocates an employee code and persists the record.
// Each attempt draws a fresh candidate, skips ones that are visibly taken, and
// lets the store's unique constraint settle concurrent allocations; losing the
// race simply burns one attempt. Exhausting every attempt reports a clean
// failure instead of spinning.
func (srv *employeeService) createWithUniqueCode(
	ctx context.Context,
	employeeRepo repository.EmployeeRepository,
	input *usecase.RegisterInput,
	hashedPassword string,
) (*entity.Employee, error) {
	for attempt := 0; attempt < srv.codeRetries; attempt++ {
		candidate := srv.codeGenerator.Candidate()

		taken, err := employeeRepo.CodeExists(ctx, candidate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check employee code")
		}
		if taken {
			continue
		}

		newEmployee := &entity.Employee{
			FullNames:            input.FullNames,
			PhoneNumber:          input.PhoneNumber,
			IdentificationNumber: input.IdentificationNumber,
			EmployeeCode:         candidate,
			PasswordHash:         hashedPassword,
			ProfileImage:         input.ProfileImage,
		}

		err = employeeRepo.Create(ctx, newEmployee)
		if err == nil {
			return newEmployee, nil
		}
		if errors.Is(err, repository.ErrDuplicateCode) {
			srv.log(ctx).Debug("Employee code collision, retrying", slog.String("employeeCode", candidate), slog.Int("attempt", attempt+1))

			continue
		}

		return nil, err
	}

	srv.log(ctx).Error("Employee code allocation exhausted", slog.Int("attempts", srv.codeRetries))

	return nil, domainerrors.ErrCodeSpaceExhausted.WrapMessage("employee code allocation exhausted")
}

// Login orchestrates the employee login process. An unknown code and a wrong
// password produce the same InvalidCredentials error so callers cannot probe
// which codes exist.
func (srv *employeeService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("employeeCode", input.EmployeeCode))

	if len(input.EmployeeCode) != employeeCodeLength {
		srv.recordFailedAttempt(ctx, input)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	employee, err := srv.employeeRepo.FindByCode(ctx, input.EmployeeCode)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("employeeCode", input.EmployeeCode))
			srv.recordFailedAttempt(ctx, input)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find employee by code")
	}

	// bcrypt comparison is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("employeeCode", input.EmployeeCode))
		srv.recordFailedAttempt(ctx, input)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(employee.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("employeeID", employee.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.recordAttempt(ctx, input, true)
	srv.log(ctx).Debug("Employee logged in", slog.Any("employeeID", employee.ID))

	return &usecase.LoginOutput{Employee: employee, Token: token}, nil
}

// recordFailedAttempt writes an audit row for a failed login when the
// deployment opted in to recording failures.
func (srv *employeeService) recordFailedAttempt(ctx context.Context, input *usecase.LoginInput) {
	if !srv.logFailedAttempts {
		return
	}
	srv.recordAttempt(ctx, input, false)
}

// recordAttempt appends to the audit trail. Audit writes never fail the login
// itself; a broken audit store is logged and the request proceeds.
func (srv *employeeService) recordAttempt(ctx context.Context, input *usecase.LoginInput, success bool) {
	attempt := &entity.LoginAttempt{
		EmployeeCode: input.EmployeeCode,
		IPAddress:    input.IPAddress,
		Success:      success,
	}

	if err := srv.loginAttemptRepo.Record(ctx, attempt); err != nil {
		srv.log(ctx).Error("Failed to record login attempt", slog.String("employeeCode", input.EmployeeCode), slog.Any("error", err))
	}
}
