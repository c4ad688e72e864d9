package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"staffgate/config"
	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:            bcrypt.MinCost,
			TokenTTL:              time.Hour,
			CodeAllocationRetries: 5,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        6,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
		SecretKey: "test-secret",
	}

	return cfg
}

// memEmployeeRepo is a thread-safe in-memory EmployeeRepository. It enforces
// the same uniqueness rules as the real store so registration races can be
// exercised without a database.
type memEmployeeRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]entity.Employee
	byCode  map[string]uuid.UUID
	byPhone map[string]uuid.UUID
	byIdent map[string]uuid.UUID

	// createHook, when set, runs once before the next Create and its error,
	// if any, is returned instead of persisting.
	createHook func(*entity.Employee) error
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{
		byID:    make(map[uuid.UUID]entity.Employee),
		byCode:  make(map[string]uuid.UUID),
		byPhone: make(map[string]uuid.UUID),
		byIdent: make(map[string]uuid.UUID),
	}
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrEmployeeNotFound
	}

	return &employee, nil
}

func (r *memEmployeeRepo) FindByCode(_ context.Context, code string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, repository.ErrEmployeeNotFound
	}
	employee := r.byID[id]

	return &employee, nil
}

func (r *memEmployeeRepo) PhoneExists(_ context.Context, phone string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byPhone[phone]

	return ok, nil
}

func (r *memEmployeeRepo) IdentificationExists(_ context.Context, identification string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byIdent[identification]

	return ok, nil
}

func (r *memEmployeeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byCode[code]

	return ok, nil
}

func (r *memEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createHook != nil {
		hook := r.createHook
		r.createHook = nil
		if err := hook(employee); err != nil {
			return err
		}
	}

	if _, taken := r.byPhone[employee.PhoneNumber]; taken {
		return domainerrors.ErrDuplicatePhone
	}
	if _, taken := r.byIdent[employee.IdentificationNumber]; taken {
		return domainerrors.ErrDuplicateIdentification
	}
	if _, taken := r.byCode[employee.EmployeeCode]; taken {
		return repository.ErrDuplicateCode
	}

	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	r.byID[employee.ID] = *employee
	r.byCode[employee.EmployeeCode] = employee.ID
	r.byPhone[employee.PhoneNumber] = employee.ID
	r.byIdent[employee.IdentificationNumber] = employee.ID

	return nil
}

func (r *memEmployeeRepo) UpdateProfileImage(_ context.Context, id uuid.UUID, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.byID[id]
	if !ok {
		return repository.ErrEmployeeNotFound
	}
	employee.ProfileImage = image
	employee.UpdatedAt = time.Now()
	r.byID[id] = employee

	return nil
}

func (r *memEmployeeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byID)
}

// memLoginAttemptRepo is a thread-safe in-memory LoginAttemptRepository.
type memLoginAttemptRepo struct {
	mu       sync.Mutex
	attempts []entity.LoginAttempt

	recordErr error
}

func newMemLoginAttemptRepo() *memLoginAttemptRepo {
	return &memLoginAttemptRepo{}
}

func (r *memLoginAttemptRepo) Record(_ context.Context, attempt *entity.LoginAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recordErr != nil {
		return r.recordErr
	}

	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	attempt.AttemptTime = time.Now()
	r.attempts = append(r.attempts, *attempt)

	return nil
}

func (r *memLoginAttemptRepo) recorded() []entity.LoginAttempt {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.LoginAttempt, len(r.attempts))
	copy(out, r.attempts)

	return out
}

// memTxManager runs the transactional function directly against the in-memory
// repositories; there is nothing to roll back.
type memTxManager struct {
	employeeRepo     repository.EmployeeRepository
	loginAttemptRepo repository.LoginAttemptRepository
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *memTxManager) EmployeeRepo() repository.EmployeeRepository {
	return tm.employeeRepo
}

func (tm *memTxManager) LoginAttemptRepo() repository.LoginAttemptRepository {
	return tm.loginAttemptRepo
}

// scriptedCodeGenerator yields a fixed sequence of candidates, then falls
// back to sequential codes that are guaranteed fresh.
type scriptedCodeGenerator struct {
	mu       sync.Mutex
	sequence []string
	next     int
	fallback int
}

func newScriptedCodeGenerator(sequence ...string) *scriptedCodeGenerator {
	return &scriptedCodeGenerator{sequence: sequence, fallback: 500000}
}

func (g *scriptedCodeGenerator) Candidate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next < len(g.sequence) {
		candidate := g.sequence[g.next]
		g.next++

		return candidate
	}

	g.fallback++

	return fmt.Sprintf("%06d", g.fallback)
}
