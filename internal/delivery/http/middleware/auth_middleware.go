package middleware

import (
	"strings"

	deliverycontext "staffgate/internal/delivery/context"
	"staffgate/internal/domain/entity"
	domainerrors "staffgate/internal/domain/errors"
	"staffgate/internal/domain/repository"
	"staffgate/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware guards routes behind a valid session token. Beyond verifying
// the token itself, it re-resolves the employee on every request so a live
// token for a deleted account stops working immediately.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	employeeRepo repository.EmployeeRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, employeeRepo repository.EmployeeRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, employeeRepo: employeeRepo}
}

// Authenticate validates the bearer token and loads the employee it asserts.
// The resolved employee is set on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// TokenExpired and InvalidToken pass through untouched so the
			// client can tell a stale session from a bad one.
			return err
		}

		employee, err := m.employeeRepo.FindByID(c.Request().Context(), claims.EmployeeID)
		if err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
			}

			return errors.Wrap(err, "failed to resolve employee for token")
		}

		c.Set(string(deliverycontext.KeyEmployee), employee)

		return next(c)
	}
}

// EmployeeFromContext returns the employee resolved by Authenticate, or nil
// when the route was not guarded.
func EmployeeFromContext(c echo.Context) *entity.Employee {
	employee, _ := c.Get(string(deliverycontext.KeyEmployee)).(*entity.Employee)

	return employee
}
