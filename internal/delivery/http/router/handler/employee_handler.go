// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"staffgate/internal/delivery/http/middleware"
	"staffgate/internal/delivery/http/response"
	"staffgate/internal/infra/upload"
	"staffgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SignupRequest is the multipart/form payload accepted by POST /signup.
type SignupRequest struct {
	FullNames            string `form:"full_names" json:"full_names" validate:"required,min=2,max=255"`
	PhoneNumber          string `form:"phone_number" json:"phone_number" validate:"required,kenyan_phone"`
	IdentificationNumber string `form:"identification_number" json:"identification_number" validate:"required,min=5,max=50"`
	Password             string `form:"password" json:"password" validate:"required"`
	ConfirmPassword      string `form:"confirm_password" json:"confirm_password" validate:"required"`
}

// LoginRequest is the payload accepted by POST /login. The employee code's
// shape is deliberately not validated here: malformed codes fail inside the
// login flow with the same error as wrong credentials.
type LoginRequest struct {
	EmployeeCode string `form:"employee_code" json:"employee_code" validate:"required"`
	Password     string `form:"password" json:"password" validate:"required"`
}

// EmployeeHandler holds dependencies for employee-related handlers.
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	profileUC  usecase.ProfileUsecase
	imageStore upload.ImageStore
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(
	employeeUC usecase.EmployeeUsecase,
	profileUC usecase.ProfileUsecase,
	imageStore upload.ImageStore,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: employeeUC,
		profileUC:  profileUC,
		imageStore: imageStore,
		logger:     logger,
	}
}

// Signup handles the employee registration request. The profile image is
// optional; when present it is stored before the account is created so the
// record carries its reference from the start.
func (h *EmployeeHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	imagePath, err := h.saveProfileImage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.employeeUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullNames:            req.FullNames,
		PhoneNumber:          req.PhoneNumber,
		IdentificationNumber: req.IdentificationNumber,
		Password:             req.Password,
		ConfirmPassword:      req.ConfirmPassword,
		ProfileImage:         imagePath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithToken(c, http.StatusCreated, output.Employee.Public(), output.Token, "Employee registered successfully")
}

// Login handles the employee login request.
func (h *EmployeeHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.employeeUC.Login(c.Request().Context(), &usecase.LoginInput{
		EmployeeCode: req.EmployeeCode,
		Password:     req.Password,
		IPAddress:    c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithToken(c, http.StatusOK, output.Employee.Public(), output.Token, "Login successful")
}

// GetProfile returns the authenticated employee's own record.
func (h *EmployeeHandler) GetProfile(c echo.Context) error {
	authed := middleware.EmployeeFromContext(c)
	if authed == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	employee, err := h.profileUC.GetProfile(c.Request().Context(), authed.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee.Public(), "Profile retrieved successfully")
}

// UpdateProfileImage replaces the authenticated employee's profile image.
func (h *EmployeeHandler) UpdateProfileImage(c echo.Context) error {
	authed := middleware.EmployeeFromContext(c)
	if authed == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	file, err := c.FormFile("profile_image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "profile_image file is required")
	}

	imagePath, err := h.imageStore.Save(file)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.profileUC.UpdateProfileImage(c.Request().Context(), authed.ID, imagePath); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profile_image": imagePath}, "Profile image updated successfully")
}

// saveProfileImage stores the optional signup image and returns its public
// path, or empty when no file was attached.
func (h *EmployeeHandler) saveProfileImage(c echo.Context) (string, error) {
	file, err := c.FormFile("profile_image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to read profile image")
	}

	return h.imageStore.Save(file)
}
