// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staffgate/config"
	"staffgate/internal/delivery/http/middleware"
	"staffgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	EmployeeHandler *handler.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	employeeHandler *handler.EmployeeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		employeeHandler: params.EmployeeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/signup", r.employeeHandler.Signup)
	e.POST("/login", r.employeeHandler.Login)

	// Uploaded profile images are served directly off disk.
	e.Static(r.cfg.Upload.PublicPrefix, r.cfg.Upload.Dir)

	// Routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.employeeHandler.GetProfile)
		profileGroup.PUT("/image", r.employeeHandler.UpdateProfileImage)
	}
}
