// Package router contains routing setup for the HTTP delivery.
package router

import (
	"adminapi/internal/delivery/http/middleware"
	"adminapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StudentHandler *handler.StudentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	studentHandler *handler.StudentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		studentHandler: params.StudentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Register, login and refresh are public; refresh
	// authenticates by the refresh token in the body, not the header.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Student management requires a valid access token.
	studentGroup := e.Group("/students")
	studentGroup.Use(r.authMiddleware.Authenticate)
	{
		studentGroup.POST("", r.studentHandler.Create)
		studentGroup.GET("", r.studentHandler.List)
		studentGroup.GET("/:id", r.studentHandler.Get)
		studentGroup.PUT("/:id", r.studentHandler.Update)
		studentGroup.DELETE("/:id", r.studentHandler.Delete)
	}
}
