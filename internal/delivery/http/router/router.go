// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cityquest/internal/delivery/http/middleware"
	"cityquest/internal/delivery/http/router/handler"
	"cityquest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	LocationHandler *handler.LocationHandler
	ScanHandler     *handler.ScanHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	locationHandler *handler.LocationHandler
	scanHandler     *handler.ScanHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		profileHandler:  params.ProfileHandler,
		locationHandler: params.LocationHandler,
		scanHandler:     params.ScanHandler,
		chatHandler:     params.ChatHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/firebase", r.userHandler.FirebaseSignIn)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.GET("/sessions", r.userHandler.GetActiveSessions)
		userGroup.POST("/logout-all", r.userHandler.LogoutAllDevices)
	}

	// Location registry. Reads are public so the mobile client can browse
	// the map; mutations require the "curator" role.
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
		locationGroup.GET("/:id/qr", r.locationHandler.GetLocationArtifact)
	}

	curatorGroup := e.Group("/locations")
	curatorGroup.Use(r.authMiddleware.Authenticate)
	curatorGroup.Use(r.authMiddleware.RequireRole(entity.RoleCurator.String()))
	{
		curatorGroup.POST("", r.locationHandler.RegisterLocation)
		curatorGroup.DELETE("/:id", r.locationHandler.DeleteLocation)
	}

	// Scan interpreter and reward ledger
	scanGroup := e.Group("/scans")
	scanGroup.Use(r.authMiddleware.Authenticate)
	{
		scanGroup.POST("", r.scanHandler.InterpretScan)
		scanGroup.GET("", r.scanHandler.GetScanHistory)
	}

	// Assistant chat proxy
	chatGroup := e.Group("/chat")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.POST("/messages", r.chatHandler.SendMessage)
	}
}
