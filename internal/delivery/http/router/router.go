// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"juantap/internal/delivery/http/middleware"
	"juantap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GalleryHandler *handler.GalleryHandler
	StatusHandler  *handler.StatusHandler
	ShareHandler   *handler.ShareHandler
	ProfileHandler *handler.ProfileHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	galleryHandler *handler.GalleryHandler
	statusHandler  *handler.StatusHandler
	shareHandler   *handler.ShareHandler
	profileHandler *handler.ProfileHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		galleryHandler: params.GalleryHandler,
		statusHandler:  params.StatusHandler,
		shareHandler:   params.ShareHandler,
		profileHandler: params.ProfileHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.profileHandler.Register)
		authGroup.POST("/login", r.profileHandler.Login)
		authGroup.POST("/logout", r.profileHandler.Logout)
	}

	// Public catalog routes
	templateGroup := e.Group("/templates")
	{
		templateGroup.GET("", r.galleryHandler.Browse)
		templateGroup.GET("/:slug", r.galleryHandler.Detail)
		templateGroup.GET("/:slug/share-url", r.shareHandler.TemplateURL)
	}

	// Status routes mirror the upstream saved/used resources and require
	// an active session.
	statusGroup := e.Group("/templates")
	statusGroup.Use(r.authMiddleware.Authenticate)
	{
		statusGroup.GET("/:slug/status", r.statusHandler.GetStatus)
		statusGroup.POST("/saved/:slug", r.statusHandler.Save)
		statusGroup.DELETE("/saved/:slug", r.statusHandler.Unsave)
		statusGroup.POST("/used/:slug", r.statusHandler.Use)
		statusGroup.DELETE("/used/:slug", r.statusHandler.Unuse)
	}

	e.POST("/status/reconcile", r.statusHandler.Reconcile, r.authMiddleware.Authenticate)

	// Profile routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.Me)
		userGroup.GET("/card", r.profileHandler.Card)
	}

	// Share artifact routes
	shareGroup := e.Group("/share")
	{
		shareGroup.GET("/url", r.shareHandler.ProfileURL)
	}
	authedShare := e.Group("/share", r.authMiddleware.Authenticate)
	{
		authedShare.GET("/qr", r.shareHandler.QR)
		authedShare.GET("/qr/download", r.shareHandler.QRDownload)
		authedShare.GET("/vcard", r.shareHandler.VCard)
	}

	// Admin routes require authentication and the admin flag
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/templates", r.adminHandler.ListTemplates)
		adminGroup.POST("/templates", r.adminHandler.CreateTemplate)
		adminGroup.PUT("/templates/:slug", r.adminHandler.UpdateTemplate)
		adminGroup.GET("/payments", r.adminHandler.ListPayments)
		adminGroup.POST("/payments/:id/approve", r.adminHandler.ApprovePayment)
		adminGroup.POST("/payments/:id/disapprove", r.adminHandler.DisapprovePayment)
	}
}
