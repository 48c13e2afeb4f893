package main

import (
	"github.com/gin-gonic/gin"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/internal/handlers"
	"github.com/atelierhq/atelier/backend/internal/middleware"
	"github.com/atelierhq/atelier/backend/internal/models"
	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for public form submissions and login
	submitLimiter := middleware.NewRateLimiter(1, 5)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// Uploaded images
	r.Static("/uploads", cfg.Upload.Dir)

	db := models.GetDB()
	contactService := services.NewContactService(db, svc.emailService)
	reviewService := services.NewReviewService(db, svc.emailService)

	projectHandler := handlers.NewProjectHandler(db)
	reviewHandler := handlers.NewReviewHandler(reviewService, svc.captchaService)
	contactHandler := handlers.NewContactHandler(contactService, svc.captchaService)
	teamHandler := handlers.NewTeamHandler(db)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, login rate limited)
		auth := api.Group("/auth")
		{
			auth.POST("/login", submitLimiter.Middleware(), svc.authHandler.Login)
			auth.GET("/config", svc.authHandler.GetAuthConfig)
		}

		// Public content
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.GET("/reviews", reviewHandler.ListPublished)
		api.GET("/team", teamHandler.List)

		// Public form submissions (rate limited)
		api.POST("/contact", submitLimiter.Middleware(), contactHandler.Submit)
		api.POST("/reviews", submitLimiter.Middleware(), reviewHandler.Submit)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Dashboard (all users)
			dashboardHandler := handlers.NewDashboardHandler(db)
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			// Projects (write operations)
			admin.POST("/projects", projectHandler.Create)
			admin.PUT("/projects/:id", projectHandler.Update)
			admin.DELETE("/projects/:id", projectHandler.Delete)

			// Reviews (moderation)
			admin.GET("/admin/reviews", reviewHandler.List)
			admin.PUT("/reviews/:id", reviewHandler.Update)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			// Contact submissions
			admin.GET("/contact", contactHandler.List)
			admin.GET("/contact/:id", contactHandler.GetByID)
			admin.PATCH("/contact/:id/status", contactHandler.UpdateStatus)
			admin.DELETE("/contact/:id", contactHandler.Delete)

			// Team
			admin.POST("/team", teamHandler.Create)
			admin.PUT("/team/:id", teamHandler.Update)
			admin.DELETE("/team/:id", teamHandler.Delete)

			// Users
			userHandler := handlers.NewUserHandler(db)
			admin.GET("/users", userHandler.List)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			// Upload
			uploadHandler := handlers.NewUploadHandler(svc.uploadService)
			admin.POST("/upload", uploadHandler.Upload)
		}
	}
}
