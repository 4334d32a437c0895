// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/controller"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	adminController       *controller.AdminController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
		reportController:      reportController,
		adminController:       adminController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/signup", r.authController.Signup)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.GET("/verify", r.authController.Verify)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.GET("/recent", r.categoryController.Recent)
				categories.POST("", r.categoryController.Create)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/calendar", r.reportController.Calendar)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PATCH("/me", r.userController.UpdateProfile)
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Admin routes (require authentication and the admin role)
		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/pending-users", r.adminController.ListPendingUsers)
				admin.POST("/approve-user", r.adminController.ApproveUser)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
