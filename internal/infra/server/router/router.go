// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/worktrack/backend/internal/domain/entity"
	"github.com/worktrack/backend/internal/integration/entrypoint/controller"
	"github.com/worktrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	userController       *controller.UserController
	calculatorController *controller.CalculatorController
	workController       *controller.WorkController
	workTypeController   *controller.WorkTypeController
	tagController        *controller.TagController
	ledgerController     *controller.LedgerController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	calculatorController *controller.CalculatorController,
	workController *controller.WorkController,
	workTypeController *controller.WorkTypeController,
	tagController *controller.TagController,
	ledgerController *controller.LedgerController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		userController:       userController,
		calculatorController: calculatorController,
		workController:       workController,
		workTypeController:   workTypeController,
		tagController:        tagController,
		ledgerController:     ledgerController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
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
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Calculator routes (require authentication)
		if r.calculatorController != nil && r.authMiddleware != nil {
			calc := v1.Group("/calculator")
			calc.Use(r.authMiddleware.Authenticate())
			{
				calc.GET("/report", r.calculatorController.GetReport)
				calc.POST("/overrides", r.calculatorController.SetOverrides)
				calc.POST("/recalculate", r.calculatorController.Recalculate)
				calc.POST("/groups/toggle", r.calculatorController.ToggleGroup)
			}
		}

		// Work record routes (require authentication; workers are scoped to
		// their own records inside the use cases)
		if r.workController != nil && r.authMiddleware != nil {
			works := v1.Group("/works")
			works.Use(r.authMiddleware.Authenticate())
			{
				works.GET("", r.workController.List)
				works.POST("", r.workController.Create)
				works.PATCH("/:id", r.workController.Update)
				works.DELETE("/:id", r.workController.Delete)
			}
		}

		// Work type routes (admins and operators manage the catalog)
		if r.workTypeController != nil && r.authMiddleware != nil {
			workTypes := v1.Group("/work-types")
			workTypes.Use(r.authMiddleware.Authenticate())
			{
				workTypes.GET("", r.workTypeController.List)

				manage := workTypes.Group("")
				manage.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleOperator))
				{
					manage.POST("", r.workTypeController.Create)
					manage.PATCH("/:id", r.workTypeController.Update)
					manage.DELETE("/:id", r.workTypeController.Delete)
					manage.PUT("/:id/rates", r.workTypeController.SetUserRate)
					manage.DELETE("/:id/rates/:userId", r.workTypeController.ClearUserRate)
				}
			}
		}

		// Tag routes (require authentication)
		if r.tagController != nil && r.authMiddleware != nil {
			tags := v1.Group("/tags")
			tags.Use(r.authMiddleware.Authenticate())
			{
				tags.GET("", r.tagController.List)

				manage := tags.Group("")
				manage.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleOperator))
				{
					manage.POST("", r.tagController.Create)
					manage.PATCH("/:id", r.tagController.Update)
					manage.DELETE("/:id", r.tagController.Delete)
				}
			}
		}

		// Ledger routes (admins and operators only)
		if r.ledgerController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate(), middleware.RequireRoles(entity.RoleAdmin, entity.RoleOperator))
			{
				expenses.GET("", r.ledgerController.ListExpenses)
				expenses.POST("", r.ledgerController.CreateExpense)
				expenses.PATCH("/:id", r.ledgerController.UpdateExpense)
				expenses.DELETE("/:id", r.ledgerController.DeleteExpense)
			}

			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate(), middleware.RequireRoles(entity.RoleAdmin, entity.RoleOperator))
			{
				sales.GET("", r.ledgerController.ListSales)
				sales.POST("", r.ledgerController.CreateSale)
				sales.PATCH("/:id", r.ledgerController.UpdateSale)
				sales.DELETE("/:id", r.ledgerController.DeleteSale)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("", middleware.RequireRoles(entity.RoleAdmin, entity.RoleOperator), r.userController.List)
				users.PUT("/:id/role", middleware.RequireRoles(entity.RoleAdmin), r.userController.ChangeRole)
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
