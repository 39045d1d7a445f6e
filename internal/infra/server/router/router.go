// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pingoou/backend/internal/integration/entrypoint/controller"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	productController  *controller.ProductController
	saleController     *controller.SaleController
	expenseController  *controller.ExpenseController
	deliveryController *controller.DeliveryController
	profileController  *controller.ProfileController
	statsController    *controller.StatsController
	mascotController   *controller.MascotController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	productController *controller.ProductController,
	saleController *controller.SaleController,
	expenseController *controller.ExpenseController,
	deliveryController *controller.DeliveryController,
	profileController *controller.ProfileController,
	statsController *controller.StatsController,
	mascotController *controller.MascotController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		productController:  productController,
		saleController:     saleController,
		expenseController:  expenseController,
		deliveryController: deliveryController,
		profileController:  profileController,
		statsController:    statsController,
		mascotController:   mascotController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
		allowedOrigins:     allowedOrigins,
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

	if len(r.allowedOrigins) > 0 {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

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

		// Product catalog routes (require authentication)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.PUT("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.GET("/:id", r.saleController.Get)
				sales.PUT("/:id", r.saleController.Update)
				sales.DELETE("/:id", r.saleController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Delivery worked-day routes (require authentication)
		if r.deliveryController != nil && r.authMiddleware != nil {
			delivery := v1.Group("/delivery")
			delivery.Use(r.authMiddleware.Authenticate())
			{
				delivery.GET("/work-days", r.deliveryController.List)
				delivery.POST("/work-days/toggle", r.deliveryController.Toggle)
			}
		}

		// Profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PUT("", r.profileController.Update)
				profile.POST("/reset-data", r.profileController.ResetData)
			}
		}

		// Stats routes (require authentication)
		if r.statsController != nil && r.authMiddleware != nil {
			stats := v1.Group("/stats")
			stats.Use(r.authMiddleware.Authenticate())
			{
				stats.GET("", r.statsController.GetFiltered)
				stats.GET("/dashboard", r.statsController.GetDashboard)
			}
		}

		// Mascot route (requires authentication)
		if r.mascotController != nil && r.authMiddleware != nil {
			mascot := v1.Group("/mascot")
			mascot.Use(r.authMiddleware.Authenticate())
			{
				mascot.GET("/mood", r.mascotController.GetMood)
			}
		}
	}
}
