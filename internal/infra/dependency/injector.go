// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pingoou/backend/config"
	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/application/usecase/auth"
	"github.com/pingoou/backend/internal/application/usecase/delivery"
	"github.com/pingoou/backend/internal/application/usecase/expense"
	"github.com/pingoou/backend/internal/application/usecase/mascot"
	"github.com/pingoou/backend/internal/application/usecase/product"
	"github.com/pingoou/backend/internal/application/usecase/profile"
	"github.com/pingoou/backend/internal/application/usecase/sale"
	"github.com/pingoou/backend/internal/application/usecase/stats"
	"github.com/pingoou/backend/internal/infra/server/router"
	"github.com/pingoou/backend/internal/integration/adapters"
	"github.com/pingoou/backend/internal/integration/email"
	"github.com/pingoou/backend/internal/integration/entrypoint/controller"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
	"github.com/pingoou/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the dashboard cache then degrades to fresh computes.
// Missing Resend or Gemini keys disable the reset email and the category
// suggester without affecting the rest of the API.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	productRepo := persistence.NewProductRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	deliveryRepo := persistence.NewDeliveryRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	statsRepo := persistence.NewStatsRepository(db)
	dataReset := persistence.NewDataReset(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var statsCache adapter.StatsCache
	if redisClient != nil {
		statsCache = adapters.NewRedisStatsCache(redisClient)
	}

	var suggester adapter.CategorySuggester
	if cfg.Gemini.APIKey != "" {
		suggester = adapters.NewGeminiService(cfg.Gemini.APIKey)
	}

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, profileRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

	// Create sale use cases
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, productRepo, profileRepo, statsCache)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	getSaleUseCase := sale.NewGetSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo, productRepo, profileRepo, statsCache)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, statsCache)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, suggester, statsCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, statsCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, statsCache)

	// Create delivery use cases
	listWorkDaysUseCase := delivery.NewListWorkDaysUseCase(deliveryRepo)
	toggleWorkDayUseCase := delivery.NewToggleWorkDayUseCase(deliveryRepo, statsCache)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	resetDataUseCase := profile.NewResetDataUseCase(userRepo, profileRepo, passwordService, dataReset, statsCache)

	// Create stats use cases
	getFilteredStatsUseCase := stats.NewGetFilteredStatsUseCase(statsRepo, profileRepo)
	getDashboardStatsUseCase := stats.NewGetDashboardStatsUseCase(statsRepo, profileRepo, statsCache)

	// Create mascot use case
	getMascotMoodUseCase := mascot.NewGetMascotMoodUseCase(saleRepo, profileRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	productController := controller.NewProductController(
		createProductUseCase,
		listProductsUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)

	saleController := controller.NewSaleController(
		createSaleUseCase,
		listSalesUseCase,
		getSaleUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	deliveryController := controller.NewDeliveryController(
		listWorkDaysUseCase,
		toggleWorkDayUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
		resetDataUseCase,
	)

	statsController := controller.NewStatsController(
		getFilteredStatsUseCase,
		getDashboardStatsUseCase,
	)

	mascotController := controller.NewMascotController(getMascotMoodUseCase)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		productController,
		saleController,
		expenseController,
		deliveryController,
		profileController,
		statsController,
		mascotController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
