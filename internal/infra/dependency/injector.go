// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/YenChengLai/expense-tracker-v2/config"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/admin"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/auth"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/category"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/transaction"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/user"
	"github.com/YenChengLai/expense-tracker-v2/internal/infra/server/router"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/adapters"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/cache"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/email"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/email/templates"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/controller"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/middleware"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	recentCache := cache.NewRecentCategoryCache(redisClient)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	signupUseCase := auth.NewSignupUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	verifyTokenUseCase := auth.NewVerifyTokenUseCase(tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, recentCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, recentCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	recentCategoriesUseCase := category.NewRecentCategoriesUseCase(recentCache)

	// Create report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
	getCalendarUseCase := report.NewGetCalendarUseCase(transactionRepo)

	// Create user profile use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)

	// Create admin use cases
	listPendingUsersUseCase := admin.NewListPendingUsersUseCase(userRepo)
	approveUserUseCase := admin.NewApproveUserUseCase(userRepo, emailService, cfg.Email.AppBaseURL)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		signupUseCase,
		loginUseCase,
		verifyTokenUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		recentCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)

	reportController := controller.NewReportController(
		getSummaryUseCase,
		getCalendarUseCase,
	)

	adminController := controller.NewAdminController(
		listPendingUsersUseCase,
		approveUserUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		reportController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
