// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/worktrack/backend/config"
	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/application/usecase/auth"
	"github.com/worktrack/backend/internal/application/usecase/calculator"
	"github.com/worktrack/backend/internal/application/usecase/ledger"
	"github.com/worktrack/backend/internal/application/usecase/tag"
	"github.com/worktrack/backend/internal/application/usecase/user"
	"github.com/worktrack/backend/internal/application/usecase/work"
	"github.com/worktrack/backend/internal/application/usecase/worktype"
	"github.com/worktrack/backend/internal/infra/server/router"
	"github.com/worktrack/backend/internal/integration/adapters"
	"github.com/worktrack/backend/internal/integration/email"
	"github.com/worktrack/backend/internal/integration/email/templates"
	"github.com/worktrack/backend/internal/integration/entrypoint/controller"
	"github.com/worktrack/backend/internal/integration/entrypoint/middleware"
	"github.com/worktrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil; report caching is skipped without it.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	workTypeRepo := persistence.NewWorkTypeRepository(db)
	rateRepo := persistence.NewUserWorkTypeRateRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	workRepo := persistence.NewWorkRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	var (
		reportCache       calculator.ReportCache
		reportInvalidator adapter.ReportInvalidator
	)
	if redisClient != nil {
		cache := adapters.NewReportCache(redisClient, cfg.Calculator.ReportCacheTTL)
		reportCache = cache
		reportInvalidator = cache
	}

	// Create email worker
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create calculator use cases
	multiplierDivisor := decimal.NewFromInt(int64(cfg.Calculator.MultiplierDivisor))
	sessions := calculator.NewSessionStore()
	getReportUseCase := calculator.NewGetReportUseCase(reportRepo, reportCache, sessions, multiplierDivisor)
	setOverridesUseCase := calculator.NewSetOverridesUseCase(sessions)
	applyOverridesUseCase := calculator.NewApplyOverridesUseCase(sessions, multiplierDivisor)
	toggleGroupUseCase := calculator.NewToggleGroupUseCase(sessions)

	// Create work type use cases
	listWorkTypesUseCase := worktype.NewListWorkTypesUseCase(workTypeRepo)
	createWorkTypeUseCase := worktype.NewCreateWorkTypeUseCase(workTypeRepo)
	updateWorkTypeUseCase := worktype.NewUpdateWorkTypeUseCase(workTypeRepo, reportInvalidator)
	deleteWorkTypeUseCase := worktype.NewDeleteWorkTypeUseCase(workTypeRepo, workRepo, rateRepo, reportInvalidator)
	setUserRateUseCase := worktype.NewSetUserRateUseCase(workTypeRepo, userRepo, rateRepo, reportInvalidator)
	clearUserRateUseCase := worktype.NewClearUserRateUseCase(rateRepo, reportInvalidator)

	// Create tag use cases
	listTagsUseCase := tag.NewListTagsUseCase(tagRepo)
	createTagUseCase := tag.NewCreateTagUseCase(tagRepo)
	updateTagUseCase := tag.NewUpdateTagUseCase(tagRepo)
	deleteTagUseCase := tag.NewDeleteTagUseCase(tagRepo, workRepo)

	// Create work use cases
	createWorkUseCase := work.NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, reportInvalidator)
	listWorksUseCase := work.NewListWorksUseCase(workRepo)
	updateWorkUseCase := work.NewUpdateWorkUseCase(workRepo, workTypeRepo, tagRepo, reportInvalidator)
	deleteWorkUseCase := work.NewDeleteWorkUseCase(workRepo, reportInvalidator)

	// Create ledger use cases
	createExpenseUseCase := ledger.NewCreateExpenseUseCase(expenseRepo, reportInvalidator)
	listExpensesUseCase := ledger.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := ledger.NewUpdateExpenseUseCase(expenseRepo, reportInvalidator)
	deleteExpenseUseCase := ledger.NewDeleteExpenseUseCase(expenseRepo, reportInvalidator)
	createSaleUseCase := ledger.NewCreateSaleUseCase(saleRepo, reportInvalidator)
	listSalesUseCase := ledger.NewListSalesUseCase(saleRepo)
	updateSaleUseCase := ledger.NewUpdateSaleUseCase(saleRepo, reportInvalidator)
	deleteSaleUseCase := ledger.NewDeleteSaleUseCase(saleRepo, reportInvalidator)

	// Create user use cases
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	changeRoleUseCase := user.NewChangeRoleUseCase(userRepo)

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

	userController := controller.NewUserController(
		listUsersUseCase,
		changeRoleUseCase,
		deleteAccountUseCase,
	)

	calculatorController := controller.NewCalculatorController(
		getReportUseCase,
		setOverridesUseCase,
		applyOverridesUseCase,
		toggleGroupUseCase,
	)

	workController := controller.NewWorkController(
		createWorkUseCase,
		listWorksUseCase,
		updateWorkUseCase,
		deleteWorkUseCase,
	)

	workTypeController := controller.NewWorkTypeController(
		listWorkTypesUseCase,
		createWorkTypeUseCase,
		updateWorkTypeUseCase,
		deleteWorkTypeUseCase,
		setUserRateUseCase,
		clearUserRateUseCase,
	)

	tagController := controller.NewTagController(
		listTagsUseCase,
		createTagUseCase,
		updateTagUseCase,
		deleteTagUseCase,
	)

	ledgerController := controller.NewLedgerController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		createSaleUseCase,
		listSalesUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		calculatorController,
		workController,
		workTypeController,
		tagController,
		ledgerController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
