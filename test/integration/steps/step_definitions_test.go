// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/worktrack/backend/internal/integration/entrypoint/controller"
	"github.com/worktrack/backend/internal/integration/entrypoint/middleware"
	"github.com/worktrack/backend/internal/integration/persistence"
	"github.com/worktrack/backend/internal/integration/persistence/model"
	"github.com/worktrack/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	resetToken        string
	expiredToken      string
	currentUserID     uuid.UUID
	targetUserID      uuid.UUID
	currentWorkTypeID uuid.UUID
	currentTagID      uuid.UUID
	currentWorkID     uuid.UUID
	lastEntryID       uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("worktrack", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"work_types":            &model.WorkTypeModel{},
			"user_work_type_rates":  &model.UserWorkTypeRateModel{},
			"tags":                  &model.TagModel{},
			"works":                 &model.WorkModel{},
			"work_tags":             &model.WorkTagModel{},
			"expenses":              &model.ExpenseModel{},
			"sales":                 &model.SaleModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a user exists with email "([^"]*)" and role "([^"]*)"$`, test.aUserExistsWithEmailAndRole)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" is the target user$`, test.theUserIsTheTargetUser)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Catalog setup steps
	ctx.Given(`^a work type exists with name "([^"]*)" and price "([^"]*)"$`, test.aWorkTypeExistsWithNameAndPrice)
	ctx.Given(`^a tag exists with name "([^"]*)"$`, test.aTagExistsWithName)
	ctx.Given(`^the user "([^"]*)" has a personal rate of "([^"]*)" for "([^"]*)"$`, test.theUserHasAPersonalRateFor)

	// Record setup steps
	ctx.Given(`^a work record exists for "([^"]*)" of type "([^"]*)" with quantity "([^"]*)" on "([^"]*)"$`, test.aWorkRecordExistsFor)
	ctx.Given(`^the work record is tagged "([^"]*)"$`, test.theWorkRecordIsTagged)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.anExpenseExists)
	ctx.Given(`^a sale exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.aSaleExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.targetUserID = uuid.Nil
	t.currentWorkTypeID = uuid.Nil
	t.currentTagID = uuid.Nil
	t.currentWorkID = uuid.Nil
	t.lastEntryID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)
			workTypeRepo := persistence.NewWorkTypeRepository(testDB.DbConn)
			rateRepo := persistence.NewUserWorkTypeRateRepository(testDB.DbConn)
			tagRepo := persistence.NewTagRepository(testDB.DbConn)
			workRepo := persistence.NewWorkRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			saleRepo := persistence.NewSaleRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			emailService := email.NewService(emailQueueRepo)
			reportCache := adapters.NewReportCache(mock.NewRedis(), 5*time.Minute)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:5173")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

			// Create calculator use cases
			multiplierDivisor := decimal.NewFromInt(10)
			sessions := calculator.NewSessionStore()
			getReportUseCase := calculator.NewGetReportUseCase(reportRepo, reportCache, sessions, multiplierDivisor)
			setOverridesUseCase := calculator.NewSetOverridesUseCase(sessions)
			applyOverridesUseCase := calculator.NewApplyOverridesUseCase(sessions, multiplierDivisor)
			toggleGroupUseCase := calculator.NewToggleGroupUseCase(sessions)

			// Create work type use cases
			listWorkTypesUseCase := worktype.NewListWorkTypesUseCase(workTypeRepo)
			createWorkTypeUseCase := worktype.NewCreateWorkTypeUseCase(workTypeRepo)
			updateWorkTypeUseCase := worktype.NewUpdateWorkTypeUseCase(workTypeRepo, reportCache)
			deleteWorkTypeUseCase := worktype.NewDeleteWorkTypeUseCase(workTypeRepo, workRepo, rateRepo, reportCache)
			setUserRateUseCase := worktype.NewSetUserRateUseCase(workTypeRepo, userRepo, rateRepo, reportCache)
			clearUserRateUseCase := worktype.NewClearUserRateUseCase(rateRepo, reportCache)

			// Create tag use cases
			listTagsUseCase := tag.NewListTagsUseCase(tagRepo)
			createTagUseCase := tag.NewCreateTagUseCase(tagRepo)
			updateTagUseCase := tag.NewUpdateTagUseCase(tagRepo)
			deleteTagUseCase := tag.NewDeleteTagUseCase(tagRepo, workRepo)

			// Create work use cases
			createWorkUseCase := work.NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, reportCache)
			listWorksUseCase := work.NewListWorksUseCase(workRepo)
			updateWorkUseCase := work.NewUpdateWorkUseCase(workRepo, workTypeRepo, tagRepo, reportCache)
			deleteWorkUseCase := work.NewDeleteWorkUseCase(workRepo, reportCache)

			// Create ledger use cases
			createExpenseUseCase := ledger.NewCreateExpenseUseCase(expenseRepo, reportCache)
			listExpensesUseCase := ledger.NewListExpensesUseCase(expenseRepo)
			updateExpenseUseCase := ledger.NewUpdateExpenseUseCase(expenseRepo, reportCache)
			deleteExpenseUseCase := ledger.NewDeleteExpenseUseCase(expenseRepo, reportCache)
			createSaleUseCase := ledger.NewCreateSaleUseCase(saleRepo, reportCache)
			listSalesUseCase := ledger.NewListSalesUseCase(saleRepo)
			updateSaleUseCase := ledger.NewUpdateSaleUseCase(saleRepo, reportCache)
			deleteSaleUseCase := ledger.NewDeleteSaleUseCase(saleRepo, reportCache)

			// Create user use cases
			listUsersUseCase := user.NewListUsersUseCase(userRepo)
			changeRoleUseCase := user.NewChangeRoleUseCase(userRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User", "worker")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User", "worker")
}

func (t *testContext) aUserExistsWithEmailAndRole(email, role string) error {
	return t.createUser(email, "DefaultPass123!", "Test User", role)
}

func (t *testContext) createUser(email, password, name, role string) error {
	userID := uuid.New()
	t.currentUserID = userID

	userModel := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(userModel)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email, "worker"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "worktrack",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "worktrack",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) theUserIsTheTargetUser(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.targetUserID = userModel.ID
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    userModel.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) aWorkTypeExistsWithNameAndPrice(name, price string) error {
	priceValue, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price '%s': %w", price, err)
	}

	workTypeID := uuid.New()
	t.currentWorkTypeID = workTypeID

	now := time.Now().UTC()
	workTypeModel := &model.WorkTypeModel{
		ID:           workTypeID,
		Name:         name,
		PricePerUnit: priceValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(workTypeModel)
	return result.Error
}

func (t *testContext) aTagExistsWithName(name string) error {
	tagID := uuid.New()
	t.currentTagID = tagID

	now := time.Now().UTC()
	tagModel := &model.TagModel{
		ID:        tagID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(tagModel)
	return result.Error
}

func (t *testContext) theUserHasAPersonalRateFor(email, rate, workTypeName string) error {
	rateValue, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", rate, err)
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	var workTypeModel model.WorkTypeModel
	if err := t.db.DbConn.Where("name = ?", workTypeName).First(&workTypeModel).Error; err != nil {
		return fmt.Errorf("work type not found: %w", err)
	}

	now := time.Now().UTC()
	rateModel := &model.UserWorkTypeRateModel{
		ID:           uuid.New(),
		UserID:       userModel.ID,
		WorkTypeID:   workTypeModel.ID,
		PricePerUnit: rateValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(rateModel)
	return result.Error
}

func (t *testContext) aWorkRecordExistsFor(email, workTypeName, quantity, date string) error {
	quantityValue, err := decimal.NewFromString(quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity '%s': %w", quantity, err)
	}
	dateValue, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	var workTypeModel model.WorkTypeModel
	if err := t.db.DbConn.Where("name = ?", workTypeName).First(&workTypeModel).Error; err != nil {
		return fmt.Errorf("work type not found: %w", err)
	}

	workID := uuid.New()
	t.currentWorkID = workID

	now := time.Now().UTC()
	workModel := &model.WorkModel{
		ID:         workID,
		UserID:     userModel.ID,
		WorkTypeID: workTypeModel.ID,
		Quantity:   quantityValue,
		Date:       dateValue,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(workModel)
	return result.Error
}

func (t *testContext) theWorkRecordIsTagged(tagName string) error {
	var tagModel model.TagModel
	if err := t.db.DbConn.Where("name = ?", tagName).First(&tagModel).Error; err != nil {
		return fmt.Errorf("tag not found: %w", err)
	}

	workTagModel := &model.WorkTagModel{
		WorkID:    t.currentWorkID,
		TagID:     tagModel.ID,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(workTagModel)
	return result.Error
}

func (t *testContext) anExpenseExists(description, amount, date string) error {
	amountValue, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	dateValue, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	entryID := uuid.New()
	t.lastEntryID = entryID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          entryID,
		Description: description,
		Amount:      amountValue,
		Date:        dateValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(expenseModel)
	return result.Error
}

func (t *testContext) aSaleExists(description, amount, date string) error {
	amountValue, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	dateValue, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	entryID := uuid.New()
	t.lastEntryID = entryID

	now := time.Now().UTC()
	saleModel := &model.SaleModel{
		ID:          entryID,
		Description: description,
		Amount:      amountValue,
		Date:        dateValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(saleModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{target_user_id}}", t.targetUserID.String())
	content = strings.ReplaceAll(content, "{{work_type_id}}", t.currentWorkTypeID.String())
	content = strings.ReplaceAll(content, "{{tag_id}}", t.currentTagID.String())
	content = strings.ReplaceAll(content, "{{work_id}}", t.currentWorkID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.lastEntryID.String())

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created entity IDs from responses
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastEntryID = id
				if _, hasPrice := responseBody["price_per_unit"]; hasPrice {
					t.currentWorkTypeID = id
				} else if _, hasQuantity := responseBody["quantity"]; hasQuantity {
					t.currentWorkID = id
				} else if _, hasName := responseBody["name"]; hasName {
					t.currentTagID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
