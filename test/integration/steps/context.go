// Package steps contains the Godog step definitions for the BDD suite.
// Scenarios run against the real HTTP server wired through the production
// dependency injector, backed by an in-memory SQLite database and miniredis.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/redis/go-redis/v9"

	"github.com/YenChengLai/expense-tracker-v2/config"
	"github.com/YenChengLai/expense-tracker-v2/internal/infra/dependency"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/persistence/model"
	"github.com/YenChengLai/expense-tracker-v2/test/integration/mock"
)

const testJWTSecret = "integration-test-secret-key-not-for-production"

var (
	serverOnce sync.Once
	baseURL    string
	sharedDB   *mock.Db
	sharedRdb  *redis.Client
)

// testContext carries per-scenario state between steps.
type testContext struct {
	db    *mock.Db
	redis *redis.Client

	client   *http.Client
	response *http.Response
	body     []byte

	headers map[string]string

	// Values captured from seeding steps and responses, substituted into
	// request bodies and URLs via {{placeholder}} syntax.
	placeholders map[string]string
}

func newTestContext() *testContext {
	return &testContext{
		db:           sharedDB,
		redis:        sharedRdb,
		client:       &http.Client{Timeout: 10 * time.Second},
		headers:      make(map[string]string),
		placeholders: make(map[string]string),
	}
}

// InitializeTestSuite starts the application once for the whole suite.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startServer()
	})
}

// InitializeScenario registers all step definitions and resets state
// between scenarios.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	tctx := newTestContext()

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := tctx.db.ClearDB(); err != nil {
			return c, fmt.Errorf("failed to reset database: %w", err)
		}
		if err := mock.ClearRedis(tctx.redis); err != nil {
			return c, fmt.Errorf("failed to reset redis: %w", err)
		}
		tctx.response = nil
		tctx.body = nil
		tctx.headers = make(map[string]string)
		tctx.placeholders = make(map[string]string)
		return c, nil
	})

	tctx.registerSeedSteps(ctx)
	tctx.registerHTTPSteps(ctx)
	tctx.registerAssertionSteps(ctx)
}

// startServer wires the full application against the test doubles and
// serves it on a free port. Runs once per process.
func startServer() {
	serverOnce.Do(func() {
		sharedDB = mock.NewDb("expense_tracker", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"categories":            &model.CategoryModel{},
			"transactions":          &model.TransactionModel{},
			"email_queue":           &model.EmailQueueModel{},
		})
		sharedRdb = mock.NewRedis()

		port := findAvailablePort()

		cfg := &config.Config{
			Server: config.ServerConfig{
				Host:         "127.0.0.1",
				Port:         port,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
				Environment:  "test",
			},
			JWT: config.JWTConfig{
				Secret:             testJWTSecret,
				AccessTokenExpiry:  15 * time.Minute,
				RefreshTokenExpiry: 7 * 24 * time.Hour,
			},
			Email: config.EmailConfig{
				FromName:     "Expense Tracker",
				FromEmail:    "noreply@test.local",
				AppBaseURL:   "http://localhost:5173",
				PollInterval: time.Second,
				BatchSize:    10,
			},
		}

		injector, err := dependency.NewInjector(cfg, sharedDB.DbConn, sharedRdb)
		if err != nil {
			panic("failed to wire test application: " + err.Error())
		}

		// The email worker stays stopped. Scenarios assert on queued rows
		// in email_queue instead of delivery.
		engine := injector.Router.Setup(cfg.Server.Environment)

		baseURL = fmt.Sprintf("http://127.0.0.1:%d", port)

		go func() {
			srv := &http.Server{
				Addr:    fmt.Sprintf("127.0.0.1:%d", port),
				Handler: engine,
			}
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "test server exited: %v\n", err)
			}
		}()

		waitForHealth()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic("failed to find available port: " + err.Error())
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func waitForHealth() {
	client := &http.Client{Timeout: time.Second}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	panic("test server did not become healthy")
}
