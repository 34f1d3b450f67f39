// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	activityHTTP "github.com/collabhub/collabhub/internal/activitylog/http"
	activityUseCase "github.com/collabhub/collabhub/internal/activitylog/usecase"
	apikeyHTTP "github.com/collabhub/collabhub/internal/apikey/http"
	apikeyService "github.com/collabhub/collabhub/internal/apikey/service"
	apikeyUseCase "github.com/collabhub/collabhub/internal/apikey/usecase"
	authHTTP "github.com/collabhub/collabhub/internal/auth/http"
	authService "github.com/collabhub/collabhub/internal/auth/service"
	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
	"github.com/collabhub/collabhub/internal/config"
	contributorHTTP "github.com/collabhub/collabhub/internal/contributor/http"
	contributorUseCase "github.com/collabhub/collabhub/internal/contributor/usecase"
	"github.com/collabhub/collabhub/internal/database"
	groupHTTP "github.com/collabhub/collabhub/internal/group/http"
	groupUseCase "github.com/collabhub/collabhub/internal/group/usecase"
	"github.com/collabhub/collabhub/internal/http"
	"github.com/collabhub/collabhub/internal/metrics"
	projectHTTP "github.com/collabhub/collabhub/internal/project/http"
	projectUseCase "github.com/collabhub/collabhub/internal/project/usecase"
	projectGroupHTTP "github.com/collabhub/collabhub/internal/projectgroup/http"
	projectGroupUseCase "github.com/collabhub/collabhub/internal/projectgroup/usecase"
	userHTTP "github.com/collabhub/collabhub/internal/user/http"
	userUseCase "github.com/collabhub/collabhub/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	tokenService    authService.TokenService
	passwordService authService.PasswordService
	keeper          apikeyService.Keeper

	// Repositories
	userRepository         authUseCase.UserRepository
	grantRepository        authUseCase.GrantRepository
	groupRepository        groupUseCase.GroupRepository
	projectRepository      projectUseCase.ProjectRepository
	projectGroupRepository projectGroupUseCase.ProjectGroupRepository
	contributorRepository  contributorUseCase.ContributorRepository
	apiKeyRepository       apikeyUseCase.APIKeyRepository
	activityLogRepository  activityUseCase.ActivityLogRepository

	// Use Cases
	authUseCase         authUseCase.AuthUseCase
	userUseCase         userUseCase.UserUseCase
	groupUseCase        groupUseCase.GroupUseCase
	projectUseCase      projectUseCase.ProjectUseCase
	projectGroupUseCase projectGroupUseCase.ProjectGroupUseCase
	contributorUseCase  contributorUseCase.ContributorUseCase
	apiKeyUseCase       apikeyUseCase.APIKeyUseCase
	activityLogUseCase  activityUseCase.ActivityLogUseCase

	// Handlers
	authHandler         *authHTTP.AuthHandler
	userHandler         *userHTTP.UserHandler
	groupHandler        *groupHTTP.GroupHandler
	projectHandler      *projectHTTP.ProjectHandler
	projectGroupHandler *projectGroupHTTP.ProjectGroupHandler
	contributorHandler  *contributorHTTP.ContributorHandler
	apiKeyHandler       *apikeyHTTP.APIKeyHandler
	activityLogHandler  *activityHTTP.ActivityLogHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                      sync.Mutex
	loggerInit              sync.Once
	dbInit                  sync.Once
	txManagerInit           sync.Once
	metricsProviderInit     sync.Once
	businessMetricsInit     sync.Once
	tokenServiceInit        sync.Once
	passwordServiceInit     sync.Once
	keeperInit              sync.Once
	userRepositoryInit      sync.Once
	grantRepositoryInit     sync.Once
	groupRepositoryInit     sync.Once
	projectRepositoryInit   sync.Once
	projectGroupRepoInit    sync.Once
	contributorRepoInit     sync.Once
	apiKeyRepositoryInit    sync.Once
	activityLogRepoInit     sync.Once
	authUseCaseInit         sync.Once
	userUseCaseInit         sync.Once
	groupUseCaseInit        sync.Once
	projectUseCaseInit      sync.Once
	projectGroupUseCaseInit sync.Once
	contributorUseCaseInit  sync.Once
	apiKeyUseCaseInit       sync.Once
	activityLogUseCaseInit  sync.Once
	authHandlerInit         sync.Once
	userHandlerInit         sync.Once
	groupHandlerInit        sync.Once
	projectHandlerInit      sync.Once
	projectGroupHandlerInit sync.Once
	contributorHandlerInit  sync.Once
	apiKeyHandlerInit       sync.Once
	activityLogHandlerInit  sync.Once
	httpServerInit          sync.Once
	metricsServerInit       sync.Once
	initErrors              map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus metrics provider.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// It requires metrics to be enabled in configuration.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP servers if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush metrics if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the Prometheus metrics provider.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder backed by the metrics provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("metrics are disabled")
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}
