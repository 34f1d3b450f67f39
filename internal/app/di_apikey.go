package app

import (
	"context"
	"fmt"

	activityHTTP "github.com/collabhub/collabhub/internal/activitylog/http"
	activityRepository "github.com/collabhub/collabhub/internal/activitylog/repository"
	activityUseCase "github.com/collabhub/collabhub/internal/activitylog/usecase"
	apikeyHTTP "github.com/collabhub/collabhub/internal/apikey/http"
	apikeyRepository "github.com/collabhub/collabhub/internal/apikey/repository"
	apikeyService "github.com/collabhub/collabhub/internal/apikey/service"
	apikeyUseCase "github.com/collabhub/collabhub/internal/apikey/usecase"
)

// Keeper returns the encryption keeper used to protect stored API keys.
// A KMS-backed keeper is used when a keeper URI is configured, otherwise a
// local ChaCha20-Poly1305 keeper is built from the configured secret.
func (c *Container) Keeper() (apikeyService.Keeper, error) {
	var err error
	c.keeperInit.Do(func() {
		c.keeper, err = c.initKeeper()
		if err != nil {
			c.initErrors["keeper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keeper"]; exists {
		return nil, storedErr
	}
	return c.keeper, nil
}

// APIKeyRepository returns the API key repository based on database driver.
func (c *Container) APIKeyRepository() (apikeyUseCase.APIKeyRepository, error) {
	var err error
	c.apiKeyRepositoryInit.Do(func() {
		c.apiKeyRepository, err = c.initAPIKeyRepository()
		if err != nil {
			c.initErrors["apiKeyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyRepository"]; exists {
		return nil, storedErr
	}
	return c.apiKeyRepository, nil
}

// APIKeyUseCase returns the API key use case.
func (c *Container) APIKeyUseCase() (apikeyUseCase.APIKeyUseCase, error) {
	var err error
	c.apiKeyUseCaseInit.Do(func() {
		c.apiKeyUseCase, err = c.initAPIKeyUseCase()
		if err != nil {
			c.initErrors["apiKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.apiKeyUseCase, nil
}

// ActivityLogRepository returns the activity log repository based on database driver.
func (c *Container) ActivityLogRepository() (activityUseCase.ActivityLogRepository, error) {
	var err error
	c.activityLogRepoInit.Do(func() {
		c.activityLogRepository, err = c.initActivityLogRepository()
		if err != nil {
			c.initErrors["activityLogRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["activityLogRepository"]; exists {
		return nil, storedErr
	}
	return c.activityLogRepository, nil
}

// ActivityLogUseCase returns the activity log use case.
func (c *Container) ActivityLogUseCase() (activityUseCase.ActivityLogUseCase, error) {
	var err error
	c.activityLogUseCaseInit.Do(func() {
		c.activityLogUseCase, err = c.initActivityLogUseCase()
		if err != nil {
			c.initErrors["activityLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["activityLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.activityLogUseCase, nil
}

// APIKeyHandler returns the HTTP handler for API key management operations.
func (c *Container) APIKeyHandler() (*apikeyHTTP.APIKeyHandler, error) {
	var err error
	c.apiKeyHandlerInit.Do(func() {
		c.apiKeyHandler, err = c.initAPIKeyHandler()
		if err != nil {
			c.initErrors["apiKeyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyHandler"]; exists {
		return nil, storedErr
	}
	return c.apiKeyHandler, nil
}

// ActivityLogHandler returns the HTTP handler for activity log operations.
func (c *Container) ActivityLogHandler() (*activityHTTP.ActivityLogHandler, error) {
	var err error
	c.activityLogHandlerInit.Do(func() {
		c.activityLogHandler, err = c.initActivityLogHandler()
		if err != nil {
			c.initErrors["activityLogHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["activityLogHandler"]; exists {
		return nil, storedErr
	}
	return c.activityLogHandler, nil
}

// initKeeper creates the encryption keeper based on configuration.
func (c *Container) initKeeper() (apikeyService.Keeper, error) {
	if c.config.APIKeyKeeperURI != "" {
		keeper, err := apikeyService.OpenKMSKeeper(context.Background(), c.config.APIKeyKeeperURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		return keeper, nil
	}

	keeper, err := apikeyService.NewLocalKeeper(c.config.APIKeyLocalSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create local keeper: %w", err)
	}
	return keeper, nil
}

// initAPIKeyRepository creates the API key repository based on the database driver.
func (c *Container) initAPIKeyRepository() (apikeyUseCase.APIKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for api key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return apikeyRepository.NewPostgreSQLAPIKeyRepository(db), nil
	case "mysql":
		return apikeyRepository.NewMySQLAPIKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAPIKeyUseCase creates the API key use case with all its dependencies.
func (c *Container) initAPIKeyUseCase() (apikeyUseCase.APIKeyUseCase, error) {
	apiKeyRepo, err := c.APIKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key repository for api key use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for api key use case: %w", err)
	}

	keeper, err := c.Keeper()
	if err != nil {
		return nil, fmt.Errorf("failed to get keeper for api key use case: %w", err)
	}

	baseUseCase := apikeyUseCase.NewAPIKeyUseCase(apiKeyRepo, projectRepo, keeper)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for api key use case: %w", err)
		}
		return apikeyUseCase.NewAPIKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initActivityLogRepository creates the activity log repository based on the database driver.
func (c *Container) initActivityLogRepository() (activityUseCase.ActivityLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for activity log repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return activityRepository.NewPostgreSQLActivityLogRepository(db), nil
	case "mysql":
		return activityRepository.NewMySQLActivityLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initActivityLogUseCase creates the activity log use case with all its dependencies.
func (c *Container) initActivityLogUseCase() (activityUseCase.ActivityLogUseCase, error) {
	activityLogRepo, err := c.ActivityLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log repository for activity log use case: %w", err)
	}

	contributorUC, err := c.ContributorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor use case for activity log use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for activity log use case: %w", err)
	}

	return activityUseCase.NewActivityLogUseCase(activityLogRepo, contributorUC, projectRepo), nil
}

// initAPIKeyHandler creates the API key HTTP handler with all its dependencies.
func (c *Container) initAPIKeyHandler() (*apikeyHTTP.APIKeyHandler, error) {
	useCase, err := c.APIKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key use case for api key handler: %w", err)
	}

	return apikeyHTTP.NewAPIKeyHandler(useCase, c.Logger()), nil
}

// initActivityLogHandler creates the activity log HTTP handler with all its dependencies.
func (c *Container) initActivityLogHandler() (*activityHTTP.ActivityLogHandler, error) {
	useCase, err := c.ActivityLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log use case for activity log handler: %w", err)
	}

	return activityHTTP.NewActivityLogHandler(useCase, c.Logger()), nil
}
