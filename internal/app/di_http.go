package app

import (
	"fmt"

	"github.com/collabhub/collabhub/internal/http"
)

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	grantRepo, err := c.GrantRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get grant repository for http server: %w", err)
	}

	apiKeyUC, err := c.APIKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key use case for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	groupHandler, err := c.GroupHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get group handler for http server: %w", err)
	}

	projectHandler, err := c.ProjectHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get project handler for http server: %w", err)
	}

	projectGroupHandler, err := c.ProjectGroupHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get project group handler for http server: %w", err)
	}

	contributorHandler, err := c.ContributorHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor handler for http server: %w", err)
	}

	apiKeyHandler, err := c.APIKeyHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key handler for http server: %w", err)
	}

	activityLogHandler, err := c.ActivityLogHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log handler for http server: %w", err)
	}

	server := http.NewServer(http.Dependencies{
		Config:          c.config,
		Logger:          c.Logger(),
		TokenService:    c.TokenService(),
		GrantRepository: grantRepo,
		APIKeyUseCase:   apiKeyUC,
		MetricsProvider: metricsProvider,
		Handlers: http.Handlers{
			Auth:         authHandler,
			User:         userHandler,
			Group:        groupHandler,
			Project:      projectHandler,
			ProjectGroup: projectGroupHandler,
			Contributor:  contributorHandler,
			APIKey:       apiKeyHandler,
			ActivityLog:  activityLogHandler,
		},
	})

	return server, nil
}

// initMetricsServer creates the metrics server with all its dependencies.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		metricsProvider,
	), nil
}
