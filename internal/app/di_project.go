package app

import (
	"fmt"

	contributorHTTP "github.com/collabhub/collabhub/internal/contributor/http"
	contributorRepository "github.com/collabhub/collabhub/internal/contributor/repository"
	contributorUseCase "github.com/collabhub/collabhub/internal/contributor/usecase"
	projectHTTP "github.com/collabhub/collabhub/internal/project/http"
	projectRepository "github.com/collabhub/collabhub/internal/project/repository"
	projectUseCase "github.com/collabhub/collabhub/internal/project/usecase"
	projectGroupHTTP "github.com/collabhub/collabhub/internal/projectgroup/http"
	projectGroupRepository "github.com/collabhub/collabhub/internal/projectgroup/repository"
	projectGroupUseCase "github.com/collabhub/collabhub/internal/projectgroup/usecase"
)

// ProjectRepository returns the project repository based on database driver.
func (c *Container) ProjectRepository() (projectUseCase.ProjectRepository, error) {
	var err error
	c.projectRepositoryInit.Do(func() {
		c.projectRepository, err = c.initProjectRepository()
		if err != nil {
			c.initErrors["projectRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectRepository"]; exists {
		return nil, storedErr
	}
	return c.projectRepository, nil
}

// ProjectUseCase returns the project use case.
func (c *Container) ProjectUseCase() (projectUseCase.ProjectUseCase, error) {
	var err error
	c.projectUseCaseInit.Do(func() {
		c.projectUseCase, err = c.initProjectUseCase()
		if err != nil {
			c.initErrors["projectUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectUseCase"]; exists {
		return nil, storedErr
	}
	return c.projectUseCase, nil
}

// ProjectGroupRepository returns the project group repository based on database driver.
func (c *Container) ProjectGroupRepository() (projectGroupUseCase.ProjectGroupRepository, error) {
	var err error
	c.projectGroupRepoInit.Do(func() {
		c.projectGroupRepository, err = c.initProjectGroupRepository()
		if err != nil {
			c.initErrors["projectGroupRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectGroupRepository"]; exists {
		return nil, storedErr
	}
	return c.projectGroupRepository, nil
}

// ProjectGroupUseCase returns the project group use case.
func (c *Container) ProjectGroupUseCase() (projectGroupUseCase.ProjectGroupUseCase, error) {
	var err error
	c.projectGroupUseCaseInit.Do(func() {
		c.projectGroupUseCase, err = c.initProjectGroupUseCase()
		if err != nil {
			c.initErrors["projectGroupUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectGroupUseCase"]; exists {
		return nil, storedErr
	}
	return c.projectGroupUseCase, nil
}

// ContributorRepository returns the contributor repository based on database driver.
func (c *Container) ContributorRepository() (contributorUseCase.ContributorRepository, error) {
	var err error
	c.contributorRepoInit.Do(func() {
		c.contributorRepository, err = c.initContributorRepository()
		if err != nil {
			c.initErrors["contributorRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contributorRepository"]; exists {
		return nil, storedErr
	}
	return c.contributorRepository, nil
}

// ContributorUseCase returns the contributor use case.
func (c *Container) ContributorUseCase() (contributorUseCase.ContributorUseCase, error) {
	var err error
	c.contributorUseCaseInit.Do(func() {
		c.contributorUseCase, err = c.initContributorUseCase()
		if err != nil {
			c.initErrors["contributorUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contributorUseCase"]; exists {
		return nil, storedErr
	}
	return c.contributorUseCase, nil
}

// ProjectHandler returns the HTTP handler for project management operations.
func (c *Container) ProjectHandler() (*projectHTTP.ProjectHandler, error) {
	var err error
	c.projectHandlerInit.Do(func() {
		c.projectHandler, err = c.initProjectHandler()
		if err != nil {
			c.initErrors["projectHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectHandler"]; exists {
		return nil, storedErr
	}
	return c.projectHandler, nil
}

// ProjectGroupHandler returns the HTTP handler for project group operations.
func (c *Container) ProjectGroupHandler() (*projectGroupHTTP.ProjectGroupHandler, error) {
	var err error
	c.projectGroupHandlerInit.Do(func() {
		c.projectGroupHandler, err = c.initProjectGroupHandler()
		if err != nil {
			c.initErrors["projectGroupHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectGroupHandler"]; exists {
		return nil, storedErr
	}
	return c.projectGroupHandler, nil
}

// ContributorHandler returns the HTTP handler for contributor operations.
func (c *Container) ContributorHandler() (*contributorHTTP.ContributorHandler, error) {
	var err error
	c.contributorHandlerInit.Do(func() {
		c.contributorHandler, err = c.initContributorHandler()
		if err != nil {
			c.initErrors["contributorHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contributorHandler"]; exists {
		return nil, storedErr
	}
	return c.contributorHandler, nil
}

// initProjectRepository creates the project repository based on the database driver.
func (c *Container) initProjectRepository() (projectUseCase.ProjectRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for project repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return projectRepository.NewPostgreSQLProjectRepository(db), nil
	case "mysql":
		return projectRepository.NewMySQLProjectRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProjectUseCase creates the project use case with all its dependencies.
func (c *Container) initProjectUseCase() (projectUseCase.ProjectUseCase, error) {
	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for project use case: %w", err)
	}

	baseUseCase := projectUseCase.NewProjectUseCase(projectRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for project use case: %w", err)
		}
		return projectUseCase.NewProjectUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProjectGroupRepository creates the project group repository based on the database driver.
func (c *Container) initProjectGroupRepository() (projectGroupUseCase.ProjectGroupRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for project group repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return projectGroupRepository.NewPostgreSQLProjectGroupRepository(db), nil
	case "mysql":
		return projectGroupRepository.NewMySQLProjectGroupRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProjectGroupUseCase creates the project group use case with all its dependencies.
func (c *Container) initProjectGroupUseCase() (projectGroupUseCase.ProjectGroupUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for project group use case: %w", err)
	}

	projectGroupRepo, err := c.ProjectGroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project group repository for project group use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for project group use case: %w", err)
	}

	return projectGroupUseCase.NewProjectGroupUseCase(txManager, projectGroupRepo, projectRepo), nil
}

// initContributorRepository creates the contributor repository based on the database driver.
func (c *Container) initContributorRepository() (contributorUseCase.ContributorRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for contributor repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return contributorRepository.NewPostgreSQLContributorRepository(db), nil
	case "mysql":
		return contributorRepository.NewMySQLContributorRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initContributorUseCase creates the contributor use case with all its dependencies.
func (c *Container) initContributorUseCase() (contributorUseCase.ContributorUseCase, error) {
	contributorRepo, err := c.ContributorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor repository for contributor use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for contributor use case: %w", err)
	}

	return contributorUseCase.NewContributorUseCase(contributorRepo, projectRepo), nil
}

// initProjectHandler creates the project HTTP handler with all its dependencies.
func (c *Container) initProjectHandler() (*projectHTTP.ProjectHandler, error) {
	useCase, err := c.ProjectUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get project use case for project handler: %w", err)
	}

	return projectHTTP.NewProjectHandler(useCase, c.Logger()), nil
}

// initProjectGroupHandler creates the project group HTTP handler with all its dependencies.
func (c *Container) initProjectGroupHandler() (*projectGroupHTTP.ProjectGroupHandler, error) {
	useCase, err := c.ProjectGroupUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get project group use case for project group handler: %w", err)
	}

	return projectGroupHTTP.NewProjectGroupHandler(useCase, c.Logger()), nil
}

// initContributorHandler creates the contributor HTTP handler with all its dependencies.
func (c *Container) initContributorHandler() (*contributorHTTP.ContributorHandler, error) {
	useCase, err := c.ContributorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor use case for contributor handler: %w", err)
	}

	return contributorHTTP.NewContributorHandler(useCase, c.Logger()), nil
}
