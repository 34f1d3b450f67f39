package app

import (
	"fmt"

	groupHTTP "github.com/collabhub/collabhub/internal/group/http"
	groupRepository "github.com/collabhub/collabhub/internal/group/repository"
	groupUseCase "github.com/collabhub/collabhub/internal/group/usecase"
)

// GroupRepository returns the group repository based on database driver.
func (c *Container) GroupRepository() (groupUseCase.GroupRepository, error) {
	var err error
	c.groupRepositoryInit.Do(func() {
		c.groupRepository, err = c.initGroupRepository()
		if err != nil {
			c.initErrors["groupRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["groupRepository"]; exists {
		return nil, storedErr
	}
	return c.groupRepository, nil
}

// GroupUseCase returns the group use case.
func (c *Container) GroupUseCase() (groupUseCase.GroupUseCase, error) {
	var err error
	c.groupUseCaseInit.Do(func() {
		c.groupUseCase, err = c.initGroupUseCase()
		if err != nil {
			c.initErrors["groupUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["groupUseCase"]; exists {
		return nil, storedErr
	}
	return c.groupUseCase, nil
}

// GroupHandler returns the HTTP handler for group management operations.
func (c *Container) GroupHandler() (*groupHTTP.GroupHandler, error) {
	var err error
	c.groupHandlerInit.Do(func() {
		c.groupHandler, err = c.initGroupHandler()
		if err != nil {
			c.initErrors["groupHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["groupHandler"]; exists {
		return nil, storedErr
	}
	return c.groupHandler, nil
}

// initGroupRepository creates the group repository based on the database driver.
func (c *Container) initGroupRepository() (groupUseCase.GroupRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for group repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return groupRepository.NewPostgreSQLGroupRepository(db), nil
	case "mysql":
		return groupRepository.NewMySQLGroupRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initGroupUseCase creates the group use case with all its dependencies.
func (c *Container) initGroupUseCase() (groupUseCase.GroupUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for group use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for group use case: %w", err)
	}

	return groupUseCase.NewGroupUseCase(txManager, groupRepo), nil
}

// initGroupHandler creates the group HTTP handler with all its dependencies.
func (c *Container) initGroupHandler() (*groupHTTP.GroupHandler, error) {
	useCase, err := c.GroupUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get group use case for group handler: %w", err)
	}

	return groupHTTP.NewGroupHandler(useCase, c.Logger()), nil
}
