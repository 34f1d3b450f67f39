package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
	apperrors "github.com/collabhub/collabhub/internal/errors"
)

// contributorUseCase implements ContributorUseCase.
type contributorUseCase struct {
	contributorRepo ContributorRepository
	projectGetter   ProjectGetter
}

// ListByProject retrieves a project's contributors.
func (c *contributorUseCase) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*contributorDomain.Contributor, error) {
	if _, err := c.projectGetter.Get(ctx, projectID); err != nil {
		return nil, err
	}

	return c.contributorRepo.ListByProject(ctx, projectID)
}

// Rename changes a contributor's name and returns the updated contributor.
func (c *contributorUseCase) Rename(
	ctx context.Context,
	contributorID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	contributor, err := c.contributorRepo.Get(ctx, contributorID)
	if err != nil {
		return nil, err
	}

	if err := c.contributorRepo.Rename(ctx, contributorID, name); err != nil {
		return nil, err
	}

	contributor.Name = name
	return contributor, nil
}

// GetOrCreateByName returns the project's contributor with the given name,
// creating it on first sight. Concurrent first sightings race on the unique
// constraint; the loser re-reads the winner's row.
func (c *contributorUseCase) GetOrCreateByName(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	contributor, err := c.contributorRepo.GetByName(ctx, projectID, name)
	if err == nil {
		return contributor, nil
	}
	if !apperrors.Is(err, contributorDomain.ErrContributorNotFound) {
		return nil, err
	}

	contributor = &contributorDomain.Contributor{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	createErr := c.contributorRepo.Create(ctx, contributor)
	if createErr == nil {
		return contributor, nil
	}
	if apperrors.Is(createErr, contributorDomain.ErrContributorNameUsed) {
		return c.contributorRepo.GetByName(ctx, projectID, name)
	}

	return nil, createErr
}

// NewContributorUseCase creates a new ContributorUseCase.
func NewContributorUseCase(
	contributorRepo ContributorRepository,
	projectGetter ProjectGetter,
) ContributorUseCase {
	return &contributorUseCase{
		contributorRepo: contributorRepo,
		projectGetter:   projectGetter,
	}
}
