// Package usecase defines business logic interfaces for contributor management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// ContributorRepository defines the contributor persistence operations.
type ContributorRepository interface {
	// Create stores a new contributor.
	// Returns contributorDomain.ErrContributorNameUsed when the name is
	// taken within the project.
	Create(ctx context.Context, contributor *contributorDomain.Contributor) error

	// Get retrieves a contributor by ID.
	// Returns contributorDomain.ErrContributorNotFound if missing.
	Get(ctx context.Context, contributorID uuid.UUID) (*contributorDomain.Contributor, error)

	// GetByName retrieves a project's contributor by name.
	GetByName(ctx context.Context, projectID uuid.UUID, name string) (*contributorDomain.Contributor, error)

	// ListByProject retrieves a project's contributors ordered by name.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*contributorDomain.Contributor, error)

	// Rename changes a contributor's name.
	Rename(ctx context.Context, contributorID uuid.UUID, name string) error
}

// ProjectGetter looks up projects; satisfied by the project repository.
type ProjectGetter interface {
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)
}

// ContributorUseCase defines contributor management operations.
type ContributorUseCase interface {
	// ListByProject retrieves a project's contributors.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*contributorDomain.Contributor, error)

	// Rename changes a contributor's name. A duplicate name within the
	// project is a conflict.
	Rename(ctx context.Context, contributorID uuid.UUID, name string) (*contributorDomain.Contributor, error)

	// GetOrCreateByName returns the project's contributor with the given
	// name, creating it on first sight. Used by activity ingestion.
	GetOrCreateByName(
		ctx context.Context,
		projectID uuid.UUID,
		name string,
	) (*contributorDomain.Contributor, error)
}
