// Package usecase defines business logic interfaces for project group management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
	projectGroupDomain "github.com/collabhub/collabhub/internal/projectgroup/domain"
)

// ProjectGroupRepository defines the project group persistence operations.
type ProjectGroupRepository interface {
	// Create stores a new project group with its permissions.
	// Returns projectGroupDomain.ErrProjectGroupNameUsed when the key is
	// taken within the project.
	Create(ctx context.Context, group *projectGroupDomain.ProjectGroup) error

	// Get retrieves a project group with permissions and member IDs.
	// Returns projectGroupDomain.ErrProjectGroupNotFound if missing.
	Get(ctx context.Context, groupID uuid.UUID) (*projectGroupDomain.ProjectGroup, error)

	// ListByProject retrieves a project's groups ordered by key.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*projectGroupDomain.ProjectGroup, error)

	// Delete removes a project group scoped by its project.
	Delete(ctx context.Context, projectID, groupID uuid.UUID) error

	// ReplaceMembers swaps the project group's membership for the given user set.
	ReplaceMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error
}

// ProjectGetter looks up projects; satisfied by the project repository.
type ProjectGetter interface {
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)
}

// ProjectGroupUseCase defines project group management operations.
type ProjectGroupUseCase interface {
	// Create stores a new project group with its permissions and initial members.
	// The machine key is derived from the name; a duplicate key within the
	// project is a conflict.
	Create(
		ctx context.Context,
		input *projectGroupDomain.CreateProjectGroupInput,
	) (*projectGroupDomain.ProjectGroup, error)

	// ListByProject retrieves a project's groups.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*projectGroupDomain.ProjectGroup, error)

	// Delete removes a project group scoped by its project.
	Delete(ctx context.Context, projectID, groupID uuid.UUID) error
}
