// Package usecase defines business logic interfaces for project management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// ProjectRepository defines the project persistence operations.
type ProjectRepository interface {
	// Create stores a new project.
	Create(ctx context.Context, project *projectDomain.Project) error

	// Get retrieves a project by ID.
	// Returns projectDomain.ErrProjectNotFound if missing.
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)

	// List retrieves projects with pagination.
	List(ctx context.Context, offset, limit int) ([]*projectDomain.Project, error)

	// Update stores the project's name and description.
	Update(ctx context.Context, project *projectDomain.Project) error

	// Delete removes a project and its dependent rows.
	Delete(ctx context.Context, projectID uuid.UUID) error

	// TouchActivity advances the project's last activity date.
	TouchActivity(ctx context.Context, projectID uuid.UUID, at time.Time) error
}

// ProjectUseCase defines project management operations.
type ProjectUseCase interface {
	// Create stores a new project.
	Create(ctx context.Context, input *projectDomain.CreateProjectInput) (*projectDomain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)

	// List retrieves projects with pagination.
	List(ctx context.Context, offset, limit int) ([]*projectDomain.Project, error)

	// Update replaces the project's name and description.
	Update(
		ctx context.Context,
		projectID uuid.UUID,
		input *projectDomain.UpdateProjectInput,
	) (*projectDomain.Project, error)

	// Delete removes a project.
	Delete(ctx context.Context, projectID uuid.UUID) error
}
