package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// projectUseCase implements ProjectUseCase.
type projectUseCase struct {
	projectRepo ProjectRepository
}

// Create stores a new project.
func (p *projectUseCase) Create(
	ctx context.Context,
	input *projectDomain.CreateProjectInput,
) (*projectDomain.Project, error) {
	project := &projectDomain.Project{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := p.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get retrieves a project by ID.
func (p *projectUseCase) Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error) {
	return p.projectRepo.Get(ctx, projectID)
}

// List retrieves projects with pagination.
func (p *projectUseCase) List(ctx context.Context, offset, limit int) ([]*projectDomain.Project, error) {
	return p.projectRepo.List(ctx, offset, limit)
}

// Update replaces the project's name and description.
func (p *projectUseCase) Update(
	ctx context.Context,
	projectID uuid.UUID,
	input *projectDomain.UpdateProjectInput,
) (*projectDomain.Project, error) {
	project, err := p.projectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	project.Description = input.Description

	if err := p.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project.
func (p *projectUseCase) Delete(ctx context.Context, projectID uuid.UUID) error {
	return p.projectRepo.Delete(ctx, projectID)
}

// NewProjectUseCase creates a new ProjectUseCase.
func NewProjectUseCase(projectRepo ProjectRepository) ProjectUseCase {
	return &projectUseCase{projectRepo: projectRepo}
}
