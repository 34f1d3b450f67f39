package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/metrics"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// projectUseCaseWithMetrics decorates ProjectUseCase with metrics instrumentation.
type projectUseCaseWithMetrics struct {
	next    ProjectUseCase
	metrics metrics.BusinessMetrics
}

// NewProjectUseCaseWithMetrics wraps a ProjectUseCase with metrics recording.
func NewProjectUseCaseWithMetrics(useCase ProjectUseCase, m metrics.BusinessMetrics) ProjectUseCase {
	return &projectUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for project creation operations.
func (p *projectUseCaseWithMetrics) Create(
	ctx context.Context,
	input *projectDomain.CreateProjectInput,
) (*projectDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "project", "project_create", status)
	p.metrics.RecordDuration(ctx, "project", "project_create", time.Since(start), status)

	return project, err
}

// Get records metrics for project lookups.
func (p *projectUseCaseWithMetrics) Get(
	ctx context.Context,
	projectID uuid.UUID,
) (*projectDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Get(ctx, projectID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "project", "project_get", status)
	p.metrics.RecordDuration(ctx, "project", "project_get", time.Since(start), status)

	return project, err
}

// List records metrics for project list operations.
func (p *projectUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*projectDomain.Project, error) {
	start := time.Now()
	projects, err := p.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "project", "project_list", status)
	p.metrics.RecordDuration(ctx, "project", "project_list", time.Since(start), status)

	return projects, err
}

// Update records metrics for project update operations.
func (p *projectUseCaseWithMetrics) Update(
	ctx context.Context,
	projectID uuid.UUID,
	input *projectDomain.UpdateProjectInput,
) (*projectDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Update(ctx, projectID, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "project", "project_update", status)
	p.metrics.RecordDuration(ctx, "project", "project_update", time.Since(start), status)

	return project, err
}

// Delete records metrics for project deletion operations.
func (p *projectUseCaseWithMetrics) Delete(ctx context.Context, projectID uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, projectID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "project", "project_delete", status)
	p.metrics.RecordDuration(ctx, "project", "project_delete", time.Since(start), status)

	return err
}
