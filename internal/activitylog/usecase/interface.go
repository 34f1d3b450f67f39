// Package usecase provides business logic for activity log ingestion and queries.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// ActivityLogRepository defines the interface for activity log data access.
type ActivityLogRepository interface {
	Upsert(ctx context.Context, log *activityDomain.ActivityLog) error
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*activityDomain.ActivityLog, error)
}

// ContributorResolver resolves contributor names to records, creating them
// on first sight. It is satisfied by the contributor use case.
type ContributorResolver interface {
	GetOrCreateByName(ctx context.Context, projectID uuid.UUID, name string) (*contributorDomain.Contributor, error)
}

// ProjectStore resolves projects and advances their last activity date. It
// is satisfied by the project repository.
type ProjectStore interface {
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)
	TouchActivity(ctx context.Context, projectID uuid.UUID, at time.Time) error
}

// ActivityLogUseCase defines the interface for activity log business operations.
type ActivityLogUseCase interface {
	// Ingest records a batch of daily rollups for the project identified by
	// the presenting API key. Contributors are created on first sight and
	// the project's last activity date is advanced.
	Ingest(ctx context.Context, projectID uuid.UUID, entries []activityDomain.IngestActivityEntry) error
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*activityDomain.ActivityLog, error)
}
