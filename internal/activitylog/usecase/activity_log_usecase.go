package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
)

type activityLogUseCase struct {
	activityLogRepo     ActivityLogRepository
	contributorResolver ContributorResolver
	projectStore        ProjectStore
}

// NewActivityLogUseCase creates a new activity log use case.
func NewActivityLogUseCase(
	activityLogRepo ActivityLogRepository,
	contributorResolver ContributorResolver,
	projectStore ProjectStore,
) ActivityLogUseCase {
	return &activityLogUseCase{
		activityLogRepo:     activityLogRepo,
		contributorResolver: contributorResolver,
		projectStore:        projectStore,
	}
}

// Ingest records a batch of daily rollups. Entries are processed one at a
// time, each upsert atomic on the (project, contributor, date) triple, so a
// partially failed batch can simply be re-sent.
func (u *activityLogUseCase) Ingest(
	ctx context.Context,
	projectID uuid.UUID,
	entries []activityDomain.IngestActivityEntry,
) error {
	var latest time.Time

	for _, entry := range entries {
		contributor, err := u.contributorResolver.GetOrCreateByName(ctx, projectID, entry.ContributorName)
		if err != nil {
			return err
		}

		log := &activityDomain.ActivityLog{
			ID:            uuid.Must(uuid.NewV7()),
			ProjectID:     projectID,
			ContributorID: contributor.ID,
			Date:          entry.Date,
			Count:         entry.Count,
			CreatedAt:     time.Now().UTC(),
		}
		if err := u.activityLogRepo.Upsert(ctx, log); err != nil {
			return err
		}

		if entry.Date.After(latest) {
			latest = entry.Date
		}
	}

	if !latest.IsZero() {
		if err := u.projectStore.TouchActivity(ctx, projectID, latest); err != nil {
			return err
		}
	}

	return nil
}

// ListByProject returns a project's activity logs, newest day first.
func (u *activityLogUseCase) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	offset, limit int,
) ([]*activityDomain.ActivityLog, error) {
	if _, err := u.projectStore.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return u.activityLogRepo.ListByProject(ctx, projectID, offset, limit)
}
