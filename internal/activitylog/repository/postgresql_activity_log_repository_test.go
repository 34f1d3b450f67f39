package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
	"github.com/collabhub/collabhub/internal/testutil"
)

func newTestActivityLog(projectID, contributorID uuid.UUID, date string, count int) *activityDomain.ActivityLog {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &activityDomain.ActivityLog{
		ID:            uuid.Must(uuid.NewV7()),
		ProjectID:     projectID,
		ContributorID: contributorID,
		Date:          day,
		Count:         count,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPostgreSQLActivityLogRepository_UpsertAndList(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLActivityLogRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "postgres", "Website Redesign")
	contributorID := testutil.CreateTestContributor(t, db, "postgres", projectID, "alice")

	log := newTestActivityLog(projectID, contributorID, "2026-05-02", 12)
	require.NoError(t, repo.Upsert(ctx, log))

	logs, err := repo.ListByProject(ctx, projectID, 0, 50)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, log.ID, logs[0].ID)
	assert.Equal(t, contributorID, logs[0].ContributorID)
	assert.Equal(t, 12, logs[0].Count)
	assert.Equal(t, "2026-05-02", logs[0].Date.Format("2006-01-02"))
}

func TestPostgreSQLActivityLogRepository_Upsert_ReplacesCount(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLActivityLogRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "postgres", "Website Redesign")
	contributorID := testutil.CreateTestContributor(t, db, "postgres", projectID, "alice")

	first := newTestActivityLog(projectID, contributorID, "2026-05-02", 12)
	require.NoError(t, repo.Upsert(ctx, first))

	// Re-ingesting the same day replaces the count; the original row wins
	second := newTestActivityLog(projectID, contributorID, "2026-05-02", 20)
	require.NoError(t, repo.Upsert(ctx, second))

	logs, err := repo.ListByProject(ctx, projectID, 0, 50)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, first.ID, logs[0].ID)
	assert.Equal(t, 20, logs[0].Count)
}

func TestPostgreSQLActivityLogRepository_ListByProject_Ordering(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLActivityLogRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "postgres", "Website Redesign")
	otherProjectID := testutil.CreateTestProject(t, db, "postgres", "Mobile App")
	aliceID := testutil.CreateTestContributor(t, db, "postgres", projectID, "alice")
	carolID := testutil.CreateTestContributor(t, db, "postgres", otherProjectID, "carol")

	require.NoError(t, repo.Upsert(ctx, newTestActivityLog(projectID, aliceID, "2026-05-01", 3)))
	require.NoError(t, repo.Upsert(ctx, newTestActivityLog(projectID, aliceID, "2026-05-02", 12)))
	require.NoError(t, repo.Upsert(ctx, newTestActivityLog(otherProjectID, carolID, "2026-05-03", 7)))

	logs, err := repo.ListByProject(ctx, projectID, 0, 50)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Newest day first, scoped to the requested project
	assert.Equal(t, "2026-05-02", logs[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-05-01", logs[1].Date.Format("2006-01-02"))

	// Pagination
	page, err := repo.ListByProject(ctx, projectID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2026-05-01", page[0].Date.Format("2006-01-02"))
}
