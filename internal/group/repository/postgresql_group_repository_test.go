package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
	"github.com/collabhub/collabhub/internal/testutil"
)

func newTestGroup(key, name string) *groupDomain.Group {
	return &groupDomain.Group{
		ID:   uuid.Must(uuid.NewV7()),
		Key:  key,
		Name: name,
		Permissions: []authDomain.PermissionKey{
			authDomain.ViewAllProjects,
			authDomain.ManageAllProjects,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestNewPostgreSQLGroupRepository(t *testing.T) {
	repo := NewPostgreSQLGroupRepository(nil)
	assert.NotNil(t, repo)
}

func TestPostgreSQLGroupRepository_Create(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRepository(db)
	ctx := context.Background()

	group := newTestGroup("project_admins", "Project Admins")
	require.NoError(t, repo.Create(ctx, group))

	retrieved, err := repo.Get(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.ID, retrieved.ID)
	assert.Equal(t, "project_admins", retrieved.Key)
	assert.Equal(t, "Project Admins", retrieved.Name)
	assert.ElementsMatch(t, group.Permissions, retrieved.Permissions)
	assert.WithinDuration(t, group.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestPostgreSQLGroupRepository_Create_DuplicateKey(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestGroup("admins", "Admins")))

	err := repo.Create(ctx, newTestGroup("admins", "ADMINS"))
	assert.ErrorIs(t, err, groupDomain.ErrGroupNameUsed)
}

func TestPostgreSQLGroupRepository_Get_NotFound(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRepository(db)

	_, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, groupDomain.ErrGroupNotFound)
}

func TestPostgreSQLGroupRepository_List(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestGroup("viewers", "Viewers")))
	require.NoError(t, repo.Create(ctx, newTestGroup("admins", "Admins")))

	groups, err := repo.List(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Ordered by key
	assert.Equal(t, "admins", groups[0].Key)
	assert.Equal(t, "viewers", groups[1].Key)
	assert.NotEmpty(t, groups[0].Permissions)

	// Pagination
	groups, err = repo.List(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "viewers", groups[0].Key)
}

func TestPostgreSQLGroupRepository_ReplaceMembers(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRepository(db)
	ctx := context.Background()

	group := newTestGroup("admins", "Admins")
	require.NoError(t, repo.Create(ctx, group))

	firstUser := testutil.CreateTestUser(t, db, "postgres", "first@example.com")
	secondUser := testutil.CreateTestUser(t, db, "postgres", "second@example.com")

	require.NoError(t, repo.ReplaceMembers(ctx, group.ID, []uuid.UUID{firstUser, secondUser}))
	assert.ElementsMatch(t, []uuid.UUID{firstUser, secondUser}, groupMemberIDs(t, db, group.ID))

	// Replacing swaps the full membership, it does not append
	require.NoError(t, repo.ReplaceMembers(ctx, group.ID, []uuid.UUID{secondUser}))
	assert.ElementsMatch(t, []uuid.UUID{secondUser}, groupMemberIDs(t, db, group.ID))

	// An empty set clears the group
	require.NoError(t, repo.ReplaceMembers(ctx, group.ID, nil))
	assert.Empty(t, groupMemberIDs(t, db, group.ID))
}

func groupMemberIDs(t *testing.T, db *sql.DB, groupID uuid.UUID) []uuid.UUID {
	t.Helper()

	rows, err := db.QueryContext(context.Background(),
		`SELECT user_id FROM user_groups WHERE group_id = $1`, groupID)
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}
