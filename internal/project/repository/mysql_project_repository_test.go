package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
	"github.com/collabhub/collabhub/internal/testutil"
)

func TestMySQLProjectRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLProjectRepository(db)
	ctx := context.Background()

	project := newTestProject("Website Redesign")
	require.NoError(t, repo.Create(ctx, project))

	retrieved, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, retrieved.ID)
	assert.Equal(t, "Website Redesign", retrieved.Name)
	assert.Nil(t, retrieved.LastActivityDate)
	assert.WithinDuration(t, project.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestMySQLProjectRepository_Get_NotFound(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLProjectRepository(db)

	_, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, projectDomain.ErrProjectNotFound)
}

func TestMySQLProjectRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLProjectRepository(db)
	ctx := context.Background()

	project := newTestProject("Old Name")
	require.NoError(t, repo.Create(ctx, project))

	project.Name = "New Name"
	require.NoError(t, repo.Update(ctx, project))

	retrieved, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", retrieved.Name)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.Get(ctx, project.ID)
	assert.ErrorIs(t, err, projectDomain.ErrProjectNotFound)
}
