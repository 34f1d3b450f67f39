package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/testutil"
)

func TestMySQLAPIKeyRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLAPIKeyRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "mysql", "Website Redesign")
	apiKey := newTestAPIKey(projectID, "ci-agent")
	require.NoError(t, repo.Create(ctx, apiKey))

	retrieved, err := repo.Get(ctx, apiKey.ID)
	require.NoError(t, err)
	assert.Equal(t, apiKey.ID, retrieved.ID)
	assert.Equal(t, projectID, retrieved.ProjectID)
	assert.Equal(t, apiKey.KeyHash, retrieved.KeyHash)
	assert.Equal(t, apiKey.EncryptedKey, retrieved.EncryptedKey)
	assert.True(t, retrieved.IsActive)
}

func TestMySQLAPIKeyRepository_Get_NotFound(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLAPIKeyRepository(db)

	_, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, apikeyDomain.ErrAPIKeyNotFound)
}

func TestMySQLAPIKeyRepository_GetActiveByHashAndRevoke(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLAPIKeyRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "mysql", "Website Redesign")
	apiKey := newTestAPIKey(projectID, "ci-agent")
	require.NoError(t, repo.Create(ctx, apiKey))

	retrieved, err := repo.GetActiveByHash(ctx, apiKey.KeyHash)
	require.NoError(t, err)
	assert.Equal(t, apiKey.ID, retrieved.ID)

	require.NoError(t, repo.Revoke(ctx, projectID, apiKey.ID, time.Now().UTC()))

	_, err = repo.GetActiveByHash(ctx, apiKey.KeyHash)
	assert.ErrorIs(t, err, apikeyDomain.ErrAPIKeyInvalid)

	revoked, err := repo.Get(ctx, apiKey.ID)
	require.NoError(t, err)
	assert.False(t, revoked.IsActive)
	assert.NotNil(t, revoked.RevokedAt)
}
