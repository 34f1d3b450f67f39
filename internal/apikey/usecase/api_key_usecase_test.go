package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// MockAPIKeyRepository is a mock implementation of APIKeyRepository
type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, apiKey *apikeyDomain.APIKey) error {
	args := m.Called(ctx, apiKey)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) Get(ctx context.Context, keyID uuid.UUID) (*apikeyDomain.APIKey, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apikeyDomain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) GetActiveByHash(ctx context.Context, keyHash string) (*apikeyDomain.APIKey, error) {
	args := m.Called(ctx, keyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apikeyDomain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*apikeyDomain.APIKey, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*apikeyDomain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) Revoke(
	ctx context.Context,
	projectID uuid.UUID,
	keyID uuid.UUID,
	revokedAt time.Time,
) error {
	args := m.Called(ctx, projectID, keyID, revokedAt)
	return args.Error(0)
}

// MockProjectGetter is a mock implementation of ProjectGetter
type MockProjectGetter struct {
	mock.Mock
}

func (m *MockProjectGetter) Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projectDomain.Project), args.Error(1)
}

// MockKeeper is a mock implementation of service.Keeper
type MockKeeper struct {
	mock.Mock
}

func (m *MockKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestNewAPIKeyUseCase(t *testing.T) {
	useCase := NewAPIKeyUseCase(&MockAPIKeyRepository{}, &MockProjectGetter{}, &MockKeeper{})
	assert.NotNil(t, useCase)
}

func TestAPIKeyUseCase_Issue_Success(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	projectGetter := &MockProjectGetter{}
	keeper := &MockKeeper{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, projectGetter, keeper)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	encrypted := []byte("sealed")

	projectGetter.On("Get", ctx, projectID).Return(&projectDomain.Project{ID: projectID}, nil)
	keeper.On("Encrypt", ctx, mock.AnythingOfType("[]uint8")).Return(encrypted, nil)

	var created *apikeyDomain.APIKey
	apiKeyRepo.On("Create", ctx, mock.AnythingOfType("*domain.APIKey")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*apikeyDomain.APIKey)
		}).
		Return(nil)

	apiKey, rawKey, err := useCase.Issue(ctx, apikeyDomain.IssueAPIKeyInput{
		ProjectID: projectID,
		Name:      "ci-agent",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, apiKey)
	assert.Equal(t, projectID, apiKey.ProjectID)
	assert.Equal(t, "ci-agent", apiKey.Name)
	assert.True(t, apiKey.IsActive)
	assert.Nil(t, apiKey.RevokedAt)
	assert.Equal(t, encrypted, apiKey.EncryptedKey)

	assert.True(t, strings.HasPrefix(rawKey, "chk_"))
	sum := sha256.Sum256([]byte(rawKey))
	assert.Equal(t, hex.EncodeToString(sum[:]), apiKey.KeyHash)

	apiKeyRepo.AssertExpectations(t)
	keeper.AssertExpectations(t)
}

func TestAPIKeyUseCase_Issue_ProjectNotFound(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	projectGetter := &MockProjectGetter{}
	keeper := &MockKeeper{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, projectGetter, keeper)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	projectGetter.On("Get", ctx, projectID).Return(nil, projectDomain.ErrProjectNotFound)

	apiKey, rawKey, err := useCase.Issue(ctx, apikeyDomain.IssueAPIKeyInput{
		ProjectID: projectID,
		Name:      "ci-agent",
	})

	assert.ErrorIs(t, err, projectDomain.ErrProjectNotFound)
	assert.Nil(t, apiKey)
	assert.Empty(t, rawKey)
	apiKeyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	keeper.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything)
}

func TestAPIKeyUseCase_Issue_EncryptError(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	projectGetter := &MockProjectGetter{}
	keeper := &MockKeeper{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, projectGetter, keeper)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	projectGetter.On("Get", ctx, projectID).Return(&projectDomain.Project{ID: projectID}, nil)
	keeper.On("Encrypt", ctx, mock.AnythingOfType("[]uint8")).
		Return(nil, errors.New("keeper unavailable"))

	apiKey, rawKey, err := useCase.Issue(ctx, apikeyDomain.IssueAPIKeyInput{
		ProjectID: projectID,
		Name:      "ci-agent",
	})

	assert.Error(t, err)
	assert.Nil(t, apiKey)
	assert.Empty(t, rawKey)
	apiKeyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAPIKeyUseCase_ListByProject(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, projectGetter, &MockKeeper{})

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	expectedKeys := []*apikeyDomain.APIKey{
		{ID: uuid.Must(uuid.NewV7()), ProjectID: projectID, Name: "ci-agent"},
	}

	projectGetter.On("Get", ctx, projectID).Return(&projectDomain.Project{ID: projectID}, nil)
	apiKeyRepo.On("ListByProject", ctx, projectID).Return(expectedKeys, nil)

	apiKeys, err := useCase.ListByProject(ctx, projectID)

	assert.NoError(t, err)
	assert.Len(t, apiKeys, 1)
	apiKeyRepo.AssertExpectations(t)
}

func TestAPIKeyUseCase_ListByProject_ProjectNotFound(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, projectGetter, &MockKeeper{})

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	projectGetter.On("Get", ctx, projectID).Return(nil, projectDomain.ErrProjectNotFound)

	apiKeys, err := useCase.ListByProject(ctx, projectID)

	assert.ErrorIs(t, err, projectDomain.ErrProjectNotFound)
	assert.Nil(t, apiKeys)
	apiKeyRepo.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
}

func TestAPIKeyUseCase_Revoke(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, &MockProjectGetter{}, &MockKeeper{})

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	keyID := uuid.Must(uuid.NewV7())

	apiKeyRepo.On("Revoke", ctx, projectID, keyID, mock.AnythingOfType("time.Time")).Return(nil)

	err := useCase.Revoke(ctx, projectID, keyID)

	assert.NoError(t, err)
	apiKeyRepo.AssertExpectations(t)
}

func TestAPIKeyUseCase_Authenticate_Success(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, &MockProjectGetter{}, &MockKeeper{})

	ctx := context.Background()
	rawKey := "chk_some-key-material"
	sum := sha256.Sum256([]byte(rawKey))
	expectedHash := hex.EncodeToString(sum[:])
	expectedKey := &apikeyDomain.APIKey{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: uuid.Must(uuid.NewV7()),
		IsActive:  true,
	}

	apiKeyRepo.On("GetActiveByHash", ctx, expectedHash).Return(expectedKey, nil)

	apiKey, err := useCase.Authenticate(ctx, rawKey)

	require.NoError(t, err)
	assert.Equal(t, expectedKey.ProjectID, apiKey.ProjectID)
	apiKeyRepo.AssertExpectations(t)
}

func TestAPIKeyUseCase_Authenticate_EmptyKey(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, &MockProjectGetter{}, &MockKeeper{})

	apiKey, err := useCase.Authenticate(context.Background(), "")

	assert.ErrorIs(t, err, apikeyDomain.ErrAPIKeyInvalid)
	assert.Nil(t, apiKey)
	apiKeyRepo.AssertNotCalled(t, "GetActiveByHash", mock.Anything, mock.Anything)
}

func TestAPIKeyUseCase_Authenticate_UnknownKey(t *testing.T) {
	apiKeyRepo := &MockAPIKeyRepository{}
	useCase := NewAPIKeyUseCase(apiKeyRepo, &MockProjectGetter{}, &MockKeeper{})

	ctx := context.Background()

	apiKeyRepo.On("GetActiveByHash", ctx, mock.AnythingOfType("string")).
		Return(nil, apikeyDomain.ErrAPIKeyInvalid)

	apiKey, err := useCase.Authenticate(ctx, "chk_unknown")

	assert.ErrorIs(t, err, apikeyDomain.ErrAPIKeyInvalid)
	assert.Nil(t, apiKey)
}
