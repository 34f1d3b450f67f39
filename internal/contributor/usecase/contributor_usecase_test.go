package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// MockContributorRepository is a mock implementation of ContributorRepository
type MockContributorRepository struct {
	mock.Mock
}

func (m *MockContributorRepository) Create(ctx context.Context, contributor *contributorDomain.Contributor) error {
	args := m.Called(ctx, contributor)
	return args.Error(0)
}

func (m *MockContributorRepository) Get(
	ctx context.Context,
	contributorID uuid.UUID,
) (*contributorDomain.Contributor, error) {
	args := m.Called(ctx, contributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contributorDomain.Contributor), args.Error(1)
}

func (m *MockContributorRepository) GetByName(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contributorDomain.Contributor), args.Error(1)
}

func (m *MockContributorRepository) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*contributorDomain.Contributor, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contributorDomain.Contributor), args.Error(1)
}

func (m *MockContributorRepository) Rename(ctx context.Context, contributorID uuid.UUID, name string) error {
	args := m.Called(ctx, contributorID, name)
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

func TestNewContributorUseCase(t *testing.T) {
	useCase := NewContributorUseCase(&MockContributorRepository{}, &MockProjectGetter{})
	assert.NotNil(t, useCase)
}

func TestContributorUseCase_ListByProject(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	expectedContributors := []*contributorDomain.Contributor{
		{ID: uuid.Must(uuid.NewV7()), ProjectID: projectID, Name: "alice"},
		{ID: uuid.Must(uuid.NewV7()), ProjectID: projectID, Name: "bob"},
	}

	projectGetter.On("Get", ctx, projectID).Return(&projectDomain.Project{ID: projectID}, nil)
	contributorRepo.On("ListByProject", ctx, projectID).Return(expectedContributors, nil)

	contributors, err := useCase.ListByProject(ctx, projectID)

	assert.NoError(t, err)
	assert.Len(t, contributors, 2)
	contributorRepo.AssertExpectations(t)
	projectGetter.AssertExpectations(t)
}

func TestContributorUseCase_ListByProject_ProjectNotFound(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	projectGetter.On("Get", ctx, projectID).Return(nil, projectDomain.ErrProjectNotFound)

	contributors, err := useCase.ListByProject(ctx, projectID)

	assert.Error(t, err)
	assert.Nil(t, contributors)
	contributorRepo.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
}

func TestContributorUseCase_Rename_Success(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	contributorID := uuid.Must(uuid.NewV7())
	existing := &contributorDomain.Contributor{
		ID:        contributorID,
		ProjectID: uuid.Must(uuid.NewV7()),
		Name:      "old-name",
		CreatedAt: time.Now().UTC(),
	}

	contributorRepo.On("Get", ctx, contributorID).Return(existing, nil)
	contributorRepo.On("Rename", ctx, contributorID, "new-name").Return(nil)

	contributor, err := useCase.Rename(ctx, contributorID, "new-name")

	require.NoError(t, err)
	assert.Equal(t, "new-name", contributor.Name)
	contributorRepo.AssertExpectations(t)
}

func TestContributorUseCase_Rename_NotFound(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	contributorID := uuid.Must(uuid.NewV7())

	contributorRepo.On("Get", ctx, contributorID).
		Return(nil, contributorDomain.ErrContributorNotFound)

	contributor, err := useCase.Rename(ctx, contributorID, "new-name")

	assert.Error(t, err)
	assert.Nil(t, contributor)
	assert.ErrorIs(t, err, contributorDomain.ErrContributorNotFound)
	contributorRepo.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
}

func TestContributorUseCase_GetOrCreateByName_Existing(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	existing := &contributorDomain.Contributor{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: projectID,
		Name:      "alice",
	}

	contributorRepo.On("GetByName", ctx, projectID, "alice").Return(existing, nil)

	contributor, err := useCase.GetOrCreateByName(ctx, projectID, "alice")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, contributor.ID)
	contributorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContributorUseCase_GetOrCreateByName_CreatesOnFirstSight(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	contributorRepo.On("GetByName", ctx, projectID, "alice").
		Return(nil, contributorDomain.ErrContributorNotFound).Once()
	contributorRepo.On("Create", ctx, mock.AnythingOfType("*domain.Contributor")).Return(nil)

	contributor, err := useCase.GetOrCreateByName(ctx, projectID, "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", contributor.Name)
	assert.Equal(t, projectID, contributor.ProjectID)
	assert.NotEqual(t, uuid.Nil, contributor.ID)
	contributorRepo.AssertExpectations(t)
}

func TestContributorUseCase_GetOrCreateByName_LosesCreationRace(t *testing.T) {
	contributorRepo := &MockContributorRepository{}
	projectGetter := &MockProjectGetter{}
	useCase := NewContributorUseCase(contributorRepo, projectGetter)

	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())
	winner := &contributorDomain.Contributor{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: projectID,
		Name:      "alice",
	}

	contributorRepo.On("GetByName", ctx, projectID, "alice").
		Return(nil, contributorDomain.ErrContributorNotFound).Once()
	contributorRepo.On("Create", ctx, mock.AnythingOfType("*domain.Contributor")).
		Return(contributorDomain.ErrContributorNameUsed)
	contributorRepo.On("GetByName", ctx, projectID, "alice").
		Return(winner, nil).Once()

	contributor, err := useCase.GetOrCreateByName(ctx, projectID, "alice")

	require.NoError(t, err)
	assert.Equal(t, winner.ID, contributor.ID)
	contributorRepo.AssertExpectations(t)
}
