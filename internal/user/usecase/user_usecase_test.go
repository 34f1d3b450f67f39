package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func TestUserUseCase_Get(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	user := &userDomain.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}

	userRepo.On("Get", ctx, user.ID).Return(user, nil)

	got, err := useCase.Get(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_Get_NotFound(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("Get", ctx, userID).Return(nil, userDomain.ErrUserNotFound)

	got, err := useCase.Get(ctx, userID)

	assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	assert.Nil(t, got)
}

func TestUserUseCase_List(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	users := []*userDomain.User{
		{ID: uuid.New(), Email: "ana@example.com"},
		{ID: uuid.New(), Email: "bruno@example.com"},
	}

	userRepo.On("List", ctx, 0, 50).Return(users, nil)

	got, err := useCase.List(ctx, 0, 50)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserUseCase_List_Error(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	repoErr := errors.New("connection lost")

	userRepo.On("List", ctx, 0, 50).Return(nil, repoErr)

	got, err := useCase.List(ctx, 0, 50)

	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, got)
}
