package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
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

// MockTokenService is a mock implementation of authService.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uuid.UUID) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockPasswordService is a mock implementation of authService.PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

func TestAuthUseCase_SignUp_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	expiresAt := time.Now().UTC().Add(time.Hour)

	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, userDomain.ErrUserNotFound)
	passwordService.On("HashPassword", "s3cret-pass").Return("argon2id-hash", nil)

	var createdUser *userDomain.User
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*userDomain.User)
		}).
		Return(nil)
	tokenService.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed-token", expiresAt, nil)

	output, err := useCase.SignUp(ctx, &SignUpInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, createdUser, output.User)
	assert.NotEqual(t, uuid.Nil, createdUser.ID)
	assert.Equal(t, "ana@example.com", createdUser.Email)
	assert.Equal(t, "Ana", createdUser.Name)
	assert.Equal(t, "argon2id-hash", createdUser.PasswordHash)
	userRepo.AssertExpectations(t)
	tokenService.AssertExpectations(t)
	passwordService.AssertExpectations(t)
}

func TestAuthUseCase_SignUp_EmailInUse(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	existing := &userDomain.User{ID: uuid.New(), Email: "ana@example.com"}

	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(existing, nil)

	output, err := useCase.SignUp(ctx, &SignUpInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, userDomain.ErrEmailInUse)
	assert.Nil(t, output)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	passwordService.AssertNotCalled(t, "HashPassword", mock.Anything)
}

func TestAuthUseCase_SignUp_RepositoryError(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	repoErr := errors.New("connection lost")

	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, repoErr)

	output, err := useCase.SignUp(ctx, &SignUpInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, output)
}

func TestAuthUseCase_SignIn_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	user := &userDomain.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "argon2id-hash",
	}
	expiresAt := time.Now().UTC().Add(time.Hour)

	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)
	passwordService.On("ComparePassword", "s3cret-pass", "argon2id-hash").Return(true)
	tokenService.On("Issue", user.ID).Return("signed-token", expiresAt, nil)

	output, err := useCase.SignIn(ctx, &SignInInput{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user, output.User)
	userRepo.AssertExpectations(t)
}

func TestAuthUseCase_SignIn_UnknownEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, userDomain.ErrUserNotFound)

	output, err := useCase.SignIn(ctx, &SignInInput{
		Email:    "ghost@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthUseCase_SignIn_WrongPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	user := &userDomain.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "argon2id-hash",
	}

	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)
	passwordService.On("ComparePassword", "wrong-pass", "argon2id-hash").Return(false)

	output, err := useCase.SignIn(ctx, &SignInInput{
		Email:    "ana@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	assert.Nil(t, output)
	tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthUseCase_AuthenticatedUser(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenService := &MockTokenService{}
	passwordService := &MockPasswordService{}
	useCase := NewAuthUseCase(userRepo, tokenService, passwordService)

	ctx := context.Background()
	user := &userDomain.User{ID: uuid.New(), Email: "ana@example.com"}

	userRepo.On("Get", ctx, user.ID).Return(user, nil)

	got, err := useCase.AuthenticatedUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}
