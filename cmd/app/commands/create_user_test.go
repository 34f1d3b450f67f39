package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authUseCase "github.com/collabhub/collabhub/internal/auth/usecase"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignUp(
	ctx context.Context,
	input *authUseCase.SignUpInput,
) (*authUseCase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authUseCase.AuthOutput), args.Error(1)
}

func (m *MockAuthUseCase) SignIn(
	ctx context.Context,
	input *authUseCase.SignInInput,
) (*authUseCase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authUseCase.AuthOutput), args.Error(1)
}

func (m *MockAuthUseCase) AuthenticatedUser(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := createTestLogger()
	userID := uuid.New()

	t.Run("flag-password-text", func(t *testing.T) {
		mockUseCase := &MockAuthUseCase{}
		input := &authUseCase.SignUpInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "s3cret-pass",
		}
		output := &authUseCase.AuthOutput{
			Token: "token",
			User:  &userDomain.User{ID: userID, Email: "ana@example.com", Name: "Ana"},
		}

		mockUseCase.On("SignUp", ctx, input).Return(output, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "ana@example.com", "Ana", "s3cret-pass", "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "ana@example.com")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("prompted-password-json", func(t *testing.T) {
		mockUseCase := &MockAuthUseCase{}
		input := &authUseCase.SignUpInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "prompted-pass",
		}
		output := &authUseCase.AuthOutput{
			Token: "token",
			User:  &userDomain.User{ID: userID, Email: "ana@example.com", Name: "Ana"},
		}

		mockUseCase.On("SignUp", ctx, input).Return(output, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString("prompted-pass\n"),
			Writer: &out,
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "ana@example.com", "Ana", "", "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "{") // Should be JSON
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-prompted-password", func(t *testing.T) {
		mockUseCase := &MockAuthUseCase{}
		io := IOTuple{
			Reader: bytes.NewBufferString("\n"),
			Writer: &bytes.Buffer{},
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "ana@example.com", "Ana", "", "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "password cannot be empty")
		mockUseCase.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("sign-up-error", func(t *testing.T) {
		mockUseCase := &MockAuthUseCase{}
		mockUseCase.On("SignUp", ctx, mock.Anything).Return(nil, errors.New("email already in use"))

		io := IOTuple{Reader: nil, Writer: &bytes.Buffer{}}

		err := RunCreateUser(ctx, mockUseCase, logger, "ana@example.com", "Ana", "s3cret-pass", "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
	})
}
