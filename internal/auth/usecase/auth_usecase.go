// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	authService "github.com/collabhub/collabhub/internal/auth/service"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// authUseCase implements AuthUseCase for the sign-up/sign-in flows.
type authUseCase struct {
	userRepo        UserRepository
	tokenService    authService.TokenService
	passwordService authService.PasswordService
}

// SignUp registers a new user and issues a bearer token.
//
// This method:
// 1. Rejects the registration if the email is already taken
// 2. Hashes the password with Argon2id
// 3. Stores the user
// 4. Issues a signed bearer token for the new user
func (a *authUseCase) SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error) {
	// Check for an existing account first to surface a conflict early
	if _, err := a.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, userDomain.ErrEmailInUse
	} else if !errors.Is(err, userDomain.ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := a.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: user}, nil
}

// SignIn verifies the user's password and issues a bearer token.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong
//     passwords to prevent account enumeration
//   - Password comparison is constant-time (argon2id verify)
func (a *authUseCase) SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error) {
	user, err := a.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, _, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Token: token, User: user}, nil
}

// AuthenticatedUser loads the user behind a verified identity, with groups.
func (a *authUseCase) AuthenticatedUser(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	return a.userRepo.Get(ctx, userID)
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}
