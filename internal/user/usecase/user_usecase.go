package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	userRepo UserRepository
}

// Get retrieves a user by ID with group memberships.
func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	return u.userRepo.Get(ctx, userID)
}

// List retrieves users with pagination.
func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCase{userRepo: userRepo}
}
