// Package usecase defines business logic interfaces for user management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// UserRepository defines the user persistence operations.
type UserRepository interface {
	// Create stores a new user. Returns userDomain.ErrEmailInUse on duplicates.
	Create(ctx context.Context, user *userDomain.User) error

	// Get retrieves a user with groups by ID. Returns userDomain.ErrUserNotFound if missing.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user with groups by email.
	// Returns userDomain.ErrUserNotFound if missing.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// List retrieves users with pagination, with groups.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)
}

// UserUseCase defines user management operations.
type UserUseCase interface {
	// Get retrieves a user by ID with group memberships.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// List retrieves users with pagination.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)
}
