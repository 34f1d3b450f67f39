// Package usecase defines business logic interfaces for authentication and authorization.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// GrantRepository is the read-only view over the identity and grant records
// that the permission resolution engine consumes. It is owned and mutated
// exclusively by the user/group management modules; this core never writes
// through it.
//
// Both lookups must be consistent within a single request, and an unknown
// userID yields empty sets rather than an error. Results are never cached by
// callers: permission changes must be visible to the next request, since a
// stale allow is a security defect.
type GrantRepository interface {
	// GlobalPermissions returns the union of permissions across every group
	// the user belongs to.
	GlobalPermissions(ctx context.Context, userID uuid.UUID) ([]authDomain.PermissionKey, error)

	// ProjectPermissions returns the union of permissions across every
	// project group of the given project that includes the user. Grants held
	// through groups of other projects are never visible here.
	ProjectPermissions(
		ctx context.Context,
		userID uuid.UUID,
		projectID uuid.UUID,
	) ([]authDomain.ProjectPermissionKey, error)
}

// UserRepository defines the user persistence operations the auth flows need.
// The user module's repositories satisfy this interface.
type UserRepository interface {
	// Create stores a new user. Returns userDomain.ErrEmailInUse on duplicates.
	Create(ctx context.Context, user *userDomain.User) error

	// Get retrieves a user with groups by ID. Returns userDomain.ErrUserNotFound if missing.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user with groups by email.
	// Returns userDomain.ErrUserNotFound if missing.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// SignUpInput contains the parameters for registering a new user.
type SignUpInput struct {
	Email    string
	Name     string
	Password string
}

// SignInInput contains the parameters for authenticating an existing user.
type SignInInput struct {
	Email    string
	Password string
}

// AuthOutput is the result of a successful sign-up or sign-in.
type AuthOutput struct {
	Token string
	User  *userDomain.User
}

// AuthUseCase defines the authentication flows.
type AuthUseCase interface {
	// SignUp registers a new user and issues a bearer token for it.
	// Returns userDomain.ErrEmailInUse if the email is taken.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies the user's password and issues a bearer token.
	// Returns authDomain.ErrInvalidCredentials for an unknown email or a
	// wrong password, without distinguishing the two.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// AuthenticatedUser loads the user behind a verified identity, with groups.
	AuthenticatedUser(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)
}
