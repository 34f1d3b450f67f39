// Package usecase defines business logic interfaces for group management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
)

// GroupRepository defines the group persistence operations.
type GroupRepository interface {
	// Create stores a new group with its permissions.
	// Returns groupDomain.ErrGroupNameUsed when the key is taken.
	Create(ctx context.Context, group *groupDomain.Group) error

	// Get retrieves a group with permissions by ID.
	// Returns groupDomain.ErrGroupNotFound if missing.
	Get(ctx context.Context, groupID uuid.UUID) (*groupDomain.Group, error)

	// List retrieves groups with pagination, with permissions.
	List(ctx context.Context, offset, limit int) ([]*groupDomain.Group, error)

	// ReplaceMembers swaps the group's membership for the given user set.
	ReplaceMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error
}

// GroupUseCase defines group management operations.
type GroupUseCase interface {
	// Create stores a new group with its permissions and initial members.
	// The machine key is derived from the name; a duplicate key is a conflict.
	Create(ctx context.Context, input *groupDomain.CreateGroupInput) (*groupDomain.Group, error)

	// Get retrieves a group by ID with its permissions.
	Get(ctx context.Context, groupID uuid.UUID) (*groupDomain.Group, error)

	// List retrieves groups with pagination.
	List(ctx context.Context, offset, limit int) ([]*groupDomain.Group, error)

	// UpdateMembers replaces the group's membership with the given user set.
	UpdateMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error
}
