// Package domain defines workspace group models.
//
// A group grants global permissions: every member holds the group's
// permissions across all projects. Project-scoped access is modeled
// separately by project groups.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
)

// Group is a named set of global permissions shared by its member users.
type Group struct {
	ID          uuid.UUID
	Key         string // machine key, unique, snake_case
	Name        string // human-readable name
	Permissions []authDomain.PermissionKey
	CreatedAt   time.Time
}

// CreateGroupInput contains the parameters for creating a new group.
type CreateGroupInput struct {
	Name        string
	Permissions []authDomain.PermissionKey
	UserIDs     []uuid.UUID
}
