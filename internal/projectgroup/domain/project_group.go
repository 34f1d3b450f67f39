// Package domain defines project group models.
//
// A project group grants permissions scoped to a single project: members
// hold the group's permissions on that project and nowhere else. Global
// access is modeled separately by workspace groups.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
)

// ProjectGroup is a named set of project-scoped permissions shared by its members.
type ProjectGroup struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Key         string // machine key, unique per project, snake_case
	Name        string // human-readable name
	Permissions []authDomain.ProjectPermissionKey
	MemberIDs   []uuid.UUID
	CreatedAt   time.Time
}

// CreateProjectGroupInput contains the parameters for creating a new project group.
type CreateProjectGroupInput struct {
	ProjectID   uuid.UUID
	Name        string
	Permissions []authDomain.ProjectPermissionKey
	UserIDs     []uuid.UUID
}
