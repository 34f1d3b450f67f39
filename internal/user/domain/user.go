// Package domain defines the user model.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
)

// User is a workspace member. Global permissions are held indirectly through
// group membership; project-scoped permissions are resolved per project at
// evaluation time and are never embedded on the user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string //nolint:gosec // argon2id hash, not plaintext
	Groups       []groupDomain.Group
	CreatedAt    time.Time
}

// GlobalPermissions returns the union of permissions across all the user's
// groups, deduplicated. Order is not significant.
func (u *User) GlobalPermissions() []authDomain.PermissionKey {
	seen := make(map[authDomain.PermissionKey]struct{})
	var keys []authDomain.PermissionKey

	for _, group := range u.Groups {
		for _, key := range group.Permissions {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
