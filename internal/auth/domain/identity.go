// Package domain defines authentication and authorization domain models and business logic.
//
// It provides JWT-based user authentication and a two-tier permission model:
// global permissions held through group membership apply across every resource,
// while project permissions held through project-group membership apply only to
// one specific project. The two catalogs are distinct Go types so a scope mixup
// is a compile-time error, not a runtime bug.
package domain

import (
	"github.com/google/uuid"
)

// Identity is the caller identity recovered from a verified bearer credential.
// It exists only for the lifetime of one request and is never persisted.
type Identity struct {
	UserID uuid.UUID
}
