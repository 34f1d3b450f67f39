// Package domain defines activity contributor models.
//
// A contributor is a name observed in a project's ingested activity, for
// example a commit author reported by the analytics agent. Contributors are
// not users and hold no permissions.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contributor is a per-project activity author.
type Contributor struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string // unique within the project
	CreatedAt time.Time
}
