// Package domain defines activity log models.
//
// Activity logs are daily per-contributor rollups reported by the analytics
// agent. One row exists per (project, contributor, date); re-ingesting a day
// replaces the count, so agent re-runs are idempotent.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is a daily activity rollup for a contributor on a project.
type ActivityLog struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	ContributorID uuid.UUID
	Date          time.Time // day precision
	Count         int
	CreatedAt     time.Time
}

// IngestActivityEntry is one day of activity for a named contributor, as
// reported by the agent.
type IngestActivityEntry struct {
	ContributorName string
	Date            time.Time
	Count           int
}
