// Package domain defines project models.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a unit of collaboration that scoped permissions attach to.
type Project struct {
	ID               uuid.UUID
	Name             string
	Description      string
	LastActivityDate *time.Time // nil until activity is ingested
	CreatedAt        time.Time
}

// CreateProjectInput contains the parameters for creating a new project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// UpdateProjectInput contains the parameters for updating a project.
type UpdateProjectInput struct {
	Name        string
	Description string
}
