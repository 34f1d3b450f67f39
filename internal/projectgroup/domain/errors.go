package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrProjectGroupNotFound indicates a project group with the specified ID was not found.
	ErrProjectGroupNotFound = errors.Wrap(errors.ErrNotFound, "project group not found")

	// ErrProjectGroupNameUsed indicates the project already has a group with the derived key.
	ErrProjectGroupNameUsed = errors.Wrap(errors.ErrConflict, "project group name already in use")
)
