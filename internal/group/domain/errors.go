package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrGroupNotFound indicates a group with the specified ID was not found.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "group not found")

	// ErrGroupNameUsed indicates another group already uses the derived key.
	ErrGroupNameUsed = errors.Wrap(errors.ErrConflict, "group name already in use")
)
