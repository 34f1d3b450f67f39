package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrProjectNotFound indicates a project with the specified ID was not found.
	ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")
)
