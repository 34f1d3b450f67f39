package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrContributorNotFound indicates a contributor with the specified ID was not found.
	ErrContributorNotFound = errors.Wrap(errors.ErrNotFound, "contributor not found")

	// ErrContributorNameUsed indicates the project already has a contributor with that name.
	ErrContributorNameUsed = errors.Wrap(errors.ErrConflict, "contributor name already in use")
)
