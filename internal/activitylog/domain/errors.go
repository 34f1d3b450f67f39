package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

// ErrActivityLogNotFound indicates an activity log with the specified ID was not found.
var ErrActivityLogNotFound = errors.Wrap(errors.ErrNotFound, "activity log not found")
