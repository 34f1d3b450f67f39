package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrAPIKeyNotFound indicates an API key with the specified ID was not found.
	ErrAPIKeyNotFound = errors.Wrap(errors.ErrNotFound, "API key not found")

	// ErrAPIKeyInvalid indicates the presented key matches no active credential.
	ErrAPIKeyInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid API key")
)
