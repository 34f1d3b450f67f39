package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

var (
	// ErrUserNotFound indicates a user with the specified ID or email was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailInUse indicates the email address is already registered.
	ErrEmailInUse = errors.Wrap(errors.ErrConflict, "email address already in use")
)
