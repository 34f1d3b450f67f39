package domain

import (
	"github.com/collabhub/collabhub/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrMissingToken indicates the request carried no Authorization header.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "no credential provided")

	// ErrInvalidToken indicates the bearer token failed verification.
	// Structural, signature and expiry failures all surface as this single
	// error so the caller cannot distinguish them.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid credential")

	// ErrInvalidCredentials indicates a sign-in with an unknown email or wrong
	// password. One error for both cases to prevent account enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")

	// ErrNoPermission indicates an authenticated user without a qualifying grant.
	ErrNoPermission = errors.Wrap(errors.ErrForbidden, "no permission")
)
