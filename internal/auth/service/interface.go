// Package service provides technical services for authentication operations.
//
// This package implements bearer credential signing/verification and password
// hashing using industry-standard cryptographic practices.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and verifying bearer credentials.
//
// Implementations hold an immutable signing secret established once at startup;
// Verify is purely functional given the token string and that secret, so the
// service is safe to share across request goroutines without locking.
type TokenService interface {
	// Issue signs a new bearer token for the given user.
	// Returns the signed token string and its expiration time.
	Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify validates a bearer token and recovers the caller's user ID.
	// Any structural, signature or expiry failure returns domain.ErrInvalidToken;
	// the caller must not be able to distinguish an expired token from a
	// malformed one.
	Verify(token string) (uuid.UUID, error)
}

// PasswordService defines operations for password hashing and verification.
// Implementations must use a memory-hard algorithm (e.g., argon2) and
// constant-time comparison.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Returns true if they match, false otherwise.
	ComparePassword(plainPassword string, hashedPassword string) bool
}
