// Package domain defines project API key models.
//
// API keys authenticate the analytics agent that ingests project activity.
// The plaintext key is shown once at issue time; the server stores only a
// SHA-256 lookup hash and a keeper-encrypted copy of the material.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a per-project credential for the activity ingestion endpoint.
type APIKey struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Name         string
	KeyHash      string // hex SHA-256 of the plaintext key
	EncryptedKey []byte // keeper-encrypted plaintext
	IsActive     bool
	CreatedAt    time.Time
	RevokedAt    *time.Time
}

// IssueAPIKeyInput contains the parameters for issuing a new API key.
type IssueAPIKeyInput struct {
	ProjectID uuid.UUID
	Name      string
}
