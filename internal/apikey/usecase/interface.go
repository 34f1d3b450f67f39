// Package usecase provides business logic for API key management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// APIKeyRepository defines the interface for API key data access.
type APIKeyRepository interface {
	Create(ctx context.Context, apiKey *apikeyDomain.APIKey) error
	Get(ctx context.Context, keyID uuid.UUID) (*apikeyDomain.APIKey, error)
	GetActiveByHash(ctx context.Context, keyHash string) (*apikeyDomain.APIKey, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*apikeyDomain.APIKey, error)
	Revoke(ctx context.Context, projectID uuid.UUID, keyID uuid.UUID, revokedAt time.Time) error
}

// ProjectGetter resolves projects by ID. It is satisfied by the project
// repository.
type ProjectGetter interface {
	Get(ctx context.Context, projectID uuid.UUID) (*projectDomain.Project, error)
}

// APIKeyUseCase defines the interface for API key business operations.
type APIKeyUseCase interface {
	// Issue creates a new API key and returns it together with the plaintext
	// key. The plaintext is not retrievable afterwards.
	Issue(ctx context.Context, input apikeyDomain.IssueAPIKeyInput) (*apikeyDomain.APIKey, string, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*apikeyDomain.APIKey, error)
	Revoke(ctx context.Context, projectID uuid.UUID, keyID uuid.UUID) error
	// Authenticate resolves a presented key to its record. Used by the
	// ingestion middleware.
	Authenticate(ctx context.Context, rawKey string) (*apikeyDomain.APIKey, error)
}
