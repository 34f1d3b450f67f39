package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/apikey/service"
)

// keyPrefix marks issued keys so misdirected credentials are easy to spot
// in logs and support tickets.
const keyPrefix = "chk_"

const keyMaterialSize = 32

type apiKeyUseCase struct {
	apiKeyRepo    APIKeyRepository
	projectGetter ProjectGetter
	keeper        service.Keeper
}

// NewAPIKeyUseCase creates a new API key use case.
func NewAPIKeyUseCase(
	apiKeyRepo APIKeyRepository,
	projectGetter ProjectGetter,
	keeper service.Keeper,
) APIKeyUseCase {
	return &apiKeyUseCase{
		apiKeyRepo:    apiKeyRepo,
		projectGetter: projectGetter,
		keeper:        keeper,
	}
}

// Issue creates a new API key for a project and returns the plaintext key.
func (u *apiKeyUseCase) Issue(
	ctx context.Context,
	input apikeyDomain.IssueAPIKeyInput,
) (*apikeyDomain.APIKey, string, error) {
	if _, err := u.projectGetter.Get(ctx, input.ProjectID); err != nil {
		return nil, "", err
	}

	rawKey, err := generateKey()
	if err != nil {
		return nil, "", err
	}

	encryptedKey, err := u.keeper.Encrypt(ctx, []byte(rawKey))
	if err != nil {
		return nil, "", fmt.Errorf("failed to encrypt API key: %w", err)
	}

	apiKey := &apikeyDomain.APIKey{
		ID:           uuid.Must(uuid.NewV7()),
		ProjectID:    input.ProjectID,
		Name:         input.Name,
		KeyHash:      hashKey(rawKey),
		EncryptedKey: encryptedKey,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return nil, "", err
	}

	return apiKey, rawKey, nil
}

// ListByProject returns all API keys for a project.
func (u *apiKeyUseCase) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*apikeyDomain.APIKey, error) {
	if _, err := u.projectGetter.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return u.apiKeyRepo.ListByProject(ctx, projectID)
}

// Revoke deactivates an API key within a project.
func (u *apiKeyUseCase) Revoke(ctx context.Context, projectID uuid.UUID, keyID uuid.UUID) error {
	return u.apiKeyRepo.Revoke(ctx, projectID, keyID, time.Now().UTC())
}

// Authenticate resolves a presented key to its record by SHA-256 hash.
func (u *apiKeyUseCase) Authenticate(ctx context.Context, rawKey string) (*apikeyDomain.APIKey, error) {
	if rawKey == "" {
		return nil, apikeyDomain.ErrAPIKeyInvalid
	}
	return u.apiKeyRepo.GetActiveByHash(ctx, hashKey(rawKey))
}

func generateKey() (string, error) {
	material := make([]byte, keyMaterialSize)
	if _, err := rand.Read(material); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return keyPrefix + base64.RawURLEncoding.EncodeToString(material), nil
}

func hashKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}
