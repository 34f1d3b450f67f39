package dto

import (
	"time"

	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
)

// APIKeyResponse represents an API key in API responses. The key material
// itself is never included.
type APIKeyResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"project_id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

// IssuedAPIKeyResponse is returned once at issue time and carries the
// plaintext key.
type IssuedAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

// ListAPIKeysResponse represents a list of API keys in API responses.
type ListAPIKeysResponse struct {
	Data []*APIKeyResponse `json:"data"`
}

// MapAPIKeyToResponse converts a domain API key to an API response.
func MapAPIKeyToResponse(apiKey *apikeyDomain.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:        apiKey.ID,
		ProjectID: apiKey.ProjectID,
		Name:      apiKey.Name,
		IsActive:  apiKey.IsActive,
		CreatedAt: apiKey.CreatedAt,
		RevokedAt: apiKey.RevokedAt,
	}
}

// MapIssuedAPIKeyToResponse converts a freshly issued key and its plaintext
// to an API response.
func MapIssuedAPIKeyToResponse(apiKey *apikeyDomain.APIKey, rawKey string) *IssuedAPIKeyResponse {
	return &IssuedAPIKeyResponse{
		APIKeyResponse: *MapAPIKeyToResponse(apiKey),
		Key:            rawKey,
	}
}

// MapAPIKeysToListResponse converts domain API keys to a list response.
func MapAPIKeysToListResponse(apiKeys []*apikeyDomain.APIKey) *ListAPIKeysResponse {
	data := make([]*APIKeyResponse, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		data = append(data, MapAPIKeyToResponse(apiKey))
	}
	return &ListAPIKeysResponse{Data: data}
}
