package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/metrics"
)

// apiKeyUseCaseWithMetrics decorates APIKeyUseCase with metrics instrumentation.
type apiKeyUseCaseWithMetrics struct {
	next    APIKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewAPIKeyUseCaseWithMetrics wraps an APIKeyUseCase with metrics recording.
func NewAPIKeyUseCaseWithMetrics(useCase APIKeyUseCase, m metrics.BusinessMetrics) APIKeyUseCase {
	return &apiKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for key issuance operations.
func (a *apiKeyUseCaseWithMetrics) Issue(
	ctx context.Context,
	input apikeyDomain.IssueAPIKeyInput,
) (*apikeyDomain.APIKey, string, error) {
	start := time.Now()
	apiKey, rawKey, err := a.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "api_key", "api_key_issue", status)
	a.metrics.RecordDuration(ctx, "api_key", "api_key_issue", time.Since(start), status)

	return apiKey, rawKey, err
}

// ListByProject records metrics for key list operations.
func (a *apiKeyUseCaseWithMetrics) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*apikeyDomain.APIKey, error) {
	start := time.Now()
	apiKeys, err := a.next.ListByProject(ctx, projectID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "api_key", "api_key_list", status)
	a.metrics.RecordDuration(ctx, "api_key", "api_key_list", time.Since(start), status)

	return apiKeys, err
}

// Revoke records metrics for key revocation operations.
func (a *apiKeyUseCaseWithMetrics) Revoke(
	ctx context.Context,
	projectID uuid.UUID,
	keyID uuid.UUID,
) error {
	start := time.Now()
	err := a.next.Revoke(ctx, projectID, keyID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "api_key", "api_key_revoke", status)
	a.metrics.RecordDuration(ctx, "api_key", "api_key_revoke", time.Since(start), status)

	return err
}

// Authenticate records metrics for ingestion key lookups.
func (a *apiKeyUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	rawKey string,
) (*apikeyDomain.APIKey, error) {
	start := time.Now()
	apiKey, err := a.next.Authenticate(ctx, rawKey)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "api_key", "api_key_authenticate", status)
	a.metrics.RecordDuration(ctx, "api_key", "api_key_authenticate", time.Since(start), status)

	return apiKey, err
}
