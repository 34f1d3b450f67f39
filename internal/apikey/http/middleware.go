package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apikeyUseCase "github.com/collabhub/collabhub/internal/apikey/usecase"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	"github.com/collabhub/collabhub/internal/httputil"
)

// apiKeyProjectKey is a context key type for storing the project resolved
// from an API key.
type apiKeyProjectKey struct{}

// WithKeyProject stores the project ID resolved from an API key in the context.
func WithKeyProject(ctx context.Context, projectID uuid.UUID) context.Context {
	return context.WithValue(ctx, apiKeyProjectKey{}, projectID)
}

// GetKeyProject retrieves the project ID resolved from an API key.
// Returns (id, true) if the request passed the API key middleware.
func GetKeyProject(ctx context.Context) (uuid.UUID, bool) {
	projectID, ok := ctx.Value(apiKeyProjectKey{}).(uuid.UUID)
	return projectID, ok
}

// APIKeyAuthenticationMiddleware gates the ingestion routes behind an
// X-API-Key header. It is independent of the bearer-token gate: agents hold
// a project credential, not a user account.
//
// The presented key is resolved by SHA-256 hash against active keys only.
// A missing, unknown, or revoked key yields 401 Unauthorized. On success the
// key's project ID is stored in the request context via WithKeyProject.
func APIKeyAuthenticationMiddleware(
	useCase apikeyUseCase.APIKeyUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader("X-API-Key")
		if rawKey == "" {
			logger.Debug("API key authentication failed: missing X-API-Key header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		apiKey, err := useCase.Authenticate(c.Request.Context(), rawKey)
		if err != nil {
			logger.Debug("API key authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithKeyProject(c.Request.Context(), apiKey.ProjectID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("API key authentication successful",
			slog.String("project_id", apiKey.ProjectID.String()))

		c.Next()
	}
}
