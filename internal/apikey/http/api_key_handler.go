// Package http provides HTTP handlers for API key management and the
// ingestion authentication middleware.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
	"github.com/collabhub/collabhub/internal/apikey/http/dto"
	apikeyUseCase "github.com/collabhub/collabhub/internal/apikey/usecase"
	"github.com/collabhub/collabhub/internal/httputil"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// APIKeyHandler handles HTTP requests for API key management operations.
type APIKeyHandler struct {
	apiKeyUseCase apikeyUseCase.APIKeyUseCase
	logger        *slog.Logger
}

// NewAPIKeyHandler creates a new API key handler with required dependencies.
func NewAPIKeyHandler(useCase apikeyUseCase.APIKeyUseCase, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyUseCase: useCase,
		logger:        logger,
	}
}

// IssueHandler issues a new API key.
// POST /api/v1/api-keys - Requires MANAGE_ALL_PROJECTS or a scoped
// MANAGE_PROJECT permission resolved from the project_id body field.
// Returns 201 Created with the key record and the plaintext key. The
// plaintext is shown only in this response.
func (h *APIKeyHandler) IssueHandler(c *gin.Context) {
	var req dto.IssueAPIKeyRequest

	// Bind with the buffering reader: the authorization layer has already
	// consumed the body to resolve the project ID.
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := apikeyDomain.IssueAPIKeyInput{
		ProjectID: uuid.MustParse(req.ProjectID), // validated above
		Name:      req.Name,
	}

	apiKey, rawKey, err := h.apiKeyUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssuedAPIKeyToResponse(apiKey, rawKey))
}

// ListHandler retrieves a project's API keys.
// GET /api/v1/api-keys?project_id=<uuid> - Requires MANAGE_ALL_PROJECTS or a
// scoped MANAGE_PROJECT permission on the project.
// Returns 200 OK with the project's keys, plaintext excluded.
func (h *APIKeyHandler) ListHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project_id parameter: must be a valid UUID"),
			h.logger)
		return
	}

	apiKeys, err := h.apiKeyUseCase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeysToListResponse(apiKeys))
}

// RevokeHandler revokes an API key.
// DELETE /api/v1/api-keys/:id?project_id=<uuid> - Requires
// MANAGE_ALL_PROJECTS or a scoped MANAGE_PROJECT permission on the project.
// The project_id scopes the revoke; a mismatched pairing is a 404.
// Returns 204 No Content.
func (h *APIKeyHandler) RevokeHandler(c *gin.Context) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid API key ID format: must be a valid UUID"),
			h.logger)
		return
	}

	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project_id parameter: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.apiKeyUseCase.Revoke(c.Request.Context(), projectID, keyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
