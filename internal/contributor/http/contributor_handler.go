// Package http provides HTTP handlers for contributor management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/contributor/http/dto"
	contributorUseCase "github.com/collabhub/collabhub/internal/contributor/usecase"
	"github.com/collabhub/collabhub/internal/httputil"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// ContributorHandler handles HTTP requests for contributor management operations.
type ContributorHandler struct {
	contributorUseCase contributorUseCase.ContributorUseCase
	logger             *slog.Logger
}

// NewContributorHandler creates a new contributor handler with required dependencies.
func NewContributorHandler(
	useCase contributorUseCase.ContributorUseCase,
	logger *slog.Logger,
) *ContributorHandler {
	return &ContributorHandler{
		contributorUseCase: useCase,
		logger:             logger,
	}
}

// ListHandler retrieves a project's contributors.
// GET /api/v1/contributors?project_id=<uuid> - Requires a global VIEW/MANAGE
// permission or a scoped permission on the project.
// Returns 200 OK with the project's contributors.
func (h *ContributorHandler) ListHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project_id parameter: must be a valid UUID"),
			h.logger)
		return
	}

	contributors, err := h.contributorUseCase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapContributorsToListResponse(contributors))
}

// RenameHandler changes a contributor's name.
// PUT /api/v1/contributors/:id - Requires MANAGE_ALL_PROJECTS.
// Returns 200 OK with the updated contributor, or 409 when the name is taken.
func (h *ContributorHandler) RenameHandler(c *gin.Context) {
	contributorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid contributor ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.RenameContributorRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	contributor, err := h.contributorUseCase.Rename(c.Request.Context(), contributorID, req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapContributorToResponse(contributor))
}
