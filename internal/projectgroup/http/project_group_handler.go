// Package http provides HTTP handlers for project group management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	"github.com/collabhub/collabhub/internal/httputil"
	projectGroupDomain "github.com/collabhub/collabhub/internal/projectgroup/domain"
	"github.com/collabhub/collabhub/internal/projectgroup/http/dto"
	projectGroupUseCase "github.com/collabhub/collabhub/internal/projectgroup/usecase"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// ProjectGroupHandler handles HTTP requests for project group management operations.
type ProjectGroupHandler struct {
	projectGroupUseCase projectGroupUseCase.ProjectGroupUseCase
	logger              *slog.Logger
}

// NewProjectGroupHandler creates a new project group handler with required dependencies.
func NewProjectGroupHandler(
	useCase projectGroupUseCase.ProjectGroupUseCase,
	logger *slog.Logger,
) *ProjectGroupHandler {
	return &ProjectGroupHandler{
		projectGroupUseCase: useCase,
		logger:              logger,
	}
}

// CreateHandler creates a new project group.
// POST /api/v1/project-groups - Requires MANAGE_ALL_PROJECTS or a scoped
// MANAGE_PROJECT permission resolved from the project_id body field.
// Returns 201 Created with the project group.
func (h *ProjectGroupHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProjectGroupRequest

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

	permissions := make([]authDomain.ProjectPermissionKey, 0, len(req.Permissions))
	for _, key := range req.Permissions {
		permissions = append(permissions, authDomain.ProjectPermissionKey(key))
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		userIDs = append(userIDs, uuid.MustParse(raw)) // validated above
	}

	input := &projectGroupDomain.CreateProjectGroupInput{
		ProjectID:   uuid.MustParse(req.ProjectID), // validated above
		Name:        req.Name,
		Permissions: permissions,
		UserIDs:     userIDs,
	}

	group, err := h.projectGroupUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProjectGroupToResponse(group))
}

// ListHandler retrieves a project's groups.
// GET /api/v1/project-groups?project_id=<uuid> - Requires a global
// VIEW/MANAGE permission or a scoped permission on the project.
// Returns 200 OK with the project's groups.
func (h *ProjectGroupHandler) ListHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project_id parameter: must be a valid UUID"),
			h.logger)
		return
	}

	groups, err := h.projectGroupUseCase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectGroupsToListResponse(groups))
}

// DeleteHandler removes a project group.
// DELETE /api/v1/project-groups/:id?project_id=<uuid> - Requires
// MANAGE_ALL_PROJECTS or a scoped MANAGE_PROJECT permission on the project.
// The project_id scopes the delete; a mismatched pairing is a 404.
// Returns 204 No Content.
func (h *ProjectGroupHandler) DeleteHandler(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project group ID format: must be a valid UUID"),
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

	if err := h.projectGroupUseCase.Delete(c.Request.Context(), projectID, groupID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
