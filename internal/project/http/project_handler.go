// Package http provides HTTP handlers for project management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/httputil"
	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
	"github.com/collabhub/collabhub/internal/project/http/dto"
	projectUseCase "github.com/collabhub/collabhub/internal/project/usecase"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// ProjectHandler handles HTTP requests for project management operations.
type ProjectHandler struct {
	projectUseCase projectUseCase.ProjectUseCase
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler with required dependencies.
func NewProjectHandler(useCase projectUseCase.ProjectUseCase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: useCase,
		logger:         logger,
	}
}

// CreateHandler creates a new project.
// POST /api/v1/projects - Requires MANAGE_ALL_PROJECTS.
// Returns 201 Created with the project.
func (h *ProjectHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProjectRequest

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

	input := &projectDomain.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}

	project, err := h.projectUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProjectToResponse(project))
}

// GetHandler retrieves a project by ID.
// GET /api/v1/projects/:projectId - Requires a global VIEW/MANAGE permission
// or a scoped permission on this project.
// Returns 200 OK with project data.
func (h *ProjectHandler) GetHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project ID format: must be a valid UUID"),
			h.logger)
		return
	}

	project, err := h.projectUseCase.Get(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// ListHandler retrieves projects with pagination support.
// GET /api/v1/projects?offset=0&limit=50 - Requires VIEW_ALL_PROJECTS or
// MANAGE_ALL_PROJECTS.
// Returns 200 OK with paginated project list.
func (h *ProjectHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	projects, err := h.projectUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectsToListResponse(projects))
}

// UpdateHandler replaces the project's name and description.
// PUT /api/v1/projects/:projectId - Requires MANAGE_ALL_PROJECTS or a scoped
// EDIT_PROJECT/MANAGE_PROJECT permission on this project.
// Returns 200 OK with the updated project.
func (h *ProjectHandler) UpdateHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateProjectRequest

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

	input := &projectDomain.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}

	project, err := h.projectUseCase.Update(c.Request.Context(), projectID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// DeleteHandler removes a project.
// DELETE /api/v1/projects/:projectId - Requires MANAGE_ALL_PROJECTS.
// Returns 204 No Content.
func (h *ProjectHandler) DeleteHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), projectID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
