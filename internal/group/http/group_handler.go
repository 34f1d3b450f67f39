// Package http provides HTTP handlers for group management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
	"github.com/collabhub/collabhub/internal/group/http/dto"
	groupUseCase "github.com/collabhub/collabhub/internal/group/usecase"
	"github.com/collabhub/collabhub/internal/httputil"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// GroupHandler handles HTTP requests for group management operations.
type GroupHandler struct {
	groupUseCase groupUseCase.GroupUseCase
	logger       *slog.Logger
}

// NewGroupHandler creates a new group handler with required dependencies.
func NewGroupHandler(useCase groupUseCase.GroupUseCase, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: useCase,
		logger:       logger,
	}
}

// CreateHandler creates a new group with permissions and initial members.
// POST /api/v1/groups - Requires MANAGE_USER_ACCESS.
// Returns 201 Created with the group, or 409 when the derived key is taken.
func (h *GroupHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateGroupRequest

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

	permissions := make([]authDomain.PermissionKey, 0, len(req.Permissions))
	for _, key := range req.Permissions {
		permissions = append(permissions, authDomain.PermissionKey(key))
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		userIDs = append(userIDs, uuid.MustParse(raw)) // validated above
	}

	input := &groupDomain.CreateGroupInput{
		Name:        req.Name,
		Permissions: permissions,
		UserIDs:     userIDs,
	}

	group, err := h.groupUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGroupToResponse(group))
}

// GetHandler retrieves a group by ID.
// GET /api/v1/groups/:id - Requires MANAGE_USER_ACCESS.
// Returns 200 OK with group data.
func (h *GroupHandler) GetHandler(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid group ID format: must be a valid UUID"),
			h.logger)
		return
	}

	group, err := h.groupUseCase.Get(c.Request.Context(), groupID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupToResponse(group))
}

// ListHandler retrieves groups with pagination support.
// GET /api/v1/groups?offset=0&limit=50 - Requires MANAGE_USER_ACCESS.
// Returns 200 OK with paginated group list.
func (h *GroupHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	groups, err := h.groupUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupsToListResponse(groups))
}

// UpdateMembersHandler replaces the group's membership.
// PUT /api/v1/groups/:id/members - Requires MANAGE_USER_ACCESS.
// Returns 204 No Content.
func (h *GroupHandler) UpdateMembersHandler(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid group ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateGroupMembersRequest

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

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		userIDs = append(userIDs, uuid.MustParse(raw)) // validated above
	}

	if err := h.groupUseCase.UpdateMembers(c.Request.Context(), groupID, userIDs); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
