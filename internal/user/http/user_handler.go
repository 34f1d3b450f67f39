// Package http provides HTTP handlers for user management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/httputil"
	"github.com/collabhub/collabhub/internal/user/http/dto"
	userUseCase "github.com/collabhub/collabhub/internal/user/usecase"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		logger:      logger,
	}
}

// GetHandler retrieves a user by ID.
// GET /api/v1/users/:id - Requires MANAGE_USER_ACCESS.
// Returns 200 OK with user data (no password hash).
func (h *UserHandler) GetHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user ID format: must be a valid UUID"),
			h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ListHandler retrieves users with pagination support.
// GET /api/v1/users?offset=0&limit=50 - Requires MANAGE_USER_ACCESS.
// Returns 200 OK with paginated user list.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}
