// Package http provides HTTP handlers for activity log ingestion and queries.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
	"github.com/collabhub/collabhub/internal/activitylog/http/dto"
	activityUseCase "github.com/collabhub/collabhub/internal/activitylog/usecase"
	apikeyHTTP "github.com/collabhub/collabhub/internal/apikey/http"
	apperrors "github.com/collabhub/collabhub/internal/errors"
	"github.com/collabhub/collabhub/internal/httputil"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// ActivityLogHandler handles HTTP requests for activity log operations.
type ActivityLogHandler struct {
	activityLogUseCase activityUseCase.ActivityLogUseCase
	logger             *slog.Logger
}

// NewActivityLogHandler creates a new activity log handler with required dependencies.
func NewActivityLogHandler(
	useCase activityUseCase.ActivityLogUseCase,
	logger *slog.Logger,
) *ActivityLogHandler {
	return &ActivityLogHandler{
		activityLogUseCase: useCase,
		logger:             logger,
	}
}

// IngestHandler records a batch of daily activity rollups.
// POST /ingest/v1/activity-logs - Authenticated by the X-API-Key middleware;
// the target project is the one the key was issued for.
// Returns 202 Accepted.
func (h *ActivityLogHandler) IngestHandler(c *gin.Context) {
	projectID, ok := apikeyHTTP.GetKeyProject(c.Request.Context())
	if !ok {
		// Route wired without the API key middleware
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.IngestActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entries := make([]activityDomain.IngestActivityEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		date, err := time.Parse(dto.DateLayout, entry.Date)
		if err != nil {
			// validated above, kept as a guard for the layout constant
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
		entries = append(entries, activityDomain.IngestActivityEntry{
			ContributorName: entry.ContributorName,
			Date:            date,
			Count:           entry.Count,
		})
	}

	if err := h.activityLogUseCase.Ingest(c.Request.Context(), projectID, entries); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusAccepted, "application/json", nil)
}

// ListHandler retrieves a project's activity logs.
// GET /api/v1/activity-logs?project_id=<uuid> - Requires a global
// VIEW/MANAGE permission or a scoped permission on the project.
// Returns 200 OK with the project's activity logs, newest day first.
func (h *ActivityLogHandler) ListHandler(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid project_id parameter: must be a valid UUID"),
			h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	logs, err := h.activityLogUseCase.ListByProject(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapActivityLogsToListResponse(logs))
}
