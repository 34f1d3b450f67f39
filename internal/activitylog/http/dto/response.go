package dto

import (
	"time"

	"github.com/google/uuid"

	activityDomain "github.com/collabhub/collabhub/internal/activitylog/domain"
)

// ActivityLogResponse represents an activity log in API responses.
type ActivityLogResponse struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	ContributorID uuid.UUID `json:"contributor_id"`
	Date          string    `json:"date"`
	Count         int       `json:"count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListActivityLogsResponse represents a list of activity logs in API responses.
type ListActivityLogsResponse struct {
	Data []*ActivityLogResponse `json:"data"`
}

// MapActivityLogToResponse converts a domain activity log to an API response.
func MapActivityLogToResponse(log *activityDomain.ActivityLog) *ActivityLogResponse {
	return &ActivityLogResponse{
		ID:            log.ID,
		ProjectID:     log.ProjectID,
		ContributorID: log.ContributorID,
		Date:          log.Date.Format(DateLayout),
		Count:         log.Count,
		CreatedAt:     log.CreatedAt,
	}
}

// MapActivityLogsToListResponse converts domain activity logs to a list response.
func MapActivityLogsToListResponse(logs []*activityDomain.ActivityLog) *ListActivityLogsResponse {
	data := make([]*ActivityLogResponse, 0, len(logs))
	for _, log := range logs {
		data = append(data, MapActivityLogToResponse(log))
	}
	return &ListActivityLogsResponse{Data: data}
}
