package dto

import (
	"time"

	projectDomain "github.com/collabhub/collabhub/internal/project/domain"
)

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	CreatedAt        time.Time  `json:"created_at"`
}

// MapProjectToResponse converts a domain project to an API response.
func MapProjectToResponse(project *projectDomain.Project) ProjectResponse {
	return ProjectResponse{
		ID:               project.ID.String(),
		Name:             project.Name,
		Description:      project.Description,
		LastActivityDate: project.LastActivityDate,
		CreatedAt:        project.CreatedAt,
	}
}

// ListProjectsResponse represents a paginated list of projects in API responses.
type ListProjectsResponse struct {
	Data []ProjectResponse `json:"data"`
}

// MapProjectsToListResponse converts a slice of domain projects to a list API response.
func MapProjectsToListResponse(projects []*projectDomain.Project) ListProjectsResponse {
	projectResponses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		projectResponses = append(projectResponses, MapProjectToResponse(project))
	}
	return ListProjectsResponse{
		Data: projectResponses,
	}
}
