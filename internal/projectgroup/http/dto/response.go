package dto

import (
	"time"

	projectGroupDomain "github.com/collabhub/collabhub/internal/projectgroup/domain"
)

// ProjectGroupResponse represents a project group in API responses.
type ProjectGroupResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapProjectGroupToResponse converts a domain project group to an API response.
func MapProjectGroupToResponse(group *projectGroupDomain.ProjectGroup) ProjectGroupResponse {
	permissions := make([]string, 0, len(group.Permissions))
	for _, permission := range group.Permissions {
		permissions = append(permissions, string(permission))
	}

	memberIDs := make([]string, 0, len(group.MemberIDs))
	for _, memberID := range group.MemberIDs {
		memberIDs = append(memberIDs, memberID.String())
	}

	return ProjectGroupResponse{
		ID:          group.ID.String(),
		ProjectID:   group.ProjectID.String(),
		Key:         group.Key,
		Name:        group.Name,
		Permissions: permissions,
		MemberIDs:   memberIDs,
		CreatedAt:   group.CreatedAt,
	}
}

// ListProjectGroupsResponse represents a project's groups in API responses.
type ListProjectGroupsResponse struct {
	Data []ProjectGroupResponse `json:"data"`
}

// MapProjectGroupsToListResponse converts a slice of domain project groups to a list API response.
func MapProjectGroupsToListResponse(groups []*projectGroupDomain.ProjectGroup) ListProjectGroupsResponse {
	groupResponses := make([]ProjectGroupResponse, 0, len(groups))
	for _, group := range groups {
		groupResponses = append(groupResponses, MapProjectGroupToResponse(group))
	}
	return ListProjectGroupsResponse{
		Data: groupResponses,
	}
}
