package dto

import (
	"time"

	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
)

// GroupResponse represents a group in API responses.
type GroupResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapGroupToResponse converts a domain group to an API response.
func MapGroupToResponse(group *groupDomain.Group) GroupResponse {
	permissions := make([]string, 0, len(group.Permissions))
	for _, permission := range group.Permissions {
		permissions = append(permissions, string(permission))
	}

	return GroupResponse{
		ID:          group.ID.String(),
		Key:         group.Key,
		Name:        group.Name,
		Permissions: permissions,
		CreatedAt:   group.CreatedAt,
	}
}

// ListGroupsResponse represents a paginated list of groups in API responses.
type ListGroupsResponse struct {
	Data []GroupResponse `json:"data"`
}

// MapGroupsToListResponse converts a slice of domain groups to a list API response.
func MapGroupsToListResponse(groups []*groupDomain.Group) ListGroupsResponse {
	groupResponses := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		groupResponses = append(groupResponses, MapGroupToResponse(group))
	}
	return ListGroupsResponse{
		Data: groupResponses,
	}
}
