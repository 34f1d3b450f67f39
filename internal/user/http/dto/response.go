// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// UserResponse represents a user in API responses (excludes password hash).
type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Groups    []GroupResponse `json:"groups"`
	CreatedAt time.Time       `json:"created_at"`
}

// GroupResponse represents a group membership in API responses.
type GroupResponse struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	groups := make([]GroupResponse, 0, len(user.Groups))
	for _, group := range user.Groups {
		groups = append(groups, mapGroupToResponse(group))
	}

	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Groups:    groups,
		CreatedAt: user.CreatedAt,
	}
}

func mapGroupToResponse(group groupDomain.Group) GroupResponse {
	permissions := make([]string, 0, len(group.Permissions))
	for _, permission := range group.Permissions {
		permissions = append(permissions, string(permission))
	}

	return GroupResponse{
		ID:          group.ID.String(),
		Key:         group.Key,
		Name:        group.Name,
		Permissions: permissions,
	}
}

// ListUsersResponse represents a paginated list of users in API responses.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts a slice of domain users to a list API response.
func MapUsersToListResponse(users []*userDomain.User) ListUsersResponse {
	userResponses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, MapUserToResponse(user))
	}
	return ListUsersResponse{
		Data: userResponses,
	}
}
