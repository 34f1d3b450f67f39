package dto

import (
	"time"

	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
	userDomain "github.com/collabhub/collabhub/internal/user/domain"
)

// AuthResponse is the result of a successful sign-up or sign-in.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a user in API responses. The password hash is
// never exposed.
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

// MapUserToResponse converts a user domain model to its API representation.
func MapUserToResponse(user *userDomain.User) UserResponse {
	groups := make([]GroupResponse, 0, len(user.Groups))
	for _, group := range user.Groups {
		groups = append(groups, MapGroupToResponse(group))
	}

	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Groups:    groups,
		CreatedAt: user.CreatedAt,
	}
}

// MapGroupToResponse converts a group domain model to its API representation.
func MapGroupToResponse(group groupDomain.Group) GroupResponse {
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
