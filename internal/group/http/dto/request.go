// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// CreateGroupRequest contains the parameters for creating a new group.
type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	UserIDs     []string `json:"user_ids"`
}

// Validate checks if the create group request is valid.
func (r *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Permissions,
			validation.Required,
			validation.Each(validation.By(validatePermissionKey)),
		),
		validation.Field(&r.UserIDs,
			validation.Each(validation.By(customValidation.ValidateUUIDString)),
		),
	)
}

// UpdateGroupMembersRequest contains the parameters for replacing group membership.
type UpdateGroupMembersRequest struct {
	UserIDs []string `json:"user_ids"`
}

// Validate checks if the update members request is valid.
func (r *UpdateGroupMembersRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserIDs,
			validation.NotNil,
			validation.Each(validation.By(customValidation.ValidateUUIDString)),
		),
	)
}

// validatePermissionKey validates a single global permission key.
func validatePermissionKey(value interface{}) error {
	key, ok := value.(string)
	if !ok {
		return validation.NewError("validation_permission_type", "must be a string")
	}
	if !authDomain.IsValidPermissionKey(authDomain.PermissionKey(key)) {
		return validation.NewError("validation_permission_key", "must be a known permission key")
	}
	return nil
}
