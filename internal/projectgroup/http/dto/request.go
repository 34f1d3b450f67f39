// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// CreateProjectGroupRequest contains the parameters for creating a new project group.
type CreateProjectGroupRequest struct {
	ProjectID   string   `json:"project_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	UserIDs     []string `json:"user_ids"`
}

// Validate checks if the create project group request is valid.
func (r *CreateProjectGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID,
			validation.Required,
			validation.By(customValidation.ValidateUUIDString),
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Permissions,
			validation.Required,
			validation.Each(validation.By(validateProjectPermissionKey)),
		),
		validation.Field(&r.UserIDs,
			validation.Each(validation.By(customValidation.ValidateUUIDString)),
		),
	)
}

// validateProjectPermissionKey validates a single project-scoped permission key.
func validateProjectPermissionKey(value interface{}) error {
	key, ok := value.(string)
	if !ok {
		return validation.NewError("validation_permission_type", "must be a string")
	}
	if !authDomain.IsValidProjectPermissionKey(authDomain.ProjectPermissionKey(key)) {
		return validation.NewError("validation_permission_key", "must be a known project permission key")
	}
	return nil
}
