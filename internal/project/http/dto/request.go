// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// CreateProjectRequest contains the parameters for creating a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the create project request is valid.
func (r *CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 10000),
		),
	)
}

// UpdateProjectRequest contains the parameters for updating a project.
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the update project request is valid.
func (r *UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 10000),
		),
	)
}
