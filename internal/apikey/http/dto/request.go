// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// IssueAPIKeyRequest contains the parameters for issuing a new API key.
type IssueAPIKeyRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
}

// Validate checks if the issue API key request is valid.
func (r *IssueAPIKeyRequest) Validate() error {
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
	)
}
