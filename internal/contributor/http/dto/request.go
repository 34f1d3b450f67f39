// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// RenameContributorRequest contains the parameters for renaming a contributor.
type RenameContributorRequest struct {
	Name string `json:"name"`
}

// Validate checks if the rename request is valid.
func (r *RenameContributorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}
