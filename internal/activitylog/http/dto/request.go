// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/collabhub/collabhub/internal/validation"
)

// DateLayout is the wire format for activity dates.
const DateLayout = "2006-01-02"

// IngestActivityEntryRequest is one day of activity for a named contributor.
type IngestActivityEntryRequest struct {
	ContributorName string `json:"contributor_name"`
	Date            string `json:"date"`
	Count           int    `json:"count"`
}

// Validate checks if the ingest entry is valid.
func (r IngestActivityEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ContributorName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Date,
			validation.Required,
			validation.Date(DateLayout),
		),
		validation.Field(&r.Count,
			validation.Min(0),
		),
	)
}

// IngestActivityRequest contains a batch of daily rollups.
type IngestActivityRequest struct {
	Entries []IngestActivityEntryRequest `json:"entries"`
}

// Validate checks if the ingest request is valid. Each entry validates
// itself.
func (r *IngestActivityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Entries,
			validation.Required,
			validation.Length(1, 1000),
		),
	)
}
