package dto

import (
	"time"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
)

// ContributorResponse represents a contributor in API responses.
type ContributorResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MapContributorToResponse converts a domain contributor to an API response.
func MapContributorToResponse(contributor *contributorDomain.Contributor) ContributorResponse {
	return ContributorResponse{
		ID:        contributor.ID.String(),
		ProjectID: contributor.ProjectID.String(),
		Name:      contributor.Name,
		CreatedAt: contributor.CreatedAt,
	}
}

// ListContributorsResponse represents a project's contributors in API responses.
type ListContributorsResponse struct {
	Data []ContributorResponse `json:"data"`
}

// MapContributorsToListResponse converts a slice of domain contributors to a list API response.
func MapContributorsToListResponse(contributors []*contributorDomain.Contributor) ListContributorsResponse {
	contributorResponses := make([]ContributorResponse, 0, len(contributors))
	for _, contributor := range contributors {
		contributorResponses = append(contributorResponses, MapContributorToResponse(contributor))
	}
	return ListContributorsResponse{
		Data: contributorResponses,
	}
}
