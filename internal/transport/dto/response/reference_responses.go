package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type TeamResponse struct {
	Team *domain.Team `json:"team"`
}

type TeamListResponse struct {
	Teams []*domain.Team `json:"teams"`
}

type InterestResponse struct {
	Interest *domain.Interest `json:"interest"`
}

type InterestListResponse struct {
	Interests []*domain.Interest `json:"interests"`
}
