package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type ResourceResponse struct {
	Resource *domain.Resource `json:"resource"`
}

type ResourceListResponse struct {
	Resources []*domain.Resource `json:"resources"`
}
