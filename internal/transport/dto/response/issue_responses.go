package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type IssueResponse struct {
	Issue *domain.Issue `json:"issue"`
}

type IssueListResponse struct {
	Issues []*domain.Issue `json:"issues"`
}

type IssuePitchResponse struct {
	Link *domain.IssuePitch `json:"issue_pitch"`
}
