package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type UserFeedbackResponse struct {
	Feedback *domain.UserFeedback `json:"feedback"`
}

type UserFeedbackListResponse struct {
	Feedback []*domain.UserFeedback `json:"feedback"`
}

type PitchFeedbackResponse struct {
	Feedback *domain.PitchFeedback `json:"feedback"`
}

type PitchFeedbackListResponse struct {
	Feedback []*domain.PitchFeedback `json:"feedback"`
}
