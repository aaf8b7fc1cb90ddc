package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type PitchResponse struct {
	Pitch *domain.Pitch `json:"pitch"`
}

type PitchListResponse struct {
	Pitches []*domain.Pitch `json:"pitches"`
}

type AggregatedPitchResponse struct {
	View *domain.AggregatedPitch `json:"aggregated"`
}
