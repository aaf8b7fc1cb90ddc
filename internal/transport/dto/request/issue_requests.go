package request

import "time"

type CreateIssueRequest struct {
	ReleaseDate  time.Time `json:"release_date"`
	DeadlineDate time.Time `json:"deadline_date"`
	Type         string    `json:"type"`
}

type SetIssuePitchStatusRequest struct {
	IssueId string `json:"-"`
	PitchId string `json:"pitch_id"`
	Status  string `json:"status"`
}
