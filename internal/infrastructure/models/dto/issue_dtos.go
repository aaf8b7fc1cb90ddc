package dto

import "time"

type CreateIssueDTO struct {
	IssueId      string
	ReleaseDate  time.Time
	DeadlineDate time.Time
	Type         string
}

type SetIssuePitchStatusDTO struct {
	IssueId string
	PitchId string
	Status  string
}
