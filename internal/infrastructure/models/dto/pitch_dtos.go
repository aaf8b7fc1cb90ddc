package dto

import (
	"time"

	"github.com/southsideweekly/contributor-hub/internal/domain"
)

type CreatePitchDTO struct {
	PitchId            string
	Title              string
	Description        string
	Link               string
	AuthorId           string
	Topics             []string
	ConflictOfInterest bool
	Deadline           *time.Time
}

type ReviewPitchDTO struct {
	PitchId         string
	Teams           []domain.TeamSlot
	WriterId        string
	PrimaryEditorId string
	SecondEditorId  string
	ThirdEditorId   string
}

// SaveClaimStateDTO carries the full claim state of a pitch back to storage
// after an engine mutation. ExpectedVersion guards against concurrent writers.
type SaveClaimStateDTO struct {
	PitchId          string
	ExpectedVersion  int
	AssignmentStatus string
	Teams            []domain.TeamSlot
	Contributors     []domain.Contributor
	Claims           []domain.Claim
}
