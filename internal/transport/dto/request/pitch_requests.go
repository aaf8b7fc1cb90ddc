package request

import "time"

type TeamSlotPayload struct {
	TeamId string `json:"team_id"`
	Target int    `json:"target"`
}

type CreatePitchRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Link               string     `json:"link"`
	AuthorId           string     `json:"author_id"`
	Topics             []string   `json:"topics"`
	ConflictOfInterest bool       `json:"conflict_of_interest"`
	Deadline           *time.Time `json:"deadline"`
}

type ApprovePitchRequest struct {
	PitchId         string            `json:"pitch_id"`
	Teams           []TeamSlotPayload `json:"teams"`
	WriterId        string            `json:"writer_id"`
	PrimaryEditorId string            `json:"primary_editor_id"`
	SecondEditorId  string            `json:"second_editor_id"`
	ThirdEditorId   string            `json:"third_editor_id"`
}

type DeclinePitchRequest struct {
	PitchId string `json:"pitch_id"`
}

type SubmitClaimRequest struct {
	PitchId string   `json:"-"`
	UserId  string   `json:"user_id"`
	TeamIds []string `json:"teams"`
	Message string   `json:"message"`
}

type ClaimActionRequest struct {
	PitchId string `json:"-"`
	UserId  string `json:"user_id"`
	TeamId  string `json:"team_id"`
}

type SetTeamTargetRequest struct {
	PitchId string `json:"-"`
	TeamId  string `json:"team_id"`
	Target  int    `json:"target"`
}

type ListPitchesRequest struct {
	Status      string
	ClaimStatus string
	Interests   []string
	SortBy      string
	Descending  bool
}
