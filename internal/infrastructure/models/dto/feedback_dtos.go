package dto

type CreateUserFeedbackDTO struct {
	FeedbackId string
	StaffId    string
	UserId     string
	PitchId    string
	Stars      int
	Reasoning  string
}

type CreatePitchFeedbackDTO struct {
	FeedbackId string
	PitchId    string
	UserId     string
	Stars      int
	Message    string
}
