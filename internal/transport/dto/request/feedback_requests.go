package request

type CreateUserFeedbackRequest struct {
	StaffId   string `json:"staff_id"`
	UserId    string `json:"user_id"`
	PitchId   string `json:"pitch_id"`
	Stars     int    `json:"stars"`
	Reasoning string `json:"reasoning"`
}

type CreatePitchFeedbackRequest struct {
	PitchId string `json:"pitch_id"`
	UserId  string `json:"user_id"`
	Stars   int    `json:"stars"`
	Message string `json:"message"`
}
