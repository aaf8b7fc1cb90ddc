package request

type AddTeamRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type AddInterestRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
