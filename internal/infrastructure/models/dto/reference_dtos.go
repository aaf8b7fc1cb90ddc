package dto

type AddTeamDTO struct {
	TeamId string
	Name   string
	Color  string
	Active bool
}

type AddInterestDTO struct {
	InterestId string
	Name       string
	Color      string
	Active     bool
}
