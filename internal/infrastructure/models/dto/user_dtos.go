package dto

import "time"

type CreateUserDTO struct {
	UserId           string
	FirstName        string
	LastName         string
	Email            string
	Role             string
	OnboardingStatus string
	Interests        []string
	Teams            []string
}

type SetLastActiveDTO struct {
	UserId     string
	LastActive time.Time
}

type SetOnboardingStatusDTO struct {
	UserId           string
	OnboardingStatus string
}
