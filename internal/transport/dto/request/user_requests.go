package request

type CreateUserRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Interests []string `json:"interests"`
	Teams     []string `json:"teams"`
}

type SetLastActiveRequest struct {
	UserId string `json:"-"`
}

type ReviewOnboardingRequest struct {
	UserId  string `json:"-"`
	Approve bool   `json:"approve"`
}

type ListUsersRequest struct {
	Interests []string
	Teams     []string
	Role      string
	Activity  string
}
