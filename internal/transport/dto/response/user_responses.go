package response

import "github.com/southsideweekly/contributor-hub/internal/domain"

type UserResponse struct {
	User     *domain.User `json:"user"`
	Activity string       `json:"activity"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}
