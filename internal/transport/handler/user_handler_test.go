package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"github.com/southsideweekly/contributor-hub/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) GetById(ctx context.Context, userId string) (*response.UserResponse, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, req *request.ListUsersRequest) (*response.UserListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserListResponse), args.Error(1)
}

func (m *MockUserService) SetLastActive(ctx context.Context, req *request.SetLastActiveRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) ReviewOnboarding(ctx context.Context, req *request.ReviewOnboardingRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	reqBody := request.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
	}

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(r *request.CreateUserRequest) bool {
		return r.Email == "ada@example.org"
	})).Return(&response.UserResponse{
		User:     &domain.User{Id: "u1", FirstName: "Ada", Role: domain.RoleContributor},
		Activity: domain.ActivityActive,
	}, nil)

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserHandler_CreateUser_MissingEmail(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	body, _ := json.Marshal(request.CreateUserRequest{FirstName: "Ada", LastName: "Lovelace"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	mockService.On("GetById", mock.Anything, "u1").Return(nil, usecase.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
	req = withURLParam(req, "id", "u1")
	w := httptest.NewRecorder()

	handler.GetUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var result map[string]map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "NOT_FOUND", result["error"]["code"])
}

func TestUserHandler_ListUsers_QueryParams(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	mockService.On("List", mock.Anything, mock.MatchedBy(func(r *request.ListUsersRequest) bool {
		return len(r.Interests) == 2 &&
			len(r.Teams) == 1 &&
			r.Role == domain.RoleStaff &&
			r.Activity == domain.ActivityActive
	})).Return(&response.UserListResponse{Users: []*response.UserResponse{}}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/users?interests=housing,transit&teams=writing&role=STAFF&activity=ACTIVE", nil)
	w := httptest.NewRecorder()

	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserHandler_ReviewOnboarding(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	mockService.On("ReviewOnboarding", mock.Anything, mock.MatchedBy(func(r *request.ReviewOnboardingRequest) bool {
		return r.UserId == "u1" && r.Approve
	})).Return(&response.UserResponse{
		User: &domain.User{Id: "u1", OnboardingStatus: domain.Onboarded},
	}, nil)

	body, _ := json.Marshal(request.ReviewOnboardingRequest{Approve: true})
	req := httptest.NewRequest(http.MethodPut, "/users/u1/reviewOnboarding", bytes.NewReader(body))
	req = withURLParam(req, "id", "u1")
	w := httptest.NewRecorder()

	handler.ReviewOnboarding(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserHandler_SetLastActive(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserHandler(mockService, zap.NewNop())

	mockService.On("SetLastActive", mock.Anything, mock.MatchedBy(func(r *request.SetLastActiveRequest) bool {
		return r.UserId == "u1"
	})).Return(&response.UserResponse{
		User:     &domain.User{Id: "u1"},
		Activity: domain.ActivityActive,
	}, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/u1/lastActive", nil)
	req = withURLParam(req, "id", "u1")
	w := httptest.NewRecorder()

	handler.SetLastActive(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
