package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetById(ctx context.Context, userId string) (*domain.User, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetLastActive(ctx context.Context, d *dto.SetLastActiveDTO) (*domain.User, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetOnboardingStatus(ctx context.Context, d *dto.SetOnboardingStatusDTO) (*domain.User, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserService_Create_Defaults(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	req := &request.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateUserDTO) bool {
		return d.Role == domain.RoleContributor &&
			d.OnboardingStatus == domain.OnboardingScheduled &&
			d.UserId != ""
	})).Return(&domain.User{
		Id:               "u1",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Role:             domain.RoleContributor,
		OnboardingStatus: domain.OnboardingScheduled,
		LastActive:       time.Now().UTC(),
	}, nil)

	resp, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleContributor, resp.User.Role)
	assert.Equal(t, domain.ActivityActive, resp.Activity)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_MissingFields(t *testing.T) {
	service := NewUserService(new(MockUserRepository), zap.NewNop())

	resp, err := service.Create(context.Background(), &request.CreateUserRequest{FirstName: "Ada"})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrAlreadyExists)

	resp, err := service.Create(context.Background(), &request.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestUserService_GetById_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	userId := uuid.NewString()
	mockRepo.On("GetById", mock.Anything, userId).Return(nil, repository.ErrNotFound)

	resp, err := service.GetById(context.Background(), userId)

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUserService_List_FiltersAndSorts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	now := time.Now().UTC()
	mockRepo.On("List", mock.Anything).Return([]*domain.User{
		{Id: "u1", FirstName: "Zoe", LastName: "Baker", Teams: []string{"writing"}, LastActive: now},
		{Id: "u2", FirstName: "Alan", LastName: "Adams", Teams: []string{"writing"}, LastActive: now},
		{Id: "u3", FirstName: "Mary", LastName: "Curie", Teams: []string{"photo"}, LastActive: now},
	}, nil)

	resp, err := service.List(context.Background(), &request.ListUsersRequest{
		Teams: []string{"writing"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "u2", resp.Users[0].User.Id)
	assert.Equal(t, "u1", resp.Users[1].User.Id)
	assert.Equal(t, domain.ActivityActive, resp.Users[0].Activity)
}

func TestUserService_SetLastActive(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	userId := uuid.NewString()
	mockRepo.On("SetLastActive", mock.Anything, mock.MatchedBy(func(d *dto.SetLastActiveDTO) bool {
		return d.UserId == userId && !d.LastActive.IsZero()
	})).Return(&domain.User{Id: userId, LastActive: time.Now().UTC()}, nil)

	resp, err := service.SetLastActive(context.Background(), &request.SetLastActiveRequest{UserId: userId})

	require.NoError(t, err)
	assert.Equal(t, domain.ActivityActive, resp.Activity)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ReviewOnboarding_Approve(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	userId := uuid.NewString()
	mockRepo.On("SetOnboardingStatus", mock.Anything, mock.MatchedBy(func(d *dto.SetOnboardingStatusDTO) bool {
		return d.UserId == userId && d.OnboardingStatus == domain.Onboarded
	})).Return(&domain.User{
		Id:               userId,
		Role:             domain.RoleContributor,
		OnboardingStatus: domain.Onboarded,
	}, nil)

	resp, err := service.ReviewOnboarding(context.Background(), &request.ReviewOnboardingRequest{
		UserId:  userId,
		Approve: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Onboarded, resp.User.OnboardingStatus)
	assert.Equal(t, domain.RoleContributor, resp.User.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ReviewOnboarding_Decline(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, zap.NewNop())

	userId := uuid.NewString()
	mockRepo.On("SetOnboardingStatus", mock.Anything, mock.MatchedBy(func(d *dto.SetOnboardingStatusDTO) bool {
		return d.UserId == userId && d.OnboardingStatus == domain.OnboardingStalled
	})).Return(&domain.User{
		Id:               userId,
		Role:             domain.RoleContributor,
		OnboardingStatus: domain.OnboardingStalled,
	}, nil)

	resp, err := service.ReviewOnboarding(context.Background(), &request.ReviewOnboardingRequest{
		UserId:  userId,
		Approve: false,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OnboardingStalled, resp.User.OnboardingStatus)
	mockRepo.AssertExpectations(t)
}
