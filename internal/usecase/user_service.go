package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"go.uber.org/zap"
)

var (
	createUserError    = errors.New("create user error")
	getUserError       = errors.New("get user error")
	listUsersError     = errors.New("list users error")
	touchUserError     = errors.New("touch user last active error")
	reviewOnboardError = errors.New("review onboarding error")
)

type UserRepository interface {
	Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error)
	GetById(ctx context.Context, userId string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetLastActive(ctx context.Context, d *dto.SetLastActiveDTO) (*domain.User, error)
	SetOnboardingStatus(ctx context.Context, d *dto.SetOnboardingStatusDTO) (*domain.User, error)
}

type UserService struct {
	repo UserRepository
	log  *zap.Logger
}

func NewUserService(repo UserRepository, log *zap.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

func (s *UserService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = domain.RoleContributor
	}

	d := &dto.CreateUserDTO{
		UserId:           uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Role:             role,
		OnboardingStatus: domain.OnboardingScheduled,
		Interests:        req.Interests,
		Teams:            req.Teams,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, WrapError(ErrAlreadyExists, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", createUserError, err)
	}

	return s.userResponse(res), nil
}

func (s *UserService) GetById(ctx context.Context, userId string) (*response.UserResponse, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	res, err := s.repo.GetById(ctx, userId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", getUserError, err)
	}

	return s.userResponse(res), nil
}

// List serves the contributor directory: filters and the name sort run in
// memory over the loaded collection.
func (s *UserService) List(ctx context.Context, req *request.ListUsersRequest) (*response.UserListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listUsersError, err)
	}

	now := time.Now().UTC()
	users = FilterUsersByInterests(users, req.Interests)
	users = FilterUsersByTeams(users, req.Teams)
	users = FilterUsersByRole(users, req.Role)
	users = FilterUsersByActivity(users, req.Activity, now)
	SortUsersByName(users)

	out := make([]*response.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, s.userResponse(u))
	}
	return &response.UserListResponse{Users: out}, nil
}

func (s *UserService) SetLastActive(ctx context.Context, req *request.SetLastActiveRequest) (*response.UserResponse, error) {
	if _, err := uuid.Parse(req.UserId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.SetLastActiveDTO{
		UserId:     req.UserId,
		LastActive: time.Now().UTC(),
	}

	res, err := s.repo.SetLastActive(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", touchUserError, err)
	}

	return s.userResponse(res), nil
}

// ReviewOnboarding resolves the onboarding wizard outcome: approval marks the
// user onboarded, decline marks the onboarding stalled. The role is untouched
// either way.
func (s *UserService) ReviewOnboarding(ctx context.Context, req *request.ReviewOnboardingRequest) (*response.UserResponse, error) {
	if _, err := uuid.Parse(req.UserId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.SetOnboardingStatusDTO{
		UserId: req.UserId,
	}
	if req.Approve {
		d.OnboardingStatus = domain.Onboarded
	} else {
		d.OnboardingStatus = domain.OnboardingStalled
	}

	res, err := s.repo.SetOnboardingStatus(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", reviewOnboardError, err)
	}

	return s.userResponse(res), nil
}

func (s *UserService) userResponse(u *domain.User) *response.UserResponse {
	return &response.UserResponse{
		User:     u,
		Activity: ClassifyActivity(u.LastActive, time.Now().UTC()),
	}
}
