package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
)

var (
	addTeamError       = errors.New("add team error")
	addInterestError   = errors.New("add interest error")
	listTeamsError     = errors.New("list teams error")
	listInterestsError = errors.New("list interests error")
)

type ReferenceRepository interface {
	AddTeam(ctx context.Context, d *dto.AddTeamDTO) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	AddInterest(ctx context.Context, d *dto.AddInterestDTO) (*domain.Interest, error)
	ListInterests(ctx context.Context) ([]*domain.Interest, error)
}

type ReferenceService struct {
	repo ReferenceRepository
}

func NewReferenceService(repo ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) AddTeam(ctx context.Context, req *request.AddTeamRequest) (*response.TeamResponse, error) {
	if req.Name == "" {
		return nil, ErrInvalidInput
	}

	d := &dto.AddTeamDTO{
		TeamId: uuid.NewString(),
		Name:   req.Name,
		Color:  req.Color,
		Active: true,
	}

	res, err := s.repo.AddTeam(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, WrapError(ErrAlreadyExists, err)
		}
		return nil, fmt.Errorf("%w: %w", addTeamError, err)
	}

	return &response.TeamResponse{Team: res}, nil
}

func (s *ReferenceService) ListTeams(ctx context.Context) (*response.TeamListResponse, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listTeamsError, err)
	}
	return &response.TeamListResponse{Teams: teams}, nil
}

func (s *ReferenceService) AddInterest(ctx context.Context, req *request.AddInterestRequest) (*response.InterestResponse, error) {
	if req.Name == "" {
		return nil, ErrInvalidInput
	}

	d := &dto.AddInterestDTO{
		InterestId: uuid.NewString(),
		Name:       req.Name,
		Color:      req.Color,
		Active:     true,
	}

	res, err := s.repo.AddInterest(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, WrapError(ErrAlreadyExists, err)
		}
		return nil, fmt.Errorf("%w: %w", addInterestError, err)
	}

	return &response.InterestResponse{Interest: res}, nil
}

func (s *ReferenceService) ListInterests(ctx context.Context) (*response.InterestListResponse, error) {
	interests, err := s.repo.ListInterests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listInterestsError, err)
	}
	return &response.InterestListResponse{Interests: interests}, nil
}
