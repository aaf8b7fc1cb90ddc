package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/cache"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
)

var (
	createIssueError    = errors.New("create issue error")
	listIssuesError     = errors.New("list issues error")
	setPitchStatusError = errors.New("set issue pitch status error")
)

type IssueRepository interface {
	Create(ctx context.Context, d *dto.CreateIssueDTO) (*domain.Issue, error)
	List(ctx context.Context) ([]*domain.Issue, error)
	SetPitchStatus(ctx context.Context, d *dto.SetIssuePitchStatusDTO) (*domain.IssuePitch, error)
}

type IssueService struct {
	repo  IssueRepository
	views cache.ViewCache
}

func NewIssueService(repo IssueRepository, views cache.ViewCache) *IssueService {
	return &IssueService{
		repo:  repo,
		views: views,
	}
}

func (s *IssueService) Create(ctx context.Context, req *request.CreateIssueRequest) (*response.IssueResponse, error) {
	if req.ReleaseDate.IsZero() || req.DeadlineDate.IsZero() {
		return nil, ErrInvalidInput
	}

	d := &dto.CreateIssueDTO{
		IssueId:      uuid.NewString(),
		ReleaseDate:  req.ReleaseDate,
		DeadlineDate: req.DeadlineDate,
		Type:         req.Type,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", createIssueError, err)
	}

	return &response.IssueResponse{Issue: res}, nil
}

func (s *IssueService) List(ctx context.Context) (*response.IssueListResponse, error) {
	issues, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listIssuesError, err)
	}
	return &response.IssueListResponse{Issues: issues}, nil
}

func (s *IssueService) SetPitchStatus(ctx context.Context, req *request.SetIssuePitchStatusRequest) (*response.IssuePitchResponse, error) {
	if _, err := uuid.Parse(req.IssueId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.SetIssuePitchStatusDTO{
		IssueId: req.IssueId,
		PitchId: req.PitchId,
		Status:  req.Status,
	}

	res, err := s.repo.SetPitchStatus(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrIssueNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", setPitchStatusError, err)
	}

	// The link lands in the pitch's aggregated view, so the cached view is stale now.
	s.views.Invalidate(ctx, req.PitchId)

	return &response.IssuePitchResponse{Link: res}, nil
}
