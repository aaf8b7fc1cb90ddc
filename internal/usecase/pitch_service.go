package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/cache"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/result"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"go.uber.org/zap"
)

var (
	createPitchError   = errors.New("create pitch error")
	reviewPitchError   = errors.New("review pitch error")
	listPitchesError   = errors.New("list pitches error")
	claimMutationError = errors.New("claim mutation error")
	aggregateError     = errors.New("aggregate pitch error")
)

// Bounded retries for the optimistic version check on claim mutations.
const claimMutationRetries = 3

type PitchRepository interface {
	Create(ctx context.Context, d *dto.CreatePitchDTO) (*domain.Pitch, error)
	GetById(ctx context.Context, pitchId string) (*domain.Pitch, error)
	List(ctx context.Context) ([]*domain.Pitch, error)
	Approve(ctx context.Context, d *dto.ReviewPitchDTO) (*domain.Pitch, error)
	Decline(ctx context.Context, pitchId string) (*domain.Pitch, error)
	SaveClaimState(ctx context.Context, d *dto.SaveClaimStateDTO) error
}

type ReferenceLister interface {
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	ListInterests(ctx context.Context) ([]*domain.Interest, error)
}

type UserLister interface {
	List(ctx context.Context) ([]*domain.User, error)
}

type IssueLister interface {
	List(ctx context.Context) ([]*domain.Issue, error)
}

type PitchService struct {
	repo   PitchRepository
	users  UserLister
	refs   ReferenceLister
	issues IssueLister
	views  cache.ViewCache
	log    *zap.Logger
}

func NewPitchService(
	repo PitchRepository,
	users UserLister,
	refs ReferenceLister,
	issues IssueLister,
	views cache.ViewCache,
	log *zap.Logger,
) *PitchService {
	return &PitchService{
		repo:   repo,
		users:  users,
		refs:   refs,
		issues: issues,
		views:  views,
		log:    log,
	}
}

func (s *PitchService) Create(ctx context.Context, req *request.CreatePitchRequest) (*response.PitchResponse, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}
	if req.AuthorId != "" {
		if _, err := uuid.Parse(req.AuthorId); err != nil {
			return nil, WrapError(ErrInvalidInput, err)
		}
	}

	d := &dto.CreatePitchDTO{
		PitchId:            uuid.NewString(),
		Title:              req.Title,
		Description:        req.Description,
		Link:               req.Link,
		AuthorId:           req.AuthorId,
		Topics:             req.Topics,
		ConflictOfInterest: req.ConflictOfInterest,
		Deadline:           req.Deadline,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", createPitchError, err)
	}

	return &response.PitchResponse{Pitch: res}, nil
}

// Approve finalizes review: per-team targets must be non-negative and the
// pitch moves to APPROVED with its editors set.
func (s *PitchService) Approve(ctx context.Context, req *request.ApprovePitchRequest) (*response.PitchResponse, error) {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	teams := make([]domain.TeamSlot, 0, len(req.Teams))
	for _, slot := range req.Teams {
		if slot.Target < 0 {
			return nil, ErrNegativeTarget
		}
		teams = append(teams, domain.TeamSlot{TeamId: slot.TeamId, Target: slot.Target})
	}

	d := &dto.ReviewPitchDTO{
		PitchId:         req.PitchId,
		Teams:           teams,
		WriterId:        req.WriterId,
		PrimaryEditorId: req.PrimaryEditorId,
		SecondEditorId:  req.SecondEditorId,
		ThirdEditorId:   req.ThirdEditorId,
	}

	res, err := s.repo.Approve(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrPitchNotFound, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", reviewPitchError, err)
	}

	s.views.Invalidate(ctx, req.PitchId)
	return &response.PitchResponse{Pitch: res}, nil
}

func (s *PitchService) Decline(ctx context.Context, req *request.DeclinePitchRequest) (*response.PitchResponse, error) {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	res, err := s.repo.Decline(ctx, req.PitchId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrPitchNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", reviewPitchError, err)
	}

	s.views.Invalidate(ctx, req.PitchId)
	return &response.PitchResponse{Pitch: res}, nil
}

func (s *PitchService) List(ctx context.Context, req *request.ListPitchesRequest) (*response.PitchListResponse, error) {
	pitches, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listPitchesError, err)
	}

	pitches = FilterPitchesByStatus(pitches, req.Status)
	pitches = FilterPitchesByClaimStatus(pitches, req.ClaimStatus)
	pitches = FilterPitchesByInterest(pitches, req.Interests)

	switch req.SortBy {
	case "title":
		SortPitchesByTitle(pitches)
	case "deadline":
		SortPitchesByDeadline(pitches, req.Descending)
	}

	return &response.PitchListResponse{Pitches: pitches}, nil
}

func (s *PitchService) SubmitClaim(ctx context.Context, req *request.SubmitClaimRequest) (*response.PitchResponse, error) {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	if _, err := uuid.Parse(req.UserId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	return s.mutateClaimState(ctx, req.PitchId, func(p *domain.Pitch) error {
		return SubmitClaim(p, req.UserId, req.TeamIds, req.Message, now)
	})
}

func (s *PitchService) ApproveClaim(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error) {
	if err := validateClaimAction(req); err != nil {
		return nil, err
	}
	return s.mutateClaimState(ctx, req.PitchId, func(p *domain.Pitch) error {
		return ApproveClaim(p, req.UserId, req.TeamId)
	})
}

func (s *PitchService) DeclineClaim(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error) {
	if err := validateClaimAction(req); err != nil {
		return nil, err
	}
	return s.mutateClaimState(ctx, req.PitchId, func(p *domain.Pitch) error {
		DeclineClaim(p, req.UserId, req.TeamId)
		return nil
	})
}

func (s *PitchService) RemoveContributor(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error) {
	if err := validateClaimAction(req); err != nil {
		return nil, err
	}
	return s.mutateClaimState(ctx, req.PitchId, func(p *domain.Pitch) error {
		return RemoveContributor(p, req.UserId, req.TeamId)
	})
}

func (s *PitchService) SetTeamTarget(ctx context.Context, req *request.SetTeamTargetRequest) (*response.PitchResponse, error) {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	if req.TeamId == "" {
		return nil, ErrInvalidInput
	}
	return s.mutateClaimState(ctx, req.PitchId, func(p *domain.Pitch) error {
		return SetTeamTarget(p, req.TeamId, req.Target)
	})
}

// Aggregate serves the display view: redis first, recompute on miss.
func (s *PitchService) Aggregate(ctx context.Context, pitchId string) (*response.AggregatedPitchResponse, error) {
	if _, err := uuid.Parse(pitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	if view, ok := s.views.Get(ctx, pitchId); ok {
		s.log.Debug("aggregated view served from cache", zap.String("pitch_id", pitchId))
		return &response.AggregatedPitchResponse{View: view}, nil
	}

	p, err := s.repo.GetById(ctx, pitchId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrPitchNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", aggregateError, err)
	}

	lookups, err := s.loadLookups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", aggregateError, err)
	}

	view := AggregatePitch(p, lookups, s.log)
	s.views.Set(ctx, pitchId, view)
	return &response.AggregatedPitchResponse{View: view}, nil
}

// mutateClaimState runs one engine operation against a freshly read pitch and
// writes the result back under the optimistic version check, retrying the
// whole read-mutate-write cycle on a conflict.
func (s *PitchService) mutateClaimState(ctx context.Context, pitchId string, op func(*domain.Pitch) error) (*response.PitchResponse, error) {
	for attempt := 0; attempt < claimMutationRetries; attempt++ {
		p, err := s.repo.GetById(ctx, pitchId)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, WrapError(ErrPitchNotFound, err)
			}
			return nil, fmt.Errorf("%w: %w", claimMutationError, err)
		}

		if err := op(p); err != nil {
			return nil, err
		}

		err = s.repo.SaveClaimState(ctx, &dto.SaveClaimStateDTO{
			PitchId:          p.Id,
			ExpectedVersion:  p.Version,
			AssignmentStatus: p.AssignmentStatus,
			Teams:            p.Teams,
			Contributors:     p.AssignmentContributors,
			Claims:           p.PendingContributors,
		})
		if errors.Is(err, repository.ErrVersionConflict) {
			s.log.Warn("claim state version conflict, retrying",
				zap.String("pitch_id", pitchId),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, WrapError(ErrPitchNotFound, err)
			}
			return nil, fmt.Errorf("%w: %w", claimMutationError, err)
		}

		s.views.Invalidate(ctx, pitchId)
		return &response.PitchResponse{Pitch: p}, nil
	}
	return nil, ErrConflict
}

func (s *PitchService) loadLookups(ctx context.Context) (Lookups, error) {
	data := &result.ReferenceDataResult{}

	var err error
	if data.Users, err = s.users.List(ctx); err != nil {
		return Lookups{}, err
	}
	if data.Teams, err = s.refs.ListTeams(ctx); err != nil {
		return Lookups{}, err
	}
	if data.Interests, err = s.refs.ListInterests(ctx); err != nil {
		return Lookups{}, err
	}
	if data.Issues, err = s.issues.List(ctx); err != nil {
		return Lookups{}, err
	}

	return NewLookups(data), nil
}

func validateClaimAction(req *request.ClaimActionRequest) error {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return WrapError(ErrInvalidInput, err)
	}
	if _, err := uuid.Parse(req.UserId); err != nil {
		return WrapError(ErrInvalidInput, err)
	}
	if req.TeamId == "" {
		return ErrInvalidInput
	}
	return nil
}
