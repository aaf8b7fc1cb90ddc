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
	createFeedbackError = errors.New("create feedback error")
	listFeedbackError   = errors.New("list feedback error")
)

type FeedbackRepository interface {
	CreateUserFeedback(ctx context.Context, d *dto.CreateUserFeedbackDTO) (*domain.UserFeedback, error)
	ListUserFeedback(ctx context.Context, userId string) ([]*domain.UserFeedback, error)
	CreatePitchFeedback(ctx context.Context, d *dto.CreatePitchFeedbackDTO) (*domain.PitchFeedback, error)
	ListPitchFeedback(ctx context.Context, pitchId string) ([]*domain.PitchFeedback, error)
}

type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) CreateUserFeedback(ctx context.Context, req *request.CreateUserFeedbackRequest) (*response.UserFeedbackResponse, error) {
	if _, err := uuid.Parse(req.StaffId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	if _, err := uuid.Parse(req.UserId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.CreateUserFeedbackDTO{
		FeedbackId: uuid.NewString(),
		StaffId:    req.StaffId,
		UserId:     req.UserId,
		PitchId:    req.PitchId,
		Stars:      req.Stars,
		Reasoning:  req.Reasoning,
	}

	res, err := s.repo.CreateUserFeedback(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", createFeedbackError, err)
	}

	return &response.UserFeedbackResponse{Feedback: res}, nil
}

func (s *FeedbackService) ListUserFeedback(ctx context.Context, userId string) (*response.UserFeedbackListResponse, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	feedback, err := s.repo.ListUserFeedback(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listFeedbackError, err)
	}
	return &response.UserFeedbackListResponse{Feedback: feedback}, nil
}

func (s *FeedbackService) CreatePitchFeedback(ctx context.Context, req *request.CreatePitchFeedbackRequest) (*response.PitchFeedbackResponse, error) {
	if _, err := uuid.Parse(req.PitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.CreatePitchFeedbackDTO{
		FeedbackId: uuid.NewString(),
		PitchId:    req.PitchId,
		UserId:     req.UserId,
		Stars:      req.Stars,
		Message:    req.Message,
	}

	res, err := s.repo.CreatePitchFeedback(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", createFeedbackError, err)
	}

	return &response.PitchFeedbackResponse{Feedback: res}, nil
}

func (s *FeedbackService) ListPitchFeedback(ctx context.Context, pitchId string) (*response.PitchFeedbackListResponse, error) {
	if _, err := uuid.Parse(pitchId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	feedback, err := s.repo.ListPitchFeedback(ctx, pitchId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listFeedbackError, err)
	}
	return &response.PitchFeedbackListResponse{Feedback: feedback}, nil
}
