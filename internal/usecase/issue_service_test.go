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
)

type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, d *dto.CreateIssueDTO) (*domain.Issue, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockIssueRepository) List(ctx context.Context) ([]*domain.Issue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Issue), args.Error(1)
}

func (m *MockIssueRepository) SetPitchStatus(ctx context.Context, d *dto.SetIssuePitchStatusDTO) (*domain.IssuePitch, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuePitch), args.Error(1)
}

type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) Get(ctx context.Context, pitchId string) (*domain.AggregatedPitch, bool) {
	args := m.Called(ctx, pitchId)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.AggregatedPitch), args.Bool(1)
}

func (m *MockViewCache) Set(ctx context.Context, pitchId string, view *domain.AggregatedPitch) {
	m.Called(ctx, pitchId, view)
}

func (m *MockViewCache) Invalidate(ctx context.Context, pitchId string) {
	m.Called(ctx, pitchId)
}

func TestIssueService_SetPitchStatus_InvalidatesPitchView(t *testing.T) {
	mockRepo := new(MockIssueRepository)
	mockViews := new(MockViewCache)
	service := NewIssueService(mockRepo, mockViews)

	issueId := uuid.NewString()
	pitchId := uuid.NewString()
	mockRepo.On("SetPitchStatus", mock.Anything, mock.MatchedBy(func(d *dto.SetIssuePitchStatusDTO) bool {
		return d.IssueId == issueId && d.PitchId == pitchId && d.Status == "DRAFTING"
	})).Return(&domain.IssuePitch{
		IssueId: issueId,
		PitchId: pitchId,
		Status:  "DRAFTING",
	}, nil)
	mockViews.On("Invalidate", mock.Anything, pitchId).Once()

	resp, err := service.SetPitchStatus(context.Background(), &request.SetIssuePitchStatusRequest{
		IssueId: issueId,
		PitchId: pitchId,
		Status:  "DRAFTING",
	})

	require.NoError(t, err)
	assert.Equal(t, "DRAFTING", resp.Link.Status)
	mockViews.AssertExpectations(t)
}

func TestIssueService_SetPitchStatus_NotFoundKeepsCache(t *testing.T) {
	mockRepo := new(MockIssueRepository)
	mockViews := new(MockViewCache)
	service := NewIssueService(mockRepo, mockViews)

	issueId := uuid.NewString()
	pitchId := uuid.NewString()
	mockRepo.On("SetPitchStatus", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	resp, err := service.SetPitchStatus(context.Background(), &request.SetIssuePitchStatusRequest{
		IssueId: issueId,
		PitchId: pitchId,
		Status:  "DRAFTING",
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockViews.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestIssueService_Create_RequiresDates(t *testing.T) {
	mockRepo := new(MockIssueRepository)
	service := NewIssueService(mockRepo, new(MockViewCache))

	resp, err := service.Create(context.Background(), &request.CreateIssueRequest{
		ReleaseDate: time.Now().UTC(),
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
