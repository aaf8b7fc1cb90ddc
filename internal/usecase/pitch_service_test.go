package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/cache"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPitchRepository struct {
	mock.Mock
}

func (m *MockPitchRepository) Create(ctx context.Context, d *dto.CreatePitchDTO) (*domain.Pitch, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pitch), args.Error(1)
}

func (m *MockPitchRepository) GetById(ctx context.Context, pitchId string) (*domain.Pitch, error) {
	args := m.Called(ctx, pitchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pitch), args.Error(1)
}

func (m *MockPitchRepository) List(ctx context.Context) ([]*domain.Pitch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pitch), args.Error(1)
}

func (m *MockPitchRepository) Approve(ctx context.Context, d *dto.ReviewPitchDTO) (*domain.Pitch, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pitch), args.Error(1)
}

func (m *MockPitchRepository) Decline(ctx context.Context, pitchId string) (*domain.Pitch, error) {
	args := m.Called(ctx, pitchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pitch), args.Error(1)
}

func (m *MockPitchRepository) SaveClaimState(ctx context.Context, d *dto.SaveClaimStateDTO) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockUserLister struct {
	mock.Mock
}

func (m *MockUserLister) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type MockReferenceLister struct {
	mock.Mock
}

func (m *MockReferenceLister) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockReferenceLister) ListInterests(ctx context.Context) ([]*domain.Interest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Interest), args.Error(1)
}

type MockIssueLister struct {
	mock.Mock
}

func (m *MockIssueLister) List(ctx context.Context) ([]*domain.Issue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Issue), args.Error(1)
}

func newTestPitchService(repo *MockPitchRepository) *PitchService {
	return NewPitchService(
		repo,
		new(MockUserLister),
		new(MockReferenceLister),
		new(MockIssueLister),
		cache.NewNoopViewCache(),
		zap.NewNop(),
	)
}

func TestPitchService_Create_Success(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	authorId := uuid.NewString()
	req := &request.CreatePitchRequest{
		Title:    "Housing Story",
		AuthorId: authorId,
		Topics:   []string{"housing"},
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreatePitchDTO) bool {
		return d.Title == "Housing Story" && d.AuthorId == authorId && d.PitchId != ""
	})).Return(&domain.Pitch{Id: "p1", Title: "Housing Story", Status: domain.PitchStatusPending}, nil)

	resp, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.PitchStatusPending, resp.Pitch.Status)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_Create_EmptyTitle(t *testing.T) {
	service := newTestPitchService(new(MockPitchRepository))

	resp, err := service.Create(context.Background(), &request.CreatePitchRequest{Title: ""})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestPitchService_Approve_NegativeTarget(t *testing.T) {
	service := newTestPitchService(new(MockPitchRepository))

	req := &request.ApprovePitchRequest{
		PitchId: uuid.NewString(),
		Teams:   []request.TeamSlotPayload{{TeamId: "writing", Target: -1}},
	}

	resp, err := service.Approve(context.Background(), req)

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestPitchService_Approve_NotFound(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	mockRepo.On("Approve", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	resp, err := service.Approve(context.Background(), &request.ApprovePitchRequest{PitchId: pitchId})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_SubmitClaim_Success(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	userId := uuid.NewString()

	mockRepo.On("GetById", mock.Anything, pitchId).Return(&domain.Pitch{
		Id:      pitchId,
		Status:  domain.PitchStatusApproved,
		Version: 4,
		Teams:   []domain.TeamSlot{{TeamId: "writing", Target: 1}},
	}, nil)
	mockRepo.On("SaveClaimState", mock.Anything, mock.MatchedBy(func(d *dto.SaveClaimStateDTO) bool {
		return d.PitchId == pitchId && d.ExpectedVersion == 4 && len(d.Claims) == 1
	})).Return(nil)

	resp, err := service.SubmitClaim(context.Background(), &request.SubmitClaimRequest{
		PitchId: pitchId,
		UserId:  userId,
		TeamIds: []string{"writing"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Pitch.PendingContributors, 1)
	assert.Equal(t, userId, resp.Pitch.PendingContributors[0].UserId)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_SubmitClaim_NotApproved(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	mockRepo.On("GetById", mock.Anything, pitchId).Return(&domain.Pitch{
		Id:     pitchId,
		Status: domain.PitchStatusPending,
	}, nil)

	resp, err := service.SubmitClaim(context.Background(), &request.SubmitClaimRequest{
		PitchId: pitchId,
		UserId:  uuid.NewString(),
		TeamIds: []string{"writing"},
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	mockRepo.AssertNotCalled(t, "SaveClaimState", mock.Anything, mock.Anything)
}

func TestPitchService_ApproveClaim_RetriesOnVersionConflict(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	userId := uuid.NewString()

	freshPitch := func() *domain.Pitch {
		return &domain.Pitch{
			Id:     pitchId,
			Status: domain.PitchStatusApproved,
			Teams:  []domain.TeamSlot{{TeamId: "writing", Target: 1}},
			PendingContributors: []domain.Claim{
				{UserId: userId, Teams: []string{"writing"}, Status: domain.ClaimStatusPending},
			},
		}
	}
	mockRepo.On("GetById", mock.Anything, pitchId).Return(freshPitch(), nil).Once()
	mockRepo.On("SaveClaimState", mock.Anything, mock.Anything).Return(repository.ErrVersionConflict).Once()
	mockRepo.On("GetById", mock.Anything, pitchId).Return(freshPitch(), nil).Once()
	mockRepo.On("SaveClaimState", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := service.ApproveClaim(context.Background(), &request.ClaimActionRequest{
		PitchId: pitchId,
		UserId:  userId,
		TeamId:  "writing",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentClaimed, resp.Pitch.AssignmentStatus)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_ApproveClaim_ConflictAfterRetriesExhausted(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	userId := uuid.NewString()

	freshPitch := func() *domain.Pitch {
		return &domain.Pitch{
			Id:     pitchId,
			Status: domain.PitchStatusApproved,
			Teams:  []domain.TeamSlot{{TeamId: "writing", Target: 1}},
			PendingContributors: []domain.Claim{
				{UserId: userId, Teams: []string{"writing"}, Status: domain.ClaimStatusPending},
			},
		}
	}
	// Every retry re-reads the pitch, so each read must carry the claim again.
	for i := 0; i < 3; i++ {
		mockRepo.On("GetById", mock.Anything, pitchId).Return(freshPitch(), nil).Once()
		mockRepo.On("SaveClaimState", mock.Anything, mock.Anything).Return(repository.ErrVersionConflict).Once()
	}

	resp, err := service.ApproveClaim(context.Background(), &request.ClaimActionRequest{
		PitchId: pitchId,
		UserId:  userId,
		TeamId:  "writing",
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	mockRepo.AssertNumberOfCalls(t, "SaveClaimState", 3)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_SetTeamTarget_BelowAssigned(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	mockRepo.On("GetById", mock.Anything, pitchId).Return(&domain.Pitch{
		Id:     pitchId,
		Status: domain.PitchStatusApproved,
		Teams:  []domain.TeamSlot{{TeamId: "writing", Target: 2}},
		AssignmentContributors: []domain.Contributor{
			{UserId: uuid.NewString(), Teams: []string{"writing"}},
			{UserId: uuid.NewString(), Teams: []string{"writing"}},
		},
	}, nil)

	resp, err := service.SetTeamTarget(context.Background(), &request.SetTeamTargetRequest{
		PitchId: pitchId,
		TeamId:  "writing",
		Target:  1,
	})

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	mockRepo.AssertNotCalled(t, "SaveClaimState", mock.Anything, mock.Anything)
}

func TestPitchService_List_FiltersAndSorts(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	mockRepo.On("List", mock.Anything).Return([]*domain.Pitch{
		{Id: "p1", Title: "Zoning", Status: domain.PitchStatusApproved, Topics: []string{"housing"}},
		{Id: "p2", Title: "Art Walk", Status: domain.PitchStatusApproved, Topics: []string{"arts"}},
		{Id: "p3", Title: "Transit", Status: domain.PitchStatusPending, Topics: []string{"transit"}},
	}, nil)

	resp, err := service.List(context.Background(), &request.ListPitchesRequest{
		Status: domain.PitchStatusApproved,
		SortBy: "title",
	})

	require.NoError(t, err)
	require.Len(t, resp.Pitches, 2)
	assert.Equal(t, "p2", resp.Pitches[0].Id)
	assert.Equal(t, "p1", resp.Pitches[1].Id)
}

func TestPitchService_Aggregate_NotFound(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	service := newTestPitchService(mockRepo)

	pitchId := uuid.NewString()
	mockRepo.On("GetById", mock.Anything, pitchId).Return(nil, repository.ErrNotFound)

	resp, err := service.Aggregate(context.Background(), pitchId)

	assert.Nil(t, resp)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPitchService_Aggregate_Success(t *testing.T) {
	mockRepo := new(MockPitchRepository)
	users := new(MockUserLister)
	refs := new(MockReferenceLister)
	issues := new(MockIssueLister)
	service := NewPitchService(mockRepo, users, refs, issues, cache.NewNoopViewCache(), zap.NewNop())

	pitchId := uuid.NewString()
	authorId := uuid.NewString()

	mockRepo.On("GetById", mock.Anything, pitchId).Return(&domain.Pitch{
		Id:       pitchId,
		Title:    "Housing Story",
		AuthorId: authorId,
		Teams:    []domain.TeamSlot{{TeamId: "team1", Target: 1}},
	}, nil)
	users.On("List", mock.Anything).Return([]*domain.User{
		{Id: authorId, FirstName: "Ada", LastName: "Lovelace"},
	}, nil)
	refs.On("ListTeams", mock.Anything).Return([]*domain.Team{
		{Id: "team1", Name: "Writing"},
	}, nil)
	refs.On("ListInterests", mock.Anything).Return([]*domain.Interest{}, nil)
	issues.On("List", mock.Anything).Return([]*domain.Issue{}, nil)

	resp, err := service.Aggregate(context.Background(), pitchId)

	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.View.Author.FirstName)
	require.Len(t, resp.View.Teams, 1)
	assert.Equal(t, "Writing", resp.View.Teams[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestPitchService_InvalidIds(t *testing.T) {
	service := newTestPitchService(new(MockPitchRepository))

	_, err := service.SubmitClaim(context.Background(), &request.SubmitClaimRequest{
		PitchId: "not-a-uuid",
		UserId:  uuid.NewString(),
		TeamIds: []string{"writing"},
	})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)

	_, err = service.Aggregate(context.Background(), "nope")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}
