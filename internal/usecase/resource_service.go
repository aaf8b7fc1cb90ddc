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
	createResourceError = errors.New("create resource error")
	updateResourceError = errors.New("update resource error")
	deleteResourceError = errors.New("delete resource error")
	listResourcesError  = errors.New("list resources error")
)

type ResourceRepository interface {
	Create(ctx context.Context, d *dto.CreateResourceDTO) (*domain.Resource, error)
	Update(ctx context.Context, d *dto.UpdateResourceDTO) (*domain.Resource, error)
	Delete(ctx context.Context, resourceId string) error
	List(ctx context.Context) ([]*domain.Resource, error)
}

type ResourceService struct {
	repo ResourceRepository
}

func NewResourceService(repo ResourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

func (s *ResourceService) Create(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error) {
	if req.Name == "" {
		return nil, ErrInvalidInput
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = domain.VisibilityGeneral
	}

	d := &dto.CreateResourceDTO{
		ResourceId: uuid.NewString(),
		Name:       req.Name,
		Link:       req.Link,
		Visibility: visibility,
		Teams:      req.Teams,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", createResourceError, err)
	}

	return &response.ResourceResponse{Resource: res}, nil
}

func (s *ResourceService) Update(ctx context.Context, req *request.UpdateResourceRequest) (*response.ResourceResponse, error) {
	if _, err := uuid.Parse(req.ResourceId); err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	if req.Name == "" {
		return nil, ErrInvalidInput
	}

	d := &dto.UpdateResourceDTO{
		ResourceId: req.ResourceId,
		Name:       req.Name,
		Link:       req.Link,
		Visibility: req.Visibility,
		Teams:      req.Teams,
	}

	res, err := s.repo.Update(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrResourceNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", updateResourceError, err)
	}

	return &response.ResourceResponse{Resource: res}, nil
}

func (s *ResourceService) Delete(ctx context.Context, resourceId string) error {
	if _, err := uuid.Parse(resourceId); err != nil {
		return WrapError(ErrInvalidInput, err)
	}

	if err := s.repo.Delete(ctx, resourceId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return WrapError(ErrResourceNotFound, err)
		}
		return fmt.Errorf("%w: %w", deleteResourceError, err)
	}
	return nil
}

func (s *ResourceService) List(ctx context.Context) (*response.ResourceListResponse, error) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listResourcesError, err)
	}
	return &response.ResourceListResponse{Resources: resources}, nil
}
