package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"github.com/southsideweekly/contributor-hub/internal/usecase"
	"go.uber.org/zap"
)

type ResourceService interface {
	Create(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error)
	Update(ctx context.Context, req *request.UpdateResourceRequest) (*response.ResourceResponse, error)
	Delete(ctx context.Context, resourceId string) error
	List(ctx context.Context) (*response.ResourceListResponse, error)
}

type ResourceHandler struct {
	svc ResourceService
	log *zap.Logger
}

func NewResourceHandler(svc ResourceService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		svc: svc,
		log: log,
	}
}

func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req request.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.Name == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create resource", zap.String("name", req.Name), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.ResourceId = chi.URLParam(r, "id")

	resp, err := h.svc.Update(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to update resource", zap.String("resource_id", req.ResourceId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	resourceId := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), resourceId); err != nil {
		h.log.Error("failed to delete resource", zap.String("resource_id", resourceId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list resources", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
