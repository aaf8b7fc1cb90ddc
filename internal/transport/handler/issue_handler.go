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

type IssueService interface {
	Create(ctx context.Context, req *request.CreateIssueRequest) (*response.IssueResponse, error)
	List(ctx context.Context) (*response.IssueListResponse, error)
	SetPitchStatus(ctx context.Context, req *request.SetIssuePitchStatusRequest) (*response.IssuePitchResponse, error)
}

type IssueHandler struct {
	svc IssueService
	log *zap.Logger
}

func NewIssueHandler(svc IssueService, log *zap.Logger) *IssueHandler {
	return &IssueHandler{
		svc: svc,
		log: log,
	}
}

func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var req request.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create issue", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list issues", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *IssueHandler) SetPitchStatus(w http.ResponseWriter, r *http.Request) {
	var req request.SetIssuePitchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.IssueId = chi.URLParam(r, "id")

	if req.PitchId == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.SetPitchStatus(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to set issue pitch status",
			zap.String("issue_id", req.IssueId),
			zap.String("pitch_id", req.PitchId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
