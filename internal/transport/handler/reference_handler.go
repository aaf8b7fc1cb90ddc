package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"github.com/southsideweekly/contributor-hub/internal/usecase"
	"go.uber.org/zap"
)

type ReferenceService interface {
	AddTeam(ctx context.Context, req *request.AddTeamRequest) (*response.TeamResponse, error)
	ListTeams(ctx context.Context) (*response.TeamListResponse, error)
	AddInterest(ctx context.Context, req *request.AddInterestRequest) (*response.InterestResponse, error)
	ListInterests(ctx context.Context) (*response.InterestListResponse, error)
}

type ReferenceHandler struct {
	svc ReferenceService
	log *zap.Logger
}

func NewReferenceHandler(svc ReferenceService, log *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		svc: svc,
		log: log,
	}
}

func (h *ReferenceHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var req request.AddTeamRequest
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

	resp, err := h.svc.AddTeam(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to add team", zap.String("team_name", req.Name), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *ReferenceHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.ListTeams(r.Context())
	if err != nil {
		h.log.Error("failed to list teams", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ReferenceHandler) AddInterest(w http.ResponseWriter, r *http.Request) {
	var req request.AddInterestRequest
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

	resp, err := h.svc.AddInterest(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to add interest", zap.String("interest_name", req.Name), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *ReferenceHandler) ListInterests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.ListInterests(r.Context())
	if err != nil {
		h.log.Error("failed to list interests", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
