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

type FeedbackService interface {
	CreateUserFeedback(ctx context.Context, req *request.CreateUserFeedbackRequest) (*response.UserFeedbackResponse, error)
	ListUserFeedback(ctx context.Context, userId string) (*response.UserFeedbackListResponse, error)
	CreatePitchFeedback(ctx context.Context, req *request.CreatePitchFeedbackRequest) (*response.PitchFeedbackResponse, error)
	ListPitchFeedback(ctx context.Context, pitchId string) (*response.PitchFeedbackListResponse, error)
}

type FeedbackHandler struct {
	svc FeedbackService
	log *zap.Logger
}

func NewFeedbackHandler(svc FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		svc: svc,
		log: log,
	}
}

func (h *FeedbackHandler) CreateUserFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.CreateUserFeedback(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create user feedback",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *FeedbackHandler) ListUserFeedback(w http.ResponseWriter, r *http.Request) {
	userId := r.URL.Query().Get("user_id")

	resp, err := h.svc.ListUserFeedback(r.Context(), userId)
	if err != nil {
		h.log.Error("failed to list user feedback", zap.String("user_id", userId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *FeedbackHandler) CreatePitchFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePitchFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.CreatePitchFeedback(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create pitch feedback",
			zap.String("pitch_id", req.PitchId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *FeedbackHandler) ListPitchFeedback(w http.ResponseWriter, r *http.Request) {
	pitchId := r.URL.Query().Get("pitch_id")

	resp, err := h.svc.ListPitchFeedback(r.Context(), pitchId)
	if err != nil {
		h.log.Error("failed to list pitch feedback", zap.String("pitch_id", pitchId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
