package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/request"
	"github.com/southsideweekly/contributor-hub/internal/transport/dto/response"
	"github.com/southsideweekly/contributor-hub/internal/usecase"
	"go.uber.org/zap"
)

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetById(ctx context.Context, userId string) (*response.UserResponse, error)
	List(ctx context.Context, req *request.ListUsersRequest) (*response.UserListResponse, error)
	SetLastActive(ctx context.Context, req *request.SetLastActiveRequest) (*response.UserResponse, error)
	ReviewOnboarding(ctx context.Context, req *request.ReviewOnboardingRequest) (*response.UserResponse, error)
}

type UserHandler struct {
	svc UserService
	log *zap.Logger
}

func NewUserHandler(svc UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		svc: svc,
		log: log,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("user created", zap.String("user_id", resp.User.Id))
	writeJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "id")

	resp, err := h.svc.GetById(r.Context(), userId)
	if err != nil {
		h.log.Error("failed to get user", zap.String("user_id", userId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := request.ListUsersRequest{
		Role:     q.Get("role"),
		Activity: q.Get("activity"),
	}
	if interests := q.Get("interests"); interests != "" {
		req.Interests = strings.Split(interests, ",")
	}
	if teams := q.Get("teams"); teams != "" {
		req.Teams = strings.Split(teams, ",")
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) SetLastActive(w http.ResponseWriter, r *http.Request) {
	req := request.SetLastActiveRequest{
		UserId: chi.URLParam(r, "id"),
	}

	resp, err := h.svc.SetLastActive(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to touch last active", zap.String("user_id", req.UserId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) ReviewOnboarding(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewOnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.UserId = chi.URLParam(r, "id")

	resp, err := h.svc.ReviewOnboarding(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to review onboarding", zap.String("user_id", req.UserId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("onboarding reviewed",
		zap.String("user_id", req.UserId),
		zap.Bool("approved", req.Approve),
	)
	writeJSON(w, http.StatusOK, resp)
}
