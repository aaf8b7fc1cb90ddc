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

type PitchService interface {
	Create(ctx context.Context, req *request.CreatePitchRequest) (*response.PitchResponse, error)
	Approve(ctx context.Context, req *request.ApprovePitchRequest) (*response.PitchResponse, error)
	Decline(ctx context.Context, req *request.DeclinePitchRequest) (*response.PitchResponse, error)
	List(ctx context.Context, req *request.ListPitchesRequest) (*response.PitchListResponse, error)
	SubmitClaim(ctx context.Context, req *request.SubmitClaimRequest) (*response.PitchResponse, error)
	ApproveClaim(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error)
	DeclineClaim(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error)
	RemoveContributor(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error)
	SetTeamTarget(ctx context.Context, req *request.SetTeamTargetRequest) (*response.PitchResponse, error)
	Aggregate(ctx context.Context, pitchId string) (*response.AggregatedPitchResponse, error)
}

type PitchHandler struct {
	svc PitchService
	log *zap.Logger
}

func NewPitchHandler(svc PitchService, log *zap.Logger) *PitchHandler {
	return &PitchHandler{
		svc: svc,
		log: log,
	}
}

func (h *PitchHandler) CreatePitch(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.Title == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create pitch", zap.String("title", req.Title), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("pitch created", zap.String("pitch_id", resp.Pitch.Id))
	writeJSON(w, http.StatusCreated, resp)
}

func (h *PitchHandler) ApprovePitch(w http.ResponseWriter, r *http.Request) {
	var req request.ApprovePitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.PitchId == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Approve(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to approve pitch", zap.String("pitch_id", req.PitchId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) DeclinePitch(w http.ResponseWriter, r *http.Request) {
	var req request.DeclinePitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.PitchId == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Decline(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to decline pitch", zap.String("pitch_id", req.PitchId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) ListPitches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := request.ListPitchesRequest{
		Status:      q.Get("status"),
		ClaimStatus: q.Get("claim_status"),
		SortBy:      q.Get("sort"),
		Descending:  q.Get("order") == "desc",
	}
	if interests := q.Get("interests"); interests != "" {
		req.Interests = strings.Split(interests, ",")
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list pitches", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.PitchId = chi.URLParam(r, "id")

	if req.UserId == "" || len(req.TeamIds) == 0 {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.SubmitClaim(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to submit claim",
			zap.String("pitch_id", req.PitchId),
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	h.log.Info("claim submitted",
		zap.String("pitch_id", req.PitchId),
		zap.String("user_id", req.UserId),
		zap.Strings("teams", req.TeamIds),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	h.claimAction(w, r, "approve claim", h.svc.ApproveClaim)
}

func (h *PitchHandler) DeclineClaim(w http.ResponseWriter, r *http.Request) {
	h.claimAction(w, r, "decline claim", h.svc.DeclineClaim)
}

func (h *PitchHandler) RemoveContributor(w http.ResponseWriter, r *http.Request) {
	h.claimAction(w, r, "remove contributor", h.svc.RemoveContributor)
}

func (h *PitchHandler) SetTeamTarget(w http.ResponseWriter, r *http.Request) {
	var req request.SetTeamTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.PitchId = chi.URLParam(r, "id")

	if req.TeamId == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.SetTeamTarget(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to set team target",
			zap.String("pitch_id", req.PitchId),
			zap.String("team_id", req.TeamId),
			zap.Int("target", req.Target),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) AggregatePitch(w http.ResponseWriter, r *http.Request) {
	pitchId := chi.URLParam(r, "id")

	resp, err := h.svc.Aggregate(r.Context(), pitchId)
	if err != nil {
		h.log.Error("failed to aggregate pitch", zap.String("pitch_id", pitchId), zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PitchHandler) claimAction(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	call func(ctx context.Context, req *request.ClaimActionRequest) (*response.PitchResponse, error),
) {
	var req request.ClaimActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}
	req.PitchId = chi.URLParam(r, "id")

	if req.UserId == "" || req.TeamId == "" {
		statusCode, errResp := HandleError(usecase.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := call(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to "+action,
			zap.String("pitch_id", req.PitchId),
			zap.String("user_id", req.UserId),
			zap.String("team_id", req.TeamId),
			zap.Error(err),
		)
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
