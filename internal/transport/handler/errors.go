package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/southsideweekly/contributor-hub/internal/usecase"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleError maps domain errors onto HTTP status codes and the error envelope.
func HandleError(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusOK, ErrorResponse{}
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		statusCode := mapErrorCodeToHTTPStatus(domainErr.Code)
		return statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	}
}

func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case "VALIDATION_ERROR":
		return http.StatusBadRequest // 400
	case "INVALID_INPUT":
		return http.StatusBadRequest // 400
	case "DUPLICATE_CLAIM":
		return http.StatusConflict // 409
	case "SLOT_UNAVAILABLE":
		return http.StatusConflict // 409
	case "ALREADY_EXISTS":
		return http.StatusConflict // 409
	case "CONFLICT":
		return http.StatusConflict // 409
	case "NOT_FOUND":
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteError sends the ErrorResponse to the client.
func WriteError(w http.ResponseWriter, statusCode int, errResp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResp)
}
