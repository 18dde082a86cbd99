package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-courses-api/internal/core/domain"
)

// errorResponse is the uniform failure body: message is either a single
// string or an ordered list of validation messages.
type errorResponse struct {
	Message any `json:"message"`
}

// respondError translates a domain failure into a status code and the
// uniform body shape. Anything unrecognized becomes a 500; its text is
// passed through but the response never carries internals beyond that.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, logger, http.StatusBadRequest, errorResponse{Message: ve.Messages})
	case errors.Is(err, domain.ErrDuplicateEmail):
		respondJSON(w, logger, http.StatusBadRequest, errorResponse{Message: "email address already in use"})
	case errors.Is(err, domain.ErrAccessDenied):
		respondJSON(w, logger, http.StatusUnauthorized, errorResponse{Message: "Access Denied"})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, logger, http.StatusNotFound, errorResponse{Message: "Course Not Found"})
	default:
		logger.Error("unexpected failure", "error", err)
		respondJSON(w, logger, http.StatusInternalServerError, errorResponse{Message: err.Error()})
	}
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
