package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	logger  *slog.Logger
}

func NewUserHandler(service ports.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reg account.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.service.Register(r.Context(), reg)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/users/"+user.ID)
	w.WriteHeader(http.StatusCreated)
}

// GetCurrent handles GET /users, returning the authenticated principal.
func (h *UserHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := principalFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no principal in context"))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toUserResponse(user))
}
