package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-courses-api/internal/core/domain/courses"
	"go-courses-api/internal/core/ports"
)

type CourseHandler struct {
	service ports.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(service ports.CourseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{service: service, logger: logger}
}

// List handles GET /courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list courses", "error", err)
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toCourseResponses(list))
}

// Get handles GET /courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	course, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, toCourseResponse(course))
}

// Create handles POST /courses
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.New("no principal in context"))
		return
	}

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	// Ownership is bound to the principal; req.UserID is discarded.
	course, err := h.service.Create(r.Context(), req.toCourse(), principal.ID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/courses/"+course.ID)
	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /courses/{id}. Any authenticated account may update
// any course; ownership is not checked. Known authorization gap, kept
// deliberately (see DESIGN.md).
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd courses.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := h.service.Update(r.Context(), id, upd); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /courses/{id}. Same ownership gap as Update.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
