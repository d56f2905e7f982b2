package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// ChecklistService evaluates purpose checklists against a user's documents.
type ChecklistService interface {
	Purposes() []model.Purpose
	Evaluate(ctx context.Context, userID uuid.UUID, purposeID string) (model.Checklist, error)
}

// Checklist handles the checklist endpoints.
type Checklist struct {
	service ChecklistService
	logger  *logger.Logger
}

// NewChecklist creates a new Checklist handler instance.
func NewChecklist(service ChecklistService, logger *logger.Logger) *Checklist {
	return &Checklist{service: service, logger: logger}
}

type listPurposesResponse struct {
	Purposes []model.Purpose `json:"purposes"`
}

// List returns the purpose catalog.
func (h *Checklist) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, listPurposesResponse{Purposes: h.service.Purposes()})
}

// Get evaluates one purpose against the caller's documents.
func (h *Checklist) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	checklist, err := h.service.Evaluate(r.Context(), userID, chi.URLParam(r, "purpose"))
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, checklist)
}
