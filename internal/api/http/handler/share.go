package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// ShareService verifies a PIN and issues signed access grants.
type ShareService interface {
	Unlock(ctx context.Context, userID uuid.UUID, pin string) (model.ShareResult, error)
}

// Share is the public share gateway. Its response contract is fixed:
// verification failures of any cause produce the same 401 body, and
// unexpected faults never leak details to the caller.
type Share struct {
	service ShareService
	logger  *logger.Logger
}

// NewShare creates a new Share handler instance.
func NewShare(service ShareService, logger *logger.Logger) *Share {
	return &Share{service: service, logger: logger}
}

type unlockRequest struct {
	UID string `json:"uid"`
	PIN string `json:"pin"`
}

type unlockResponse struct {
	Documents []model.SharedDocument `json:"documents"`
}

// Page serves the unlock page for a share link. The page holds only the
// target user ID; no document data is accessible until a PIN is submitted.
func (h *Share) Page(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		respondError(w, http.StatusBadRequest, "uid is required")
		return
	}

	h.logger.Info("Share handler: serving unlock page", "uid", uid)

	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")

	if err := unlockPage.Execute(w, struct{ UID string }{UID: uid}); err != nil {
		h.logger.Error("Share handler: failed to render unlock page", "error", err)
	}
}

// Unlock verifies the submitted PIN and returns signed document grants.
// The uid may come from the body or, for convenience, the query string.
func (h *Share) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Share handler: malformed body", "error", err)
	}
	if req.UID == "" {
		req.UID = r.URL.Query().Get("uid")
	}

	if req.UID == "" || req.PIN == "" {
		respondError(w, http.StatusBadRequest, "uid and pin are required")
		return
	}

	// A malformed uid cannot match any credential; it is reported exactly
	// like a wrong PIN so callers cannot probe for valid IDs.
	userID, err := uuid.Parse(req.UID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid PIN")
		return
	}

	result, err := h.service.Unlock(r.Context(), userID, req.PIN)
	if errors.Is(err, model.ErrInvalidPIN) {
		respondError(w, http.StatusUnauthorized, "Invalid PIN")
		return
	}
	if err != nil {
		h.logger.Error("Share handler: unlock failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	if len(result.Skipped) > 0 {
		h.logger.Info("Share handler: documents skipped", "uid", req.UID, "skipped", len(result.Skipped))
	}

	respondJSON(w, http.StatusOK, unlockResponse{Documents: result.Documents})
}
