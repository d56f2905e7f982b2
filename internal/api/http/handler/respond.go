package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors onto HTTP responses. The share gateway
// does not use it; its responses are fixed by its own contract.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrEmailTaken):
		respondError(w, http.StatusConflict, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrPINFormat):
		respondError(w, http.StatusBadRequest, model.ErrPINFormat.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondError(w, http.StatusBadRequest, service.ErrUnsupportedFileType.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
