package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/service"
)

// AuthService handles registration, sign-in and PIN changes.
type AuthService interface {
	SignUp(ctx context.Context, params service.SignUpParams) (model.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SetPIN(ctx context.Context, userID uuid.UUID, pin string) error
}

// Auth handles authentication endpoints.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler instance.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type signUpRequest struct {
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	FullName       string   `json:"full_name"`
	Phone          string   `json:"phone"`
	PIN            string   `json:"pin"`
	OwnedDocuments []string `json:"owned_documents"`
}

type signUpResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
}

type setPINRequest struct {
	PIN string `json:"pin"`
}

// SignUp registers a new user.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.service.SignUp(r.Context(), service.SignUpParams{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Phone:          req.Phone,
		PIN:            req.PIN,
		OwnedDocuments: req.OwnedDocuments,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, signUpResponse{ID: user.ID, Email: user.Email})
}

// SignIn exchanges email and password for an access token.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, signInResponse{AccessToken: token})
}

// SetPIN replaces the caller's share PIN.
func (h *Auth) SetPIN(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req setPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetPIN(r.Context(), userID, req.PIN); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
