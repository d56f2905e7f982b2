package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

const maxUploadSize = 32 << 20 // 32 MiB

// DocumentService manages the owner-facing document lifecycle.
type DocumentService interface {
	Upload(ctx context.Context, params model.CreateDocumentParams, reader io.Reader, size int64) (model.Document, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Document, error)
	ViewURL(ctx context.Context, userID, documentID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID, documentID uuid.UUID) error
}

// Document handles the authenticated document endpoints.
type Document struct {
	service DocumentService
	logger  *logger.Logger
}

// NewDocument creates a new Document handler instance.
func NewDocument(service DocumentService, logger *logger.Logger) *Document {
	return &Document{service: service, logger: logger}
}

type documentResponse struct {
	ID                 uuid.UUID `json:"id"`
	DocumentName       string    `json:"document_name"`
	DocumentType       string    `json:"document_type"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type listDocumentsResponse struct {
	Documents []documentResponse `json:"documents"`
}

type viewURLResponse struct {
	URL string `json:"url"`
}

func toDocumentResponse(d model.Document) documentResponse {
	return documentResponse{
		ID:                 d.ID,
		DocumentName:       d.DocumentName,
		DocumentType:       d.DocumentType,
		VerificationStatus: d.VerificationStatus,
		CreatedAt:          d.CreatedAt,
	}
}

// List returns the caller's documents, newest first.
func (h *Document) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	documents, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("Document handler: failed to list documents", "error", err)
		handleError(w, err)
		return
	}

	resp := listDocumentsResponse{Documents: make([]documentResponse, 0, len(documents))}
	for _, d := range documents {
		resp.Documents = append(resp.Documents, toDocumentResponse(d))
	}

	respondJSON(w, http.StatusOK, resp)
}

// Upload accepts a multipart form with the file and its display metadata.
func (h *Document) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	document, err := h.service.Upload(r.Context(), model.CreateDocumentParams{
		UserID:       userID,
		DocumentName: r.FormValue("document_name"),
		DocumentType: r.FormValue("document_type"),
		ContentType:  header.Header.Get("Content-Type"),
		FileName:     header.Filename,
	}, file, header.Size)
	if err != nil {
		h.logger.Error("Document handler: upload failed", "error", err)
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toDocumentResponse(document))
}

// ViewURL returns a short-lived signed URL for one document.
func (h *Document) ViewURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	url, err := h.service.ViewURL(r.Context(), userID, documentID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, viewURLResponse{URL: url})
}

// Delete removes one of the caller's documents.
func (h *Document) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, documentID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
