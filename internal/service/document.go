package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// Content types accepted for uploaded documents.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ErrUnsupportedFileType is returned for uploads that are not JPG, PNG or PDF.
var ErrUnsupportedFileType = errors.New("only JPG, PNG and PDF files are allowed")

// Document manages the owner-facing document lifecycle: upload, listing,
// view URLs and deletion. New uploads store a bare object key in FileURL;
// readers normalize legacy absolute URLs on the way out.
type Document struct {
	documentStore model.DocumentStore
	userStore     model.UserStore
	storage       model.Storage
	bucket        string
	signTTL       time.Duration
	logger        *logger.Logger
}

func NewDocument(
	documentStore model.DocumentStore,
	userStore model.UserStore,
	storage model.Storage,
	bucket string,
	signTTL time.Duration,
	logger *logger.Logger,
) *Document {
	return &Document{
		documentStore: documentStore,
		userStore:     userStore,
		storage:       storage,
		bucket:        bucket,
		signTTL:       signTTL,
		logger:        logger,
	}
}

// Upload stores the file and creates the document reference. If the
// reference cannot be saved the uploaded object is removed best-effort.
func (s *Document) Upload(ctx context.Context, params model.CreateDocumentParams, reader io.Reader, size int64) (model.Document, error) {
	if params.DocumentName == "" {
		return model.Document{}, fmt.Errorf("document name is required")
	}
	if params.DocumentType == "" {
		return model.Document{}, fmt.Errorf("document type is required")
	}
	if _, ok := allowedContentTypes[params.ContentType]; !ok {
		return model.Document{}, ErrUnsupportedFileType
	}

	if _, err := s.userStore.GetByID(ctx, params.UserID); err != nil {
		return model.Document{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	key := s.objectKey(params)

	if err := s.storage.Upload(ctx, key, reader, size, params.ContentType); err != nil {
		return model.Document{}, fmt.Errorf("failed to upload to storage: %w", err)
	}

	document := model.Document{
		ID:                 uuid.New(),
		UserID:             params.UserID,
		DocumentName:       params.DocumentName,
		DocumentType:       params.DocumentType,
		FileURL:            key,
		VerificationStatus: model.VerificationPending,
	}

	document, err := s.documentStore.Create(ctx, document)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Document service: failed to delete orphaned object", "error", delErr)
		}
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return document, nil
}

// List returns the user's documents, newest first.
func (s *Document) List(ctx context.Context, userID uuid.UUID) ([]model.Document, error) {
	documents, err := s.documentStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents by user id: %w", err)
	}

	return documents, nil
}

// ViewURL issues a short-lived signed URL for one of the user's documents.
func (s *Document) ViewURL(ctx context.Context, userID, documentID uuid.UUID) (string, error) {
	document, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return "", err
	}

	key := NormalizeObjectKey(s.bucket, document.FileURL)
	if key == "" {
		return "", model.ErrNotFound
	}

	signedURL, err := s.storage.SignedURL(ctx, key, s.signTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}

	return signedURL, nil
}

// Delete removes the document reference and, best effort, its object.
func (s *Document) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	document, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if key := NormalizeObjectKey(s.bucket, document.FileURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error("Document service: failed to delete object from storage", "error", err)
		}
	}

	if err := s.documentStore.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// getOwned loads a document and hides other users' documents behind
// ErrNotFound rather than a distinct forbidden error.
func (s *Document) getOwned(ctx context.Context, userID, documentID uuid.UUID) (model.Document, error) {
	document, err := s.documentStore.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document by id: %w", err)
	}

	if document.UserID != userID {
		return model.Document{}, model.ErrNotFound
	}

	return document, nil
}

func (s *Document) objectKey(params model.CreateDocumentParams) string {
	name := unsafeNameChars.ReplaceAllString(params.DocumentName, "_")
	ext := filepath.Ext(params.FileName)

	return fmt.Sprintf("%s/%d_%s%s", params.UserID, time.Now().UnixMilli(), name, ext)
}
