package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DocumentStore defines persistence operations for document references.
type DocumentStore interface {
	Create(ctx context.Context, document Document) (Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (Document, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Document is a reference to one uploaded file. FileURL is either a bare
// object-storage key (new rows) or a full public URL (rows uploaded before
// the bucket went private); readers must tolerate both.
type Document struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	DocumentName       string
	DocumentType       string
	FileURL            string
	VerificationStatus string
	CreatedAt          time.Time
}

// VerificationPending is the status documents are created with. Review
// happens outside this service.
const VerificationPending = "pending"

// CreateDocumentParams contains parameters to upload a document.
type CreateDocumentParams struct {
	UserID       uuid.UUID
	DocumentName string
	DocumentType string
	ContentType  string
	FileName     string
}
