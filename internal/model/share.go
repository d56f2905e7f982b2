package model

import (
	"time"

	"github.com/google/uuid"
)

// SharedDocument is one ephemeral access grant: a document reference plus
// a time-limited signed URL. Grants are derived per request and never
// persisted.
type SharedDocument struct {
	ID           uuid.UUID `json:"id"`
	DocumentName string    `json:"document_name"`
	DocumentType string    `json:"document_type"`
	CreatedAt    time.Time `json:"created_at"`
	SignedURL    string    `json:"signed_url"`
}

// SkippedDocument records a document omitted from a share response and why.
// Skips are internal only; they are logged but never returned to callers.
type SkippedDocument struct {
	ID     uuid.UUID
	Reason string
}

// ShareResult is the outcome of a successful unlock: surviving grants in
// newest-first order plus the documents that could not be granted.
type ShareResult struct {
	Documents []SharedDocument
	Skipped   []SkippedDocument
}
