package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetMetadata(ctx context.Context, id uuid.UUID) (UserMetadata, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered identity.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	Metadata     UserMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserMetadata is the free-form blob attached to an identity at
// registration time. PIN may still live here on accounts created before
// hashed PINs were introduced.
type UserMetadata struct {
	FullName       string   `json:"full_name,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	PIN            string   `json:"pin,omitempty"`
	OwnedDocuments []string `json:"owned_documents,omitempty"`
}
