package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	SetPINHash(ctx context.Context, userID uuid.UUID, pinHash string) error
}

// Profile holds per-user application data, including the share PIN
// credential. PINHash is the lowercase hex SHA-256 of the PIN; empty means
// no hashed PIN has been set for the account.
type Profile struct {
	UserID    uuid.UUID
	FullName  string
	Phone     string
	PINHash   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialKind discriminates how a share PIN is stored.
type CredentialKind string

const (
	// CredentialHashed is a SHA-256 hex digest stored on the profile.
	// When present it is authoritative and the legacy path is never used.
	CredentialHashed CredentialKind = "hashed"
	// CredentialLegacy is a plaintext PIN kept in the identity metadata
	// blob of accounts that predate hashed PINs.
	CredentialLegacy CredentialKind = "legacy"
)

// Credential is the resolved PIN credential for a user.
type Credential struct {
	Kind   CredentialKind
	Secret string
}
