package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// Share serves PIN-gated unlock requests: it verifies a submitted PIN
// against the stored credential and derives fresh signed access grants for
// the target user's documents. It holds no state between requests; every
// unlock re-reads the stores and re-signs the URLs.
type Share struct {
	profileStore  model.ProfileStore
	userStore     model.UserStore
	documentStore model.DocumentStore
	storage       model.Storage
	bucket        string
	signTTL       time.Duration
	callTimeout   time.Duration
	logger        *logger.Logger
}

func NewShare(
	profileStore model.ProfileStore,
	userStore model.UserStore,
	documentStore model.DocumentStore,
	storage model.Storage,
	bucket string,
	signTTL time.Duration,
	callTimeout time.Duration,
	logger *logger.Logger,
) *Share {
	return &Share{
		profileStore:  profileStore,
		userStore:     userStore,
		documentStore: documentStore,
		storage:       storage,
		bucket:        bucket,
		signTTL:       signTTL,
		callTimeout:   callTimeout,
		logger:        logger,
	}
}

// HashPIN computes the lowercase hex SHA-256 digest of a PIN. The scheme
// must stay byte-for-byte identical to the one used at registration or all
// hashed verification fails.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN checks a submitted PIN against the user's stored credential.
// It fails closed: unknown users, missing credentials and lookup errors all
// report false, indistinguishable from a wrong PIN.
func (s *Share) VerifyPIN(ctx context.Context, userID uuid.UUID, pin string) bool {
	digest := HashPIN(pin)

	cred, err := s.resolveCredential(ctx, userID)
	if err != nil {
		s.logger.Debug("Share service: credential lookup failed", "error", err)
		return false
	}

	switch cred.Kind {
	case model.CredentialHashed:
		return cred.Secret == digest
	case model.CredentialLegacy:
		return cred.Secret == pin
	}

	return false
}

// resolveCredential returns the user's PIN credential. A hashed PIN on the
// profile is authoritative; the plaintext metadata PIN is consulted only
// when no hash is stored, so a stale legacy PIN can never override a hash.
func (s *Share) resolveCredential(ctx context.Context, userID uuid.UUID) (model.Credential, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	profile, err := s.profileStore.GetByUserID(callCtx, userID)
	if err == nil && profile.PINHash != "" {
		return model.Credential{Kind: model.CredentialHashed, Secret: profile.PINHash}, nil
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Credential{}, fmt.Errorf("failed to get profile: %w", err)
	}

	metaCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	meta, err := s.userStore.GetMetadata(metaCtx, userID)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to get user metadata: %w", err)
	}
	if meta.PIN == "" {
		return model.Credential{}, model.ErrNotFound
	}

	return model.Credential{Kind: model.CredentialLegacy, Secret: meta.PIN}, nil
}

// Unlock verifies the PIN and assembles signed grants for every document
// the target user owns, newest first. Documents with an empty file
// reference or a failed signing call are skipped rather than failing the
// whole request; skips are recorded in the result but not returned to
// clients. Returns model.ErrInvalidPIN on any verification failure.
func (s *Share) Unlock(ctx context.Context, userID uuid.UUID, pin string) (model.ShareResult, error) {
	if !s.VerifyPIN(ctx, userID, pin) {
		return model.ShareResult{}, model.ErrInvalidPIN
	}

	listCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	documents, err := s.documentStore.GetByUserID(listCtx, userID)
	if err != nil {
		return model.ShareResult{}, fmt.Errorf("failed to get documents by user id: %w", err)
	}

	result := model.ShareResult{Documents: []model.SharedDocument{}}

	for _, d := range documents {
		key := NormalizeObjectKey(s.bucket, d.FileURL)
		if key == "" {
			result.Skipped = append(result.Skipped, model.SkippedDocument{ID: d.ID, Reason: "empty file reference"})
			continue
		}

		signedURL, err := s.signKey(ctx, key)
		if err != nil {
			s.logger.Warn("Share service: skipping document, signing failed",
				"document_id", d.ID,
				"error", err)
			result.Skipped = append(result.Skipped, model.SkippedDocument{ID: d.ID, Reason: "signing failed"})
			continue
		}

		result.Documents = append(result.Documents, model.SharedDocument{
			ID:           d.ID,
			DocumentName: d.DocumentName,
			DocumentType: d.DocumentType,
			CreatedAt:    d.CreatedAt,
			SignedURL:    signedURL,
		})
	}

	return result, nil
}

func (s *Share) signKey(ctx context.Context, key string) (string, error) {
	signCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	return s.storage.SignedURL(signCtx, key, s.signTTL)
}
