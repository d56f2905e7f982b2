package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// Auth handles registration and sign-in for the private API. The share
// gateway does not use it; share links are gated by PIN alone.
type Auth struct {
	userStore    model.UserStore
	profileStore model.ProfileStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	profileStore model.ProfileStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		profileStore: profileStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignUpParams contains parameters to register a user.
type SignUpParams struct {
	Email          string
	Password       string
	FullName       string
	Phone          string
	PIN            string
	OwnedDocuments []string
}

// SignUp registers a user: a bcrypt password hash on the user row, the
// registration metadata blob (which still carries the plaintext PIN for
// compatibility with old readers) and a profile row holding the hashed PIN.
func (a *Auth) SignUp(ctx context.Context, params SignUpParams) (model.User, error) {
	if !validPIN(params.PIN) {
		return model.User{}, model.ErrPINFormat
	}

	existing, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", params.Email)
		return model.User{}, model.ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: passwordHash,
		Metadata: model.UserMetadata{
			FullName:       params.FullName,
			Phone:          params.Phone,
			PIN:            params.PIN,
			OwnedDocuments: params.OwnedDocuments,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = a.profileStore.Create(ctx, model.Profile{
		UserID:    user.ID,
		FullName:  params.FullName,
		Phone:     params.Phone,
		PINHash:   HashPIN(params.PIN),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create profile: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID)

	return user, nil
}

// SignIn validates the email/password pair and issues an access token.
// Unknown email and wrong password are reported identically.
func (a *Auth) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return accessToken, nil
}

// SetPIN replaces the user's hashed share PIN.
func (a *Auth) SetPIN(ctx context.Context, userID uuid.UUID, pin string) error {
	if !validPIN(pin) {
		return model.ErrPINFormat
	}

	if err := a.profileStore.SetPINHash(ctx, userID, HashPIN(pin)); err != nil {
		return fmt.Errorf("failed to set pin hash: %w", err)
	}

	return nil
}

func validPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
