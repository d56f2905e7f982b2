package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	var pinHash *string
	query := `SELECT user_id, full_name, phone, pin_hash, created_at, updated_at
			  FROM profiles WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.FullName, &profile.Phone, &pinHash,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	if pinHash != nil {
		profile.PINHash = *pinHash
	}

	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `INSERT INTO profiles (user_id, full_name, phone, pin_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
			  RETURNING user_id, full_name, phone, COALESCE(pin_hash, ''), created_at, updated_at`

	var saved model.Profile
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Phone, profile.PINHash,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(
		&saved.UserID, &saved.FullName, &saved.Phone, &saved.PINHash,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return saved, nil
}

func (r *ProfileRepository) SetPINHash(ctx context.Context, userID uuid.UUID, pinHash string) error {
	const query = `UPDATE profiles SET pin_hash = $2, updated_at = NOW() WHERE user_id = $1`

	cmd, err := r.db.Exec(ctx, query, userID, pinHash)
	if err != nil {
		return fmt.Errorf("failed to set pin hash: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
