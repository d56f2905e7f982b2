package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT id, email, password_hash, raw_user_meta_data, created_at, updated_at
			  FROM users WHERE email = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, email, password_hash, raw_user_meta_data, created_at, updated_at
			  FROM users WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetMetadata(ctx context.Context, id uuid.UUID) (model.UserMetadata, error) {
	query := `SELECT raw_user_meta_data FROM users WHERE id = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserMetadata{}, model.ErrNotFound
		}
		return model.UserMetadata{}, fmt.Errorf("failed to get user metadata: %w", err)
	}

	var meta model.UserMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return model.UserMetadata{}, fmt.Errorf("failed to unmarshal user metadata: %w", err)
	}

	return meta, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	meta, err := json.Marshal(user.Metadata)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to marshal user metadata: %w", err)
	}

	query := `INSERT INTO users (id, email, password_hash, raw_user_meta_data, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, email, password_hash, raw_user_meta_data, created_at, updated_at`

	return r.scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, meta, user.CreatedAt, user.UpdatedAt,
	))
}

func (r *UserRepository) scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	var raw []byte

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &raw, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}

	if err := json.Unmarshal(raw, &user.Metadata); err != nil {
		return model.User{}, fmt.Errorf("failed to unmarshal user metadata: %w", err)
	}

	return user, nil
}
