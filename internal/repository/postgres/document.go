package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

type DocumentRepository struct {
	db *Connection
}

func NewDocumentRepository(db *Connection) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, document model.Document) (model.Document, error) {
	query := `INSERT INTO documents (id, user_id, document_name, document_type, file_url, verification_status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, user_id, document_name, document_type, file_url, verification_status, created_at`

	var saved model.Document
	err := r.db.QueryRow(ctx, query,
		document.ID, document.UserID, document.DocumentName, document.DocumentType,
		document.FileURL, document.VerificationStatus,
	).Scan(
		&saved.ID, &saved.UserID, &saved.DocumentName, &saved.DocumentType,
		&saved.FileURL, &saved.VerificationStatus, &saved.CreatedAt,
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return saved, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Document, error) {
	query := `SELECT id, user_id, document_name, document_type, file_url, verification_status, created_at
			  FROM documents WHERE id = $1`

	var document model.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&document.ID, &document.UserID, &document.DocumentName, &document.DocumentType,
		&document.FileURL, &document.VerificationStatus, &document.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document by id: %w", err)
	}

	return document, nil
}

// GetByUserID returns the user's documents newest first.
func (r *DocumentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Document, error) {
	query := `SELECT id, user_id, document_name, document_type, file_url, verification_status, created_at
			  FROM documents
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents by user id: %w", err)
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		var document model.Document
		err := rows.Scan(
			&document.ID, &document.UserID, &document.DocumentName, &document.DocumentType,
			&document.FileURL, &document.VerificationStatus, &document.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM documents WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
