package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// DocumentRepository handles database operations for document metadata
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (agency_id, student_id, uploaded_by, file_name, content_type, size_bytes, object_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		doc.AgencyID, doc.StudentID, doc.UploadedBy, doc.FileName,
		doc.ContentType, doc.SizeBytes, doc.ObjectKey).
		Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating document: %w", err)
	}

	return nil
}

// GetByID retrieves a document record scoped to an agency
func (r *DocumentRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Document, error) {
	query := `
		SELECT id, agency_id, student_id, uploaded_by, file_name, content_type, size_bytes, object_key, created_at
		FROM documents
		WHERE agency_id = $1 AND id = $2
	`

	var doc models.Document
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&doc.ID,
		&doc.AgencyID,
		&doc.StudentID,
		&doc.UploadedBy,
		&doc.FileName,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.ObjectKey,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document: %w", err)
	}

	return &doc, nil
}

// GetByStudentID retrieves all documents for a student, newest first
func (r *DocumentRepository) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Document, error) {
	query := `
		SELECT id, agency_id, student_id, uploaded_by, file_name, content_type, size_bytes, object_key, created_at
		FROM documents
		WHERE agency_id = $1 AND student_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, agencyID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.AgencyID,
			&doc.StudentID,
			&doc.UploadedBy,
			&doc.FileName,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.ObjectKey,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Delete deletes a document record
func (r *DocumentRepository) Delete(ctx context.Context, agencyID, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE agency_id = $1 AND id = $2`, agencyID, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
