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

// NoteRepository handles database operations for student notes
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (agency_id, student_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		note.AgencyID, note.StudentID, note.AuthorID, note.Body).
		Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}

	return nil
}

// GetByID retrieves a note scoped to an agency
func (r *NoteRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Note, error) {
	query := `
		SELECT n.id, n.agency_id, n.student_id, n.author_id, n.body, n.created_at,
			u.first_name || ' ' || u.last_name
		FROM notes n
		JOIN users u ON u.id = n.author_id
		WHERE n.agency_id = $1 AND n.id = $2
	`

	var note models.Note
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&note.ID,
		&note.AgencyID,
		&note.StudentID,
		&note.AuthorID,
		&note.Body,
		&note.CreatedAt,
		&note.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}

	return &note, nil
}

// GetByStudentID retrieves all notes for a student, newest first
func (r *NoteRepository) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.agency_id, n.student_id, n.author_id, n.body, n.created_at,
			u.first_name || ' ' || u.last_name
		FROM notes n
		JOIN users u ON u.id = n.author_id
		WHERE n.agency_id = $1 AND n.student_id = $2
		ORDER BY n.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, agencyID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID,
			&note.AgencyID,
			&note.StudentID,
			&note.AuthorID,
			&note.Body,
			&note.CreatedAt,
			&note.AuthorName,
		); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// Delete deletes a note
func (r *NoteRepository) Delete(ctx context.Context, agencyID, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE agency_id = $1 AND id = $2`, agencyID, id)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}
