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

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (agency_id, name, city, country)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, branch.AgencyID, branch.Name, branch.City, branch.Country).
		Scan(&branch.ID, &branch.CreatedAt, &branch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}

// GetByID retrieves a branch scoped to an agency
func (r *BranchRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Branch, error) {
	query := `
		SELECT id, agency_id, name, city, country, created_at, updated_at
		FROM branches
		WHERE agency_id = $1 AND id = $2
	`

	var branch models.Branch
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&branch.ID,
		&branch.AgencyID,
		&branch.Name,
		&branch.City,
		&branch.Country,
		&branch.CreatedAt,
		&branch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}

	return &branch, nil
}

// GetAll retrieves all branches for an agency
func (r *BranchRepository) GetAll(ctx context.Context, agencyID int64) ([]*models.Branch, error) {
	query := `
		SELECT id, agency_id, name, city, country, created_at, updated_at
		FROM branches
		WHERE agency_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		var branch models.Branch
		if err := rows.Scan(
			&branch.ID,
			&branch.AgencyID,
			&branch.Name,
			&branch.City,
			&branch.Country,
			&branch.CreatedAt,
			&branch.UpdatedAt,
		); err != nil {
			return nil, err
		}
		branches = append(branches, &branch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// Update updates an existing branch
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	query := `
		UPDATE branches
		SET name = $1, city = $2, country = $3, updated_at = NOW()
		WHERE agency_id = $4 AND id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		branch.Name, branch.City, branch.Country, branch.AgencyID, branch.ID)
	if err != nil {
		return fmt.Errorf("error updating branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}

// HasStudents reports whether the branch has students attached
func (r *BranchRepository) HasStudents(ctx context.Context, agencyID, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE agency_id = $1 AND branch_id = $2)`,
		agencyID, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking branch students: %w", err)
	}
	return exists, nil
}

// Delete deletes a branch
func (r *BranchRepository) Delete(ctx context.Context, agencyID, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE agency_id = $1 AND id = $2`, agencyID, id)
	if err != nil {
		return fmt.Errorf("error deleting branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}
