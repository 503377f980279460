package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/dberrors"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create creates a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (agency_id, name, country, city, contact_email, default_commission_rate_bps)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		college.AgencyID, college.Name, college.Country, college.City,
		college.ContactEmail, college.DefaultCommissionRateBps).
		Scan(&college.ID, &college.CreatedAt, &college.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_agency_id_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByID retrieves a college scoped to an agency
func (r *CollegeRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.College, error) {
	query := `
		SELECT id, agency_id, name, country, city, contact_email, default_commission_rate_bps, created_at, updated_at
		FROM colleges
		WHERE agency_id = $1 AND id = $2
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&college.ID,
		&college.AgencyID,
		&college.Name,
		&college.Country,
		&college.City,
		&college.ContactEmail,
		&college.DefaultCommissionRateBps,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// GetAll retrieves all colleges for an agency
func (r *CollegeRepository) GetAll(ctx context.Context, agencyID int64) ([]*models.College, error) {
	query := `
		SELECT id, agency_id, name, country, city, contact_email, default_commission_rate_bps, created_at, updated_at
		FROM colleges
		WHERE agency_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(
			&college.ID,
			&college.AgencyID,
			&college.Name,
			&college.Country,
			&college.City,
			&college.ContactEmail,
			&college.DefaultCommissionRateBps,
			&college.CreatedAt,
			&college.UpdatedAt,
		); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// Update updates an existing college
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query := `
		UPDATE colleges
		SET name = $1, country = $2, city = $3, contact_email = $4, default_commission_rate_bps = $5, updated_at = NOW()
		WHERE agency_id = $6 AND id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		college.Name, college.Country, college.City, college.ContactEmail,
		college.DefaultCommissionRateBps, college.AgencyID, college.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_agency_id_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// HasEnrollments reports whether the college has enrollments attached
func (r *CollegeRepository) HasEnrollments(ctx context.Context, agencyID, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE agency_id = $1 AND college_id = $2)`,
		agencyID, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college enrollments: %w", err)
	}
	return exists, nil
}

// Delete deletes a college
func (r *CollegeRepository) Delete(ctx context.Context, agencyID, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE agency_id = $1 AND id = $2`, agencyID, id)
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
