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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (agency_id, student_id, college_id, program_name, intake_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.AgencyID, enrollment.StudentID, enrollment.CollegeID,
		enrollment.ProgramName, enrollment.IntakeDate, enrollment.Status).
		Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment scoped to an agency
func (r *EnrollmentRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, agency_id, student_id, college_id, program_name, intake_date, status, created_at, updated_at
		FROM enrollments
		WHERE agency_id = $1 AND id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&enrollment.ID,
		&enrollment.AgencyID,
		&enrollment.StudentID,
		&enrollment.CollegeID,
		&enrollment.ProgramName,
		&enrollment.IntakeDate,
		&enrollment.Status,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetByStudentID retrieves all enrollments for a student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.agency_id, e.student_id, e.college_id, e.program_name, e.intake_date, e.status,
			e.created_at, e.updated_at,
			c.id, c.agency_id, c.name, c.country, c.city, c.contact_email, c.default_commission_rate_bps,
			c.created_at, c.updated_at
		FROM enrollments e
		JOIN colleges c ON c.id = e.college_id AND c.agency_id = e.agency_id
		WHERE e.agency_id = $1 AND e.student_id = $2
		ORDER BY e.intake_date DESC
	`

	rows, err := r.db.Query(ctx, query, agencyID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var college models.College
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.AgencyID,
			&enrollment.StudentID,
			&enrollment.CollegeID,
			&enrollment.ProgramName,
			&enrollment.IntakeDate,
			&enrollment.Status,
			&enrollment.CreatedAt,
			&enrollment.UpdatedAt,
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
		enrollment.College = &college
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET program_name = $1, intake_date = $2, status = $3, updated_at = NOW()
		WHERE agency_id = $4 AND id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.ProgramName, enrollment.IntakeDate, enrollment.Status,
		enrollment.AgencyID, enrollment.ID)
	if err != nil {
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// HasPaymentPlan reports whether a payment plan already exists for the enrollment
func (r *EnrollmentRepository) HasPaymentPlan(ctx context.Context, agencyID, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM payment_plans WHERE agency_id = $1 AND enrollment_id = $2 AND status <> 'CANCELLED')`,
		agencyID, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking payment plan existence: %w", err)
	}
	return exists, nil
}
