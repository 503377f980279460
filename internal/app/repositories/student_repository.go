package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, agency_id, branch_id, first_name, last_name, email, passport_number, nationality, date_of_birth, status, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.AgencyID,
		&student.BranchID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.PassportNumber,
		&student.Nationality,
		&student.DateOfBirth,
		&student.Status,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (agency_id, branch_id, first_name, last_name, email, passport_number, nationality, date_of_birth, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.AgencyID, student.BranchID, student.FirstName, student.LastName,
		student.Email, student.PassportNumber, student.Nationality,
		student.DateOfBirth, student.Status).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_agency_id_passport_number_key") {
			return apperrors.ErrPassportNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student scoped to an agency
func (r *StudentRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE agency_id = $1 AND id = $2`

	student, err := scanStudent(r.db.QueryRow(ctx, query, agencyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// List retrieves students for an agency with filtering and pagination
func (r *StudentRepository) List(ctx context.Context, agencyID int64, filter dto.StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	conditions := []string{"agency_id = $1"}
	args := []interface{}{agencyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.BranchID > 0 {
		args = append(args, filter.BranchID)
		conditions = append(conditions, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR passport_number ILIKE $%d)", n, n, n))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM students WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+studentColumns+` FROM students WHERE %s ORDER BY last_name, first_name LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET branch_id = $1, first_name = $2, last_name = $3, email = $4,
			passport_number = $5, nationality = $6, date_of_birth = $7, status = $8, updated_at = NOW()
		WHERE agency_id = $9 AND id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.BranchID, student.FirstName, student.LastName, student.Email,
		student.PassportNumber, student.Nationality, student.DateOfBirth,
		student.Status, student.AgencyID, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_agency_id_passport_number_key") {
			return apperrors.ErrPassportNumberExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student
func (r *StudentRepository) Delete(ctx context.Context, agencyID, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE agency_id = $1 AND id = $2`, agencyID, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
