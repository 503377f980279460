package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// InstallmentRepository handles database operations for installments
type InstallmentRepository struct {
	db *pgxpool.Pool
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *pgxpool.Pool) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// GetByID retrieves an installment scoped to an agency
func (r *InstallmentRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Installment, error) {
	query := `
		SELECT id, agency_id, payment_plan_id, sequence, amount_cents, due_date, status,
			paid_at, paid_amount_cents, created_at, updated_at
		FROM installments
		WHERE agency_id = $1 AND id = $2
	`

	var inst models.Installment
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&inst.ID,
		&inst.AgencyID,
		&inst.PaymentPlanID,
		&inst.Sequence,
		&inst.AmountCents,
		&inst.DueDate,
		&inst.Status,
		&inst.PaidAt,
		&inst.PaidAmountCents,
		&inst.CreatedAt,
		&inst.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("error retrieving installment: %w", err)
	}

	return &inst, nil
}

// MarkPaid records a payment against a pending or overdue installment.
func (r *InstallmentRepository) MarkPaid(ctx context.Context, agencyID, id int64, paidAt time.Time, paidAmountCents int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE installments
		SET status = 'PAID', paid_at = $1, paid_amount_cents = $2, updated_at = NOW()
		WHERE agency_id = $3 AND id = $4 AND status IN ('PENDING', 'OVERDUE')`,
		paidAt, paidAmountCents, agencyID, id)
	if err != nil {
		return fmt.Errorf("error marking installment paid: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstallmentNotPayable
	}

	return nil
}

// CountRemaining counts the installments of a plan not yet paid or cancelled
func (r *InstallmentRepository) CountRemaining(ctx context.Context, agencyID, planID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM installments
		WHERE agency_id = $1 AND payment_plan_id = $2 AND status IN ('PENDING', 'OVERDUE')`,
		agencyID, planID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting remaining installments: %w", err)
	}
	return count, nil
}

// SweepOverdue flips pending installments past their due date to overdue
// and returns how many rows were affected.
func (r *InstallmentRepository) SweepOverdue(ctx context.Context, agencyID int64, asOf time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE installments
		SET status = 'OVERDUE', updated_at = NOW()
		WHERE agency_id = $1 AND status = 'PENDING' AND due_date < $2`,
		agencyID, asOf)
	if err != nil {
		return 0, fmt.Errorf("error sweeping overdue installments: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ReminderRow is a pending installment joined with the student it belongs
// to, used by the reminder mailer.
type ReminderRow struct {
	InstallmentID int64
	AmountCents   int64
	Currency      string
	DueDate       time.Time
	StudentName   string
	StudentEmail  string
}

// ListDueSoon retrieves pending installments due within the given window
func (r *InstallmentRepository) ListDueSoon(ctx context.Context, agencyID int64, from, to time.Time) ([]ReminderRow, error) {
	query := `
		SELECT i.id, i.amount_cents, p.currency, i.due_date,
			s.first_name || ' ' || s.last_name, s.email
		FROM installments i
		JOIN payment_plans p ON p.id = i.payment_plan_id AND p.agency_id = i.agency_id
		JOIN enrollments e ON e.id = p.enrollment_id AND e.agency_id = p.agency_id
		JOIN students s ON s.id = e.student_id AND s.agency_id = e.agency_id
		WHERE i.agency_id = $1 AND i.status = 'PENDING' AND i.due_date >= $2 AND i.due_date <= $3
		ORDER BY i.due_date
	`

	rows, err := r.db.Query(ctx, query, agencyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []ReminderRow
	for rows.Next() {
		var row ReminderRow
		if err := rows.Scan(
			&row.InstallmentID,
			&row.AmountCents,
			&row.Currency,
			&row.DueDate,
			&row.StudentName,
			&row.StudentEmail,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}
