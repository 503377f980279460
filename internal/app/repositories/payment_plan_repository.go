package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/db"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// PaymentPlanRepository handles database operations for payment plans
type PaymentPlanRepository struct {
	db *pgxpool.Pool
}

// NewPaymentPlanRepository creates a new payment plan repository
func NewPaymentPlanRepository(db *pgxpool.Pool) *PaymentPlanRepository {
	return &PaymentPlanRepository{db: db}
}

// CreateWithSchedule inserts the plan and its installments in one tenant
// transaction so the row level security policies see the agency.
func (r *PaymentPlanRepository) CreateWithSchedule(ctx context.Context, plan *models.PaymentPlan, installments []*models.Installment) error {
	return db.WithTenantTransaction(ctx, r.db, plan.AgencyID, func(ctx context.Context, tx pgx.Tx) error {
		planQuery := `
			INSERT INTO payment_plans (agency_id, enrollment_id, total_amount_cents, currency,
				commission_rate_bps, installment_count, first_due_date, frequency, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, planQuery,
			plan.AgencyID, plan.EnrollmentID, plan.TotalAmountCents, plan.Currency,
			plan.CommissionRateBps, plan.InstallmentCount, plan.FirstDueDate,
			plan.Frequency, plan.Status).
			Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating payment plan: %w", err)
		}

		installmentQuery := `
			INSERT INTO installments (agency_id, payment_plan_id, sequence, amount_cents, due_date, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`

		for _, inst := range installments {
			inst.PaymentPlanID = plan.ID
			err := tx.QueryRow(ctx, installmentQuery,
				inst.AgencyID, inst.PaymentPlanID, inst.Sequence,
				inst.AmountCents, inst.DueDate, inst.Status).
				Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
			if err != nil {
				return fmt.Errorf("error creating installment: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a plan and its installments, scoped to an agency
func (r *PaymentPlanRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.PaymentPlan, error) {
	query := `
		SELECT id, agency_id, enrollment_id, total_amount_cents, currency, commission_rate_bps,
			installment_count, first_due_date, frequency, status, created_at, updated_at
		FROM payment_plans
		WHERE agency_id = $1 AND id = $2
	`

	var plan models.PaymentPlan
	err := r.db.QueryRow(ctx, query, agencyID, id).Scan(
		&plan.ID,
		&plan.AgencyID,
		&plan.EnrollmentID,
		&plan.TotalAmountCents,
		&plan.Currency,
		&plan.CommissionRateBps,
		&plan.InstallmentCount,
		&plan.FirstDueDate,
		&plan.Frequency,
		&plan.Status,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving payment plan: %w", err)
	}

	installments, err := r.getInstallments(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}
	plan.Installments = installments

	return &plan, nil
}

func (r *PaymentPlanRepository) getInstallments(ctx context.Context, agencyID, planID int64) ([]*models.Installment, error) {
	query := `
		SELECT id, agency_id, payment_plan_id, sequence, amount_cents, due_date, status,
			paid_at, paid_amount_cents, created_at, updated_at
		FROM installments
		WHERE agency_id = $1 AND payment_plan_id = $2
		ORDER BY sequence
	`

	rows, err := r.db.Query(ctx, query, agencyID, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var installments []*models.Installment
	for rows.Next() {
		var inst models.Installment
		if err := rows.Scan(
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
		); err != nil {
			return nil, err
		}
		installments = append(installments, &inst)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return installments, nil
}

// GetByEnrollmentID retrieves the plans attached to an enrollment
func (r *PaymentPlanRepository) GetByEnrollmentID(ctx context.Context, agencyID, enrollmentID int64) ([]*models.PaymentPlan, error) {
	query := `
		SELECT id, agency_id, enrollment_id, total_amount_cents, currency, commission_rate_bps,
			installment_count, first_due_date, frequency, status, created_at, updated_at
		FROM payment_plans
		WHERE agency_id = $1 AND enrollment_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, agencyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*models.PaymentPlan
	for rows.Next() {
		var plan models.PaymentPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.AgencyID,
			&plan.EnrollmentID,
			&plan.TotalAmountCents,
			&plan.Currency,
			&plan.CommissionRateBps,
			&plan.InstallmentCount,
			&plan.FirstDueDate,
			&plan.Frequency,
			&plan.Status,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// UpdateStatus moves a plan to a new status
func (r *PaymentPlanRepository) UpdateStatus(ctx context.Context, agencyID, id int64, status models.PlanStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE payment_plans SET status = $1, updated_at = NOW() WHERE agency_id = $2 AND id = $3`,
		status, agencyID, id)
	if err != nil {
		return fmt.Errorf("error updating payment plan status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentPlanNotFound
	}

	return nil
}

// CancelWithInstallments cancels the plan and its unpaid installments atomically.
func (r *PaymentPlanRepository) CancelWithInstallments(ctx context.Context, agencyID, id int64) error {
	return db.WithTenantTransaction(ctx, r.db, agencyID, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE payment_plans SET status = 'CANCELLED', updated_at = NOW()
			WHERE agency_id = $1 AND id = $2 AND status = 'ACTIVE'`,
			agencyID, id)
		if err != nil {
			return fmt.Errorf("error cancelling payment plan: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrPaymentPlanNotFound
		}

		_, err = tx.Exec(ctx, `
			UPDATE installments SET status = 'CANCELLED', updated_at = NOW()
			WHERE agency_id = $1 AND payment_plan_id = $2 AND status IN ('PENDING', 'OVERDUE')`,
			agencyID, id)
		if err != nil {
			return fmt.Errorf("error cancelling installments: %w", err)
		}

		return nil
	})
}
