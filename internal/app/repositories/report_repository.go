package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/db"
)

// ReportRepository runs the read-only reporting queries
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// GetPaymentHistory retrieves every installment of a student's payment plans,
// joined with the college and program, ordered by due date. The query runs in
// a tenant transaction so the row level security policies see the agency.
func (r *ReportRepository) GetPaymentHistory(ctx context.Context, agencyID, studentID int64) ([]dto.PaymentHistoryRow, error) {
	query := `
		SELECT i.id, i.payment_plan_id, c.name, e.program_name, i.sequence,
			i.amount_cents, p.currency, i.due_date, i.status, i.paid_at, i.paid_amount_cents
		FROM installments i
		JOIN payment_plans p ON p.id = i.payment_plan_id AND p.agency_id = i.agency_id
		JOIN enrollments e ON e.id = p.enrollment_id AND e.agency_id = p.agency_id
		JOIN colleges c ON c.id = e.college_id AND c.agency_id = e.agency_id
		WHERE i.agency_id = $1 AND e.student_id = $2
		ORDER BY i.due_date, i.sequence
	`

	var history []dto.PaymentHistoryRow
	err := db.WithTenantTransaction(ctx, r.db, agencyID, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, agencyID, studentID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row dto.PaymentHistoryRow
			if err := rows.Scan(
				&row.InstallmentID,
				&row.PaymentPlanID,
				&row.CollegeName,
				&row.ProgramName,
				&row.Sequence,
				&row.AmountCents,
				&row.Currency,
				&row.DueDate,
				&row.Status,
				&row.PaidAt,
				&row.PaidAmountCents,
			); err != nil {
				return err
			}
			history = append(history, row)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return history, nil
}

// CommissionGroup is a commission aggregate over paid installments sharing
// one college, currency and commission rate. Commission arithmetic happens
// in the service so rounding stays in one place.
type CommissionGroup struct {
	CollegeID         int64
	CollegeName       string
	Currency          string
	CommissionRateBps int32
	PaidInstallments  int64
	PaidAmountCents   int64
}

// GetCommissionGroups aggregates paid installments per college, currency and
// rate. Cancelled plans are excluded and the optional filters narrow by paid
// date and college.
func (r *ReportRepository) GetCommissionGroups(ctx context.Context, agencyID int64, from, to *time.Time, collegeID int64) ([]CommissionGroup, error) {
	conditions := []string{
		"i.agency_id = $1",
		"i.status = 'PAID'",
		"p.status <> 'CANCELLED'",
	}
	args := []interface{}{agencyID}

	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("i.paid_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("i.paid_at < $%d", len(args)))
	}
	if collegeID > 0 {
		args = append(args, collegeID)
		conditions = append(conditions, fmt.Sprintf("c.id = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, p.currency, p.commission_rate_bps,
			COUNT(*), COALESCE(SUM(i.paid_amount_cents), 0)
		FROM installments i
		JOIN payment_plans p ON p.id = i.payment_plan_id AND p.agency_id = i.agency_id
		JOIN enrollments e ON e.id = p.enrollment_id AND e.agency_id = p.agency_id
		JOIN colleges c ON c.id = e.college_id AND c.agency_id = e.agency_id
		WHERE %s
		GROUP BY c.id, c.name, p.currency, p.commission_rate_bps
		ORDER BY c.name, p.currency
	`, strings.Join(conditions, " AND "))

	var groups []CommissionGroup
	err := db.WithTenantTransaction(ctx, r.db, agencyID, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var g CommissionGroup
			if err := rows.Scan(
				&g.CollegeID,
				&g.CollegeName,
				&g.Currency,
				&g.CommissionRateBps,
				&g.PaidInstallments,
				&g.PaidAmountCents,
			); err != nil {
				return err
			}
			groups = append(groups, g)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return groups, nil
}
