package services

import (
	"context"
	"time"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
)

// The store interfaces name the slice of the repository layer each service
// depends on. The concrete repositories satisfy them; tests substitute
// hand-written fakes.

// PaymentPlanStore persists payment plans and their schedules.
type PaymentPlanStore interface {
	CreateWithSchedule(ctx context.Context, plan *models.PaymentPlan, installments []*models.Installment) error
	GetByID(ctx context.Context, agencyID, id int64) (*models.PaymentPlan, error)
	GetByEnrollmentID(ctx context.Context, agencyID, enrollmentID int64) ([]*models.PaymentPlan, error)
	UpdateStatus(ctx context.Context, agencyID, id int64, status models.PlanStatus) error
	CancelWithInstallments(ctx context.Context, agencyID, id int64) error
}

// InstallmentStore persists the scheduled payments of a plan.
type InstallmentStore interface {
	GetByID(ctx context.Context, agencyID, id int64) (*models.Installment, error)
	MarkPaid(ctx context.Context, agencyID, id int64, paidAt time.Time, paidAmountCents int64) error
	CountRemaining(ctx context.Context, agencyID, planID int64) (int64, error)
	SweepOverdue(ctx context.Context, agencyID int64, asOf time.Time) (int64, error)
	ListDueSoon(ctx context.Context, agencyID int64, from, to time.Time) ([]repositories.ReminderRow, error)
}

// EnrollmentStore is the enrollment access the payment plan service needs.
type EnrollmentStore interface {
	GetByID(ctx context.Context, agencyID, id int64) (*models.Enrollment, error)
	HasPaymentPlan(ctx context.Context, agencyID, enrollmentID int64) (bool, error)
}

// CollegeStore resolves colleges for commission rate defaults.
type CollegeStore interface {
	GetByID(ctx context.Context, agencyID, id int64) (*models.College, error)
}

// StudentStore resolves students for the reports.
type StudentStore interface {
	GetByID(ctx context.Context, agencyID, id int64) (*models.Student, error)
}

// ReportStore runs the read-only reporting queries.
type ReportStore interface {
	GetPaymentHistory(ctx context.Context, agencyID, studentID int64) ([]dto.PaymentHistoryRow, error)
	GetCommissionGroups(ctx context.Context, agencyID int64, from, to *time.Time, collegeID int64) ([]repositories.CommissionGroup, error)
}

// ActivityStore appends audit entries.
type ActivityStore interface {
	Create(ctx context.Context, entry *models.Activity) error
}
