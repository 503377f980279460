package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/email"
	"github.com/pleeno/pleeno/internal/pkg/helpers"
	"github.com/pleeno/pleeno/internal/pkg/validation"
)

// PaymentPlanService handles payment plans and their installment schedules
type PaymentPlanService struct {
	planRepo        PaymentPlanStore
	installmentRepo InstallmentStore
	enrollmentRepo  EnrollmentStore
	collegeRepo     CollegeStore
	emailService    email.EmailService
	activity        *activityRecorder
	logger          zerolog.Logger
}

// NewPaymentPlanService creates a new payment plan service
func NewPaymentPlanService(
	planRepo PaymentPlanStore,
	installmentRepo InstallmentStore,
	enrollmentRepo EnrollmentStore,
	collegeRepo CollegeStore,
	emailService email.EmailService,
	activityStore ActivityStore,
	logger zerolog.Logger,
) *PaymentPlanService {
	return &PaymentPlanService{
		planRepo:        planRepo,
		installmentRepo: installmentRepo,
		enrollmentRepo:  enrollmentRepo,
		collegeRepo:     collegeRepo,
		emailService:    emailService,
		activity:        newActivityRecorder(activityStore, logger),
		logger:          logger,
	}
}

// GenerateSchedule splits a total into count installments of equal cents.
// Division leftovers land on the first installment so the sum always equals
// the total. Due dates step by the frequency starting at firstDue.
func GenerateSchedule(totalCents int64, count int, firstDue time.Time, frequency models.PaymentFrequency) []*models.Installment {
	base := totalCents / int64(count)
	remainder := totalCents - base*int64(count)

	installments := make([]*models.Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := base
		if i == 0 {
			amount += remainder
		}
		installments = append(installments, &models.Installment{
			Sequence:    i + 1,
			AmountCents: amount,
			DueDate:     firstDue.AddDate(0, frequency.Months()*i, 0),
			Status:      models.InstallmentPending,
		})
	}
	return installments
}

// Create creates a payment plan and its installment schedule for an
// enrollment. The commission rate defaults to the college's rate when the
// request leaves it out.
func (s *PaymentPlanService) Create(ctx context.Context, agencyID, actorID int64, req dto.CreatePaymentPlanRequest) (*models.PaymentPlan, error) {
	currency := strings.ToUpper(req.Currency)
	if !validation.IsValidCurrency(currency) {
		return nil, apperrors.NewBadRequestError("currency must be a three letter ISO code")
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, agencyID, req.EnrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status == models.EnrollmentCancelled {
		return nil, apperrors.NewConflictError("cancelled enrollments cannot take a payment plan")
	}

	hasPlan, err := s.enrollmentRepo.HasPaymentPlan(ctx, agencyID, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if hasPlan {
		return nil, apperrors.ErrPaymentPlanExists
	}

	rateBps, err := s.resolveCommissionRate(ctx, agencyID, enrollment.CollegeID, req.CommissionRateBps)
	if err != nil {
		return nil, err
	}

	firstDue, err := helpers.ParseDate(req.FirstDueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid first due date")
	}

	plan := &models.PaymentPlan{
		AgencyID:          agencyID,
		EnrollmentID:      enrollment.ID,
		TotalAmountCents:  req.TotalAmountCents,
		Currency:          currency,
		CommissionRateBps: rateBps,
		InstallmentCount:  req.InstallmentCount,
		FirstDueDate:      firstDue,
		Frequency:         models.PaymentFrequency(req.Frequency),
		Status:            models.PlanActive,
	}

	installments := GenerateSchedule(req.TotalAmountCents, req.InstallmentCount, firstDue, plan.Frequency)
	for _, inst := range installments {
		inst.AgencyID = agencyID
	}

	if err := s.planRepo.CreateWithSchedule(ctx, plan, installments); err != nil {
		return nil, err
	}
	plan.Installments = installments

	s.activity.record(ctx, agencyID, actorID, "PAYMENT_PLAN", plan.ID,
		models.ActionCreate, fmt.Sprintf("%d installments, total %s %s", plan.InstallmentCount, dto.FormatCents(plan.TotalAmountCents), currency))
	return plan, nil
}

func (s *PaymentPlanService) resolveCommissionRate(ctx context.Context, agencyID, collegeID int64, requested *int32) (int32, error) {
	if requested != nil {
		return *requested, nil
	}
	college, err := s.collegeRepo.GetByID(ctx, agencyID, collegeID)
	if err != nil {
		return 0, err
	}
	return college.DefaultCommissionRateBps, nil
}

// GetByID retrieves a plan with its installments
func (s *PaymentPlanService) GetByID(ctx context.Context, agencyID, id int64) (*models.PaymentPlan, error) {
	return s.planRepo.GetByID(ctx, agencyID, id)
}

// GetByEnrollmentID retrieves the plans of an enrollment
func (s *PaymentPlanService) GetByEnrollmentID(ctx context.Context, agencyID, enrollmentID int64) ([]*models.PaymentPlan, error) {
	if _, err := s.enrollmentRepo.GetByID(ctx, agencyID, enrollmentID); err != nil {
		return nil, err
	}
	return s.planRepo.GetByEnrollmentID(ctx, agencyID, enrollmentID)
}

// Cancel cancels an active plan together with its unpaid installments.
// Installments already paid keep their record.
func (s *PaymentPlanService) Cancel(ctx context.Context, agencyID, actorID, id int64) (*models.PaymentPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanActive {
		return nil, apperrors.ErrPaymentPlanNotActive
	}

	if err := s.planRepo.CancelWithInstallments(ctx, agencyID, id); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "PAYMENT_PLAN", id, models.ActionUpdate, "cancelled")
	return s.planRepo.GetByID(ctx, agencyID, id)
}

// PayInstallment records a payment against an installment. When the payment
// settles the last open installment the plan moves to COMPLETED.
func (s *PaymentPlanService) PayInstallment(ctx context.Context, agencyID, actorID, installmentID int64, req dto.PayInstallmentRequest) (*models.Installment, error) {
	inst, err := s.installmentRepo.GetByID(ctx, agencyID, installmentID)
	if err != nil {
		return nil, err
	}

	switch inst.Status {
	case models.InstallmentPaid:
		return nil, apperrors.ErrInstallmentAlreadyPaid
	case models.InstallmentCancelled:
		return nil, apperrors.ErrInstallmentNotPayable
	}

	paidAt := time.Now()
	if req.PaidAt != "" {
		t, err := helpers.ParseDate(req.PaidAt)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid payment date")
		}
		paidAt = t
	}

	paidAmount := inst.AmountCents
	if req.PaidAmountCents != nil {
		paidAmount = *req.PaidAmountCents
	}

	if err := s.installmentRepo.MarkPaid(ctx, agencyID, installmentID, paidAt, paidAmount); err != nil {
		return nil, err
	}

	remaining, err := s.installmentRepo.CountRemaining(ctx, agencyID, inst.PaymentPlanID)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		if err := s.planRepo.UpdateStatus(ctx, agencyID, inst.PaymentPlanID, models.PlanCompleted); err != nil {
			return nil, err
		}
		s.logger.Info().
			Int64("agencyId", agencyID).
			Int64("planId", inst.PaymentPlanID).
			Msg("Payment plan completed")
	}

	s.activity.record(ctx, agencyID, actorID, "INSTALLMENT", installmentID,
		models.ActionUpdate, "paid "+dto.FormatCents(paidAmount))
	return s.installmentRepo.GetByID(ctx, agencyID, installmentID)
}

// SweepOverdue flips pending installments past their due date to OVERDUE
// and returns how many were flipped.
func (s *PaymentPlanService) SweepOverdue(ctx context.Context, agencyID, actorID int64) (int64, error) {
	count, err := s.installmentRepo.SweepOverdue(ctx, agencyID, helpers.DateOnly(time.Now()))
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.logger.Info().
			Int64("agencyId", agencyID).
			Int64("count", count).
			Msg("Installments marked overdue")
		s.activity.record(ctx, agencyID, actorID, "INSTALLMENT", 0,
			models.ActionUpdate, fmt.Sprintf("%d installments marked overdue", count))
	}

	return count, nil
}

// SendDueReminders mails students whose installments fall due within the
// window. Individual send failures are logged and skipped.
func (s *PaymentPlanService) SendDueReminders(ctx context.Context, agencyID int64, window time.Duration) (int, error) {
	now := helpers.DateOnly(time.Now())
	reminders, err := s.installmentRepo.ListDueSoon(ctx, agencyID, now, now.Add(window))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, row := range reminders {
		amount := dto.FormatCents(row.AmountCents) + " " + row.Currency
		if err := s.emailService.SendInstallmentReminder(row.StudentEmail, row.StudentName, amount, helpers.FormatDate(row.DueDate)); err != nil {
			s.logger.Error().Err(err).
				Int64("installmentId", row.InstallmentID).
				Msg("Failed to send installment reminder")
			continue
		}
		sent++
	}

	return sent, nil
}
