package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

func TestGenerateScheduleEvenSplit(t *testing.T) {
	firstDue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	installments := GenerateSchedule(120000, 4, firstDue, models.FrequencyMonthly)

	if len(installments) != 4 {
		t.Fatalf("expected 4 installments, got %d", len(installments))
	}
	for i, inst := range installments {
		if inst.AmountCents != 30000 {
			t.Errorf("installment %d: expected 30000 cents, got %d", i+1, inst.AmountCents)
		}
		if inst.Sequence != i+1 {
			t.Errorf("installment %d: expected sequence %d, got %d", i+1, i+1, inst.Sequence)
		}
		if inst.Status != models.InstallmentPending {
			t.Errorf("installment %d: expected status PENDING, got %s", i+1, inst.Status)
		}
	}
}

func TestGenerateScheduleRemainderOnFirst(t *testing.T) {
	firstDue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	installments := GenerateSchedule(100000, 3, firstDue, models.FrequencyMonthly)

	// 100000 / 3 = 33333 with 1 cent left over
	if installments[0].AmountCents != 33334 {
		t.Errorf("first installment: expected 33334 cents, got %d", installments[0].AmountCents)
	}
	for i := 1; i < 3; i++ {
		if installments[i].AmountCents != 33333 {
			t.Errorf("installment %d: expected 33333 cents, got %d", i+1, installments[i].AmountCents)
		}
	}

	var sum int64
	for _, inst := range installments {
		sum += inst.AmountCents
	}
	if sum != 100000 {
		t.Errorf("expected installments to sum to total, got %d", sum)
	}
}

func TestGenerateScheduleMonthlyDueDates(t *testing.T) {
	firstDue := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	installments := GenerateSchedule(30000, 3, firstDue, models.FrequencyMonthly)

	expected := []time.Time{
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range installments {
		if !inst.DueDate.Equal(expected[i]) {
			t.Errorf("installment %d: expected due %s, got %s", i+1, expected[i], inst.DueDate)
		}
	}
}

func TestGenerateScheduleQuarterlyDueDates(t *testing.T) {
	firstDue := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	installments := GenerateSchedule(30000, 3, firstDue, models.FrequencyQuarterly)

	// AddDate normalizes 2026-04-31 to 2026-05-01
	expected := []time.Time{
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range installments {
		if !inst.DueDate.Equal(expected[i]) {
			t.Errorf("installment %d: expected due %s, got %s", i+1, expected[i], inst.DueDate)
		}
	}
}

func TestGenerateScheduleSingleInstallment(t *testing.T) {
	firstDue := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	installments := GenerateSchedule(99999, 1, firstDue, models.FrequencyMonthly)

	if len(installments) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(installments))
	}
	if installments[0].AmountCents != 99999 {
		t.Errorf("expected the full total on the single installment, got %d", installments[0].AmountCents)
	}
}

func activePlanFixture() (*fakePlanStore, *fakeInstallmentStore) {
	plan := &models.PaymentPlan{ID: 10, AgencyID: 1, EnrollmentID: 5, Status: models.PlanActive}
	inst := &models.Installment{ID: 100, AgencyID: 1, PaymentPlanID: 10, Sequence: 1, AmountCents: 25000, Status: models.InstallmentPending}
	return newFakePlanStore(plan), newFakeInstallmentStore(inst)
}

func TestPayInstallmentRejectsPaid(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.installments[tenantKey{1, 100}].Status = models.InstallmentPaid
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	_, err := svc.PayInstallment(context.Background(), 1, 7, 100, dto.PayInstallmentRequest{})
	if !errors.Is(err, apperrors.ErrInstallmentAlreadyPaid) {
		t.Fatalf("expected ErrInstallmentAlreadyPaid, got %v", err)
	}
}

func TestPayInstallmentRejectsCancelled(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.installments[tenantKey{1, 100}].Status = models.InstallmentCancelled
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	_, err := svc.PayInstallment(context.Background(), 1, 7, 100, dto.PayInstallmentRequest{})
	if !errors.Is(err, apperrors.ErrInstallmentNotPayable) {
		t.Fatalf("expected ErrInstallmentNotPayable, got %v", err)
	}
}

func TestPayInstallmentDefaultsToScheduledAmount(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.remaining = 1
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	paid, err := svc.PayInstallment(context.Background(), 1, 7, 100, dto.PayInstallmentRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.Status != models.InstallmentPaid {
		t.Errorf("expected status PAID, got %s", paid.Status)
	}
	if paid.PaidAmountCents == nil || *paid.PaidAmountCents != 25000 {
		t.Errorf("expected the scheduled 25000 cents recorded, got %v", paid.PaidAmountCents)
	}
	if len(plans.statusUpdates) != 0 {
		t.Errorf("plan with open installments must stay active, got status updates %v", plans.statusUpdates)
	}
}

func TestPayInstallmentCompletesPlanOnLastPayment(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.remaining = 0
	override := int64(24000)
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	paid, err := svc.PayInstallment(context.Background(), 1, 7, 100, dto.PayInstallmentRequest{PaidAmountCents: &override})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PaidAmountCents == nil || *paid.PaidAmountCents != 24000 {
		t.Errorf("expected the override of 24000 cents recorded, got %v", paid.PaidAmountCents)
	}
	if len(plans.statusUpdates) != 1 || plans.statusUpdates[0] != models.PlanCompleted {
		t.Fatalf("expected the plan moved to COMPLETED, got %v", plans.statusUpdates)
	}
}

func TestPayInstallmentOtherAgencyNotFound(t *testing.T) {
	plans, installments := activePlanFixture()
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	_, err := svc.PayInstallment(context.Background(), 2, 7, 100, dto.PayInstallmentRequest{})
	if !errors.Is(err, apperrors.ErrInstallmentNotFound) {
		t.Fatalf("expected ErrInstallmentNotFound for another agency's installment, got %v", err)
	}
}

func TestGetPaymentPlanOtherAgencyNotFound(t *testing.T) {
	plans, installments := activePlanFixture()
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	_, err := svc.GetByID(context.Background(), 2, 10)
	if !errors.Is(err, apperrors.ErrPaymentPlanNotFound) {
		t.Fatalf("expected ErrPaymentPlanNotFound for another agency's plan, got %v", err)
	}
}

func TestCancelRequiresActivePlan(t *testing.T) {
	plans, installments := activePlanFixture()
	plans.plans[tenantKey{1, 10}].Status = models.PlanCompleted
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	_, err := svc.Cancel(context.Background(), 1, 7, 10)
	if !errors.Is(err, apperrors.ErrPaymentPlanNotActive) {
		t.Fatalf("expected ErrPaymentPlanNotActive, got %v", err)
	}
}

func TestCancelPlan(t *testing.T) {
	plans, installments := activePlanFixture()
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	plan, err := svc.Cancel(context.Background(), 1, 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Status != models.PlanCancelled {
		t.Errorf("expected status CANCELLED, got %s", plan.Status)
	}
}

func TestCreatePaymentPlanRejectsDuplicate(t *testing.T) {
	enrollments := newFakeEnrollmentStore(&models.Enrollment{ID: 5, AgencyID: 1, CollegeID: 3, Status: models.EnrollmentConfirmed})
	enrollments.hasPlan = true
	colleges := newFakeCollegeStore(&models.College{ID: 3, AgencyID: 1, DefaultCommissionRateBps: 1500})
	svc := newTestPlanService(newFakePlanStore(), newFakeInstallmentStore(), enrollments, colleges, &fakeEmailService{})

	_, err := svc.Create(context.Background(), 1, 7, dto.CreatePaymentPlanRequest{
		EnrollmentID:     5,
		TotalAmountCents: 100000,
		Currency:         "AUD",
		InstallmentCount: 4,
		FirstDueDate:     "2026-09-01",
		Frequency:        "MONTHLY",
	})
	if !errors.Is(err, apperrors.ErrPaymentPlanExists) {
		t.Fatalf("expected ErrPaymentPlanExists, got %v", err)
	}
}

func TestCreatePaymentPlanUsesCollegeDefaultRate(t *testing.T) {
	enrollments := newFakeEnrollmentStore(&models.Enrollment{ID: 5, AgencyID: 1, CollegeID: 3, Status: models.EnrollmentConfirmed})
	colleges := newFakeCollegeStore(&models.College{ID: 3, AgencyID: 1, DefaultCommissionRateBps: 1500})
	svc := newTestPlanService(newFakePlanStore(), newFakeInstallmentStore(), enrollments, colleges, &fakeEmailService{})

	plan, err := svc.Create(context.Background(), 1, 7, dto.CreatePaymentPlanRequest{
		EnrollmentID:     5,
		TotalAmountCents: 100000,
		Currency:         "aud",
		InstallmentCount: 4,
		FirstDueDate:     "2026-09-01",
		Frequency:        "MONTHLY",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.CommissionRateBps != 1500 {
		t.Errorf("expected the college default of 1500 bps, got %d", plan.CommissionRateBps)
	}
	if plan.Currency != "AUD" {
		t.Errorf("expected currency normalized to AUD, got %s", plan.Currency)
	}
	if len(plan.Installments) != 4 {
		t.Errorf("expected 4 installments, got %d", len(plan.Installments))
	}
}

func TestSendDueRemindersSkipsFailures(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.reminders = []repositories.ReminderRow{
		{InstallmentID: 100, AmountCents: 25000, Currency: "AUD", DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), StudentName: "Mei Lin", StudentEmail: "mei@example.com"},
		{InstallmentID: 101, AmountCents: 30000, Currency: "AUD", DueDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), StudentName: "Arjun Rao", StudentEmail: "arjun@example.com"},
	}
	mail := &fakeEmailService{failFor: "arjun@example.com"}
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), mail)

	sent, err := svc.SendDueReminders(context.Background(), 1, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Errorf("expected 1 reminder sent, got %d", sent)
	}
	if len(mail.sent) != 1 || mail.sent[0] != "mei@example.com" {
		t.Errorf("expected only mei@example.com mailed, got %v", mail.sent)
	}
}

func TestSendDueRemindersQueryError(t *testing.T) {
	plans, installments := activePlanFixture()
	installments.listErr = errors.New("connection reset")
	svc := newTestPlanService(plans, installments, newFakeEnrollmentStore(), newFakeCollegeStore(), &fakeEmailService{})

	if _, err := svc.SendDueReminders(context.Background(), 1, 7*24*time.Hour); err == nil {
		t.Fatal("expected the lookup error to propagate")
	}
}
