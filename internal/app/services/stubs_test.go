package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// Hand-written fakes for the store interfaces. Records are keyed by agency
// and ID so a lookup under the wrong agency misses, the same way the
// agency_id filters behave in the real repositories.

type tenantKey struct {
	agencyID int64
	id       int64
}

type fakePlanStore struct {
	plans         map[tenantKey]*models.PaymentPlan
	statusUpdates []models.PlanStatus
}

func newFakePlanStore(plans ...*models.PaymentPlan) *fakePlanStore {
	s := &fakePlanStore{plans: make(map[tenantKey]*models.PaymentPlan)}
	for _, p := range plans {
		s.plans[tenantKey{p.AgencyID, p.ID}] = p
	}
	return s
}

func (s *fakePlanStore) CreateWithSchedule(ctx context.Context, plan *models.PaymentPlan, installments []*models.Installment) error {
	plan.ID = int64(len(s.plans) + 1)
	for _, inst := range installments {
		inst.PaymentPlanID = plan.ID
	}
	s.plans[tenantKey{plan.AgencyID, plan.ID}] = plan
	return nil
}

func (s *fakePlanStore) GetByID(ctx context.Context, agencyID, id int64) (*models.PaymentPlan, error) {
	plan, ok := s.plans[tenantKey{agencyID, id}]
	if !ok {
		return nil, apperrors.ErrPaymentPlanNotFound
	}
	return plan, nil
}

func (s *fakePlanStore) GetByEnrollmentID(ctx context.Context, agencyID, enrollmentID int64) ([]*models.PaymentPlan, error) {
	var plans []*models.PaymentPlan
	for key, plan := range s.plans {
		if key.agencyID == agencyID && plan.EnrollmentID == enrollmentID {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (s *fakePlanStore) UpdateStatus(ctx context.Context, agencyID, id int64, status models.PlanStatus) error {
	plan, ok := s.plans[tenantKey{agencyID, id}]
	if !ok {
		return apperrors.ErrPaymentPlanNotFound
	}
	plan.Status = status
	s.statusUpdates = append(s.statusUpdates, status)
	return nil
}

func (s *fakePlanStore) CancelWithInstallments(ctx context.Context, agencyID, id int64) error {
	plan, ok := s.plans[tenantKey{agencyID, id}]
	if !ok {
		return apperrors.ErrPaymentPlanNotFound
	}
	plan.Status = models.PlanCancelled
	return nil
}

type fakeInstallmentStore struct {
	installments map[tenantKey]*models.Installment
	remaining    int64
	overdue      int64
	reminders    []repositories.ReminderRow
	listErr      error
}

func newFakeInstallmentStore(installments ...*models.Installment) *fakeInstallmentStore {
	s := &fakeInstallmentStore{installments: make(map[tenantKey]*models.Installment)}
	for _, inst := range installments {
		s.installments[tenantKey{inst.AgencyID, inst.ID}] = inst
	}
	return s
}

func (s *fakeInstallmentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Installment, error) {
	inst, ok := s.installments[tenantKey{agencyID, id}]
	if !ok {
		return nil, apperrors.ErrInstallmentNotFound
	}
	return inst, nil
}

func (s *fakeInstallmentStore) MarkPaid(ctx context.Context, agencyID, id int64, paidAt time.Time, paidAmountCents int64) error {
	inst, ok := s.installments[tenantKey{agencyID, id}]
	if !ok {
		return apperrors.ErrInstallmentNotFound
	}
	inst.Status = models.InstallmentPaid
	inst.PaidAt = &paidAt
	inst.PaidAmountCents = &paidAmountCents
	return nil
}

func (s *fakeInstallmentStore) CountRemaining(ctx context.Context, agencyID, planID int64) (int64, error) {
	return s.remaining, nil
}

func (s *fakeInstallmentStore) SweepOverdue(ctx context.Context, agencyID int64, asOf time.Time) (int64, error) {
	return s.overdue, nil
}

func (s *fakeInstallmentStore) ListDueSoon(ctx context.Context, agencyID int64, from, to time.Time) ([]repositories.ReminderRow, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.reminders, nil
}

type fakeEnrollmentStore struct {
	enrollments map[tenantKey]*models.Enrollment
	hasPlan     bool
}

func newFakeEnrollmentStore(enrollments ...*models.Enrollment) *fakeEnrollmentStore {
	s := &fakeEnrollmentStore{enrollments: make(map[tenantKey]*models.Enrollment)}
	for _, e := range enrollments {
		s.enrollments[tenantKey{e.AgencyID, e.ID}] = e
	}
	return s
}

func (s *fakeEnrollmentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Enrollment, error) {
	enrollment, ok := s.enrollments[tenantKey{agencyID, id}]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (s *fakeEnrollmentStore) HasPaymentPlan(ctx context.Context, agencyID, enrollmentID int64) (bool, error) {
	return s.hasPlan, nil
}

type fakeCollegeStore struct {
	colleges map[tenantKey]*models.College
}

func newFakeCollegeStore(colleges ...*models.College) *fakeCollegeStore {
	s := &fakeCollegeStore{colleges: make(map[tenantKey]*models.College)}
	for _, c := range colleges {
		s.colleges[tenantKey{c.AgencyID, c.ID}] = c
	}
	return s
}

func (s *fakeCollegeStore) GetByID(ctx context.Context, agencyID, id int64) (*models.College, error) {
	college, ok := s.colleges[tenantKey{agencyID, id}]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return college, nil
}

type fakeStudentStore struct {
	students map[tenantKey]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[tenantKey]*models.Student)}
	for _, st := range students {
		s.students[tenantKey{st.AgencyID, st.ID}] = st
	}
	return s
}

func (s *fakeStudentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Student, error) {
	student, ok := s.students[tenantKey{agencyID, id}]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

type fakeReportStore struct {
	history []dto.PaymentHistoryRow
	groups  []repositories.CommissionGroup
	err     error
}

func (s *fakeReportStore) GetPaymentHistory(ctx context.Context, agencyID, studentID int64) ([]dto.PaymentHistoryRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func (s *fakeReportStore) GetCommissionGroups(ctx context.Context, agencyID int64, from, to *time.Time, collegeID int64) ([]repositories.CommissionGroup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.groups, nil
}

type fakeActivityStore struct {
	entries []*models.Activity
}

func (s *fakeActivityStore) Create(ctx context.Context, entry *models.Activity) error {
	s.entries = append(s.entries, entry)
	return nil
}

type fakeEmailService struct {
	sent    []string
	failFor string
}

func (s *fakeEmailService) SendInstallmentReminder(toEmail, toName string, amount string, dueDate string) error {
	if toEmail == s.failFor {
		return errors.New("smtp connection refused")
	}
	s.sent = append(s.sent, toEmail)
	return nil
}

func newTestPlanService(plans *fakePlanStore, installments *fakeInstallmentStore, enrollments *fakeEnrollmentStore, colleges *fakeCollegeStore, mail *fakeEmailService) *PaymentPlanService {
	return NewPaymentPlanService(plans, installments, enrollments, colleges, mail, &fakeActivityStore{}, zerolog.Nop())
}
