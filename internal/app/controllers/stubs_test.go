package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/middleware"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// Minimal store fakes so the controllers can be driven through a real
// router without a database.

type stubPlanStore struct {
	plan *models.PaymentPlan
}

func (s *stubPlanStore) CreateWithSchedule(ctx context.Context, plan *models.PaymentPlan, installments []*models.Installment) error {
	return nil
}

func (s *stubPlanStore) GetByID(ctx context.Context, agencyID, id int64) (*models.PaymentPlan, error) {
	if s.plan == nil || s.plan.AgencyID != agencyID || s.plan.ID != id {
		return nil, apperrors.ErrPaymentPlanNotFound
	}
	return s.plan, nil
}

func (s *stubPlanStore) GetByEnrollmentID(ctx context.Context, agencyID, enrollmentID int64) ([]*models.PaymentPlan, error) {
	return nil, nil
}

func (s *stubPlanStore) UpdateStatus(ctx context.Context, agencyID, id int64, status models.PlanStatus) error {
	return nil
}

func (s *stubPlanStore) CancelWithInstallments(ctx context.Context, agencyID, id int64) error {
	return nil
}

type stubInstallmentStore struct {
	installment *models.Installment
	remaining   int64
	reminders   []repositories.ReminderRow
}

func (s *stubInstallmentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Installment, error) {
	if s.installment == nil || s.installment.AgencyID != agencyID || s.installment.ID != id {
		return nil, apperrors.ErrInstallmentNotFound
	}
	return s.installment, nil
}

func (s *stubInstallmentStore) MarkPaid(ctx context.Context, agencyID, id int64, paidAt time.Time, paidAmountCents int64) error {
	s.installment.Status = models.InstallmentPaid
	s.installment.PaidAt = &paidAt
	s.installment.PaidAmountCents = &paidAmountCents
	return nil
}

func (s *stubInstallmentStore) CountRemaining(ctx context.Context, agencyID, planID int64) (int64, error) {
	return s.remaining, nil
}

func (s *stubInstallmentStore) SweepOverdue(ctx context.Context, agencyID int64, asOf time.Time) (int64, error) {
	return 0, nil
}

func (s *stubInstallmentStore) ListDueSoon(ctx context.Context, agencyID int64, from, to time.Time) ([]repositories.ReminderRow, error) {
	return s.reminders, nil
}

type stubEnrollmentStore struct{}

func (s *stubEnrollmentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Enrollment, error) {
	return nil, apperrors.ErrEnrollmentNotFound
}

func (s *stubEnrollmentStore) HasPaymentPlan(ctx context.Context, agencyID, enrollmentID int64) (bool, error) {
	return false, nil
}

type stubCollegeStore struct{}

func (s *stubCollegeStore) GetByID(ctx context.Context, agencyID, id int64) (*models.College, error) {
	return nil, apperrors.ErrCollegeNotFound
}

type stubStudentStore struct {
	student *models.Student
}

func (s *stubStudentStore) GetByID(ctx context.Context, agencyID, id int64) (*models.Student, error) {
	if s.student == nil || s.student.AgencyID != agencyID || s.student.ID != id {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.student, nil
}

type stubReportStore struct {
	history []dto.PaymentHistoryRow
}

func (s *stubReportStore) GetPaymentHistory(ctx context.Context, agencyID, studentID int64) ([]dto.PaymentHistoryRow, error) {
	return s.history, nil
}

func (s *stubReportStore) GetCommissionGroups(ctx context.Context, agencyID int64, from, to *time.Time, collegeID int64) ([]repositories.CommissionGroup, error) {
	return nil, nil
}

type stubActivityStore struct{}

func (s *stubActivityStore) Create(ctx context.Context, entry *models.Activity) error {
	return nil
}

type stubEmailService struct {
	sent int
}

func (s *stubEmailService) SendInstallmentReminder(toEmail, toName string, amount string, dueDate string) error {
	s.sent++
	return nil
}

// newTestRouter returns a router whose auth context is pinned to agency 1,
// user 7.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAgencyID, int64(1))
		c.Set(middleware.ContextUserID, int64(7))
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
