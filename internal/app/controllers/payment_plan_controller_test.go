package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/app/services"
)

func newPlanTestRouter(plans *stubPlanStore, installments *stubInstallmentStore, mail *stubEmailService) *gin.Engine {
	svc := services.NewPaymentPlanService(
		plans, installments, &stubEnrollmentStore{}, &stubCollegeStore{},
		mail, &stubActivityStore{}, zerolog.Nop())
	controller := NewPaymentPlanController(svc)

	router := newTestRouter()
	router.POST("/installments/:id/pay", controller.PayInstallment)
	router.POST("/installments/send-reminders", controller.SendReminders)
	return router
}

func pendingInstallmentStores() (*stubPlanStore, *stubInstallmentStore) {
	plans := &stubPlanStore{plan: &models.PaymentPlan{ID: 10, AgencyID: 1, Status: models.PlanActive}}
	installments := &stubInstallmentStore{
		installment: &models.Installment{ID: 100, AgencyID: 1, PaymentPlanID: 10, AmountCents: 25000, Status: models.InstallmentPending},
		remaining:   1,
	}
	return plans, installments
}

func TestPayInstallmentAcceptsEmptyBody(t *testing.T) {
	plans, installments := pendingInstallmentStores()
	router := newPlanTestRouter(plans, installments, &stubEmailService{})

	recorder := serve(router, httptest.NewRequest(http.MethodPost, "/installments/100/pay", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 for an empty body, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if installments.installment.Status != models.InstallmentPaid {
		t.Errorf("expected the installment marked PAID, got %s", installments.installment.Status)
	}
	if installments.installment.PaidAmountCents == nil || *installments.installment.PaidAmountCents != 25000 {
		t.Errorf("expected the scheduled amount recorded, got %v", installments.installment.PaidAmountCents)
	}
}

func TestPayInstallmentRejectsMalformedBody(t *testing.T) {
	plans, installments := pendingInstallmentStores()
	router := newPlanTestRouter(plans, installments, &stubEmailService{})

	req := httptest.NewRequest(http.MethodPost, "/installments/100/pay", strings.NewReader(`{"paidAmountCents":`))
	req.Header.Set("Content-Type", "application/json")
	recorder := serve(router, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed JSON, got %d", recorder.Code)
	}
}

func TestSendReminders(t *testing.T) {
	plans, installments := pendingInstallmentStores()
	installments.reminders = []repositories.ReminderRow{
		{InstallmentID: 100, AmountCents: 25000, Currency: "AUD", DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), StudentName: "Mei Lin", StudentEmail: "mei@example.com"},
	}
	mail := &stubEmailService{}
	router := newPlanTestRouter(plans, installments, mail)

	recorder := serve(router, httptest.NewRequest(http.MethodPost, "/installments/send-reminders?days=3", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if mail.sent != 1 {
		t.Errorf("expected 1 reminder mailed, got %d", mail.sent)
	}
	if !strings.Contains(recorder.Body.String(), `"remindersSent":1`) {
		t.Errorf("expected the sent count in the response, got %s", recorder.Body.String())
	}
}

func TestSendRemindersRejectsBadWindow(t *testing.T) {
	plans, installments := pendingInstallmentStores()
	router := newPlanTestRouter(plans, installments, &stubEmailService{})

	recorder := serve(router, httptest.NewRequest(http.MethodPost, "/installments/send-reminders?days=0", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a non-positive window, got %d", recorder.Code)
	}
}
