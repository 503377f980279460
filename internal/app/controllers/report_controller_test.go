package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/pkg/metrics"
)

func newReportTestRouter(reports *stubReportStore, students *stubStudentStore) *gin.Engine {
	svc := services.NewReportService(reports, students, metrics.New(prometheus.NewRegistry()), zerolog.Nop())
	controller := NewReportController(svc)

	router := newTestRouter()
	router.GET("/students/:id/payment-history/export", controller.ExportPaymentHistory)
	router.GET("/reports/commissions/export", controller.ExportCommissionReport)
	return router
}

func TestExportPaymentHistoryUnknownStudentIsJSONError(t *testing.T) {
	router := newReportTestRouter(&stubReportStore{}, &stubStudentStore{})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/students/4/payment-history/export?format=csv", nil))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
	if disposition := recorder.Header().Get("Content-Disposition"); disposition != "" {
		t.Errorf("error responses must not carry attachment headers, got %q", disposition)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		t.Errorf("expected a JSON error response, got content type %q", contentType)
	}
}

func TestExportPaymentHistoryDownloadHeaders(t *testing.T) {
	students := &stubStudentStore{student: &models.Student{ID: 4, AgencyID: 1, FirstName: "Mei", LastName: "Lin"}}
	router := newReportTestRouter(&stubReportStore{}, students)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/students/4/payment-history/export?format=csv", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.Contains(contentType, "text/csv") {
		t.Errorf("expected text/csv, got %q", contentType)
	}
	if disposition := recorder.Header().Get("Content-Disposition"); !strings.Contains(disposition, "attachment") {
		t.Errorf("expected an attachment disposition, got %q", disposition)
	}
	if !strings.Contains(recorder.Body.String(), "College") {
		t.Errorf("expected the CSV header row in the body, got %q", recorder.Body.String())
	}
}

func TestExportPaymentHistoryRejectsUnknownFormat(t *testing.T) {
	students := &stubStudentStore{student: &models.Student{ID: 4, AgencyID: 1}}
	router := newReportTestRouter(&stubReportStore{}, students)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/students/4/payment-history/export?format=docx", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}

func TestExportCommissionReportInvalidDateIsJSONError(t *testing.T) {
	router := newReportTestRouter(&stubReportStore{}, &stubStudentStore{})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/reports/commissions/export?format=csv&from=yesterday", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
	if disposition := recorder.Header().Get("Content-Disposition"); disposition != "" {
		t.Errorf("error responses must not carry attachment headers, got %q", disposition)
	}
}
