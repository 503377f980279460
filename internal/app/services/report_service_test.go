package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/metrics"
)

func TestCommissionCents(t *testing.T) {
	tests := []struct {
		name      string
		paidCents int64
		rateBps   int32
		want      int64
	}{
		{"fifteen percent", 100000, 1500, 15000},
		{"zero rate", 100000, 0, 0},
		{"zero paid", 0, 1500, 0},
		{"full rate", 50000, 10000, 50000},
		// 333 * 15% = 49.95 cents, rounds up
		{"rounds half up", 333, 1500, 50},
		{"rounds down below half", 100, 1249, 12},
		{"rounds up at half", 100, 1250, 13},
		{"one cent", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionCents(tt.paidCents, tt.rateBps)
			if got != tt.want {
				t.Errorf("CommissionCents(%d, %d) = %d, want %d", tt.paidCents, tt.rateBps, got, tt.want)
			}
		})
	}
}

func newTestReportService(reports *fakeReportStore, students *fakeStudentStore) *ReportService {
	return NewReportService(reports, students, metrics.New(prometheus.NewRegistry()), zerolog.Nop())
}

func TestGetPaymentHistoryTotals(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	paidAmount := int64(30000)
	reports := &fakeReportStore{history: []dto.PaymentHistoryRow{
		{Sequence: 1, AmountCents: 30000, Status: "PAID", PaidAt: &paidAt, PaidAmountCents: &paidAmount},
		{Sequence: 2, AmountCents: 30000, Status: "PENDING"},
		{Sequence: 3, AmountCents: 30000, Status: "CANCELLED"},
	}}
	students := newFakeStudentStore(&models.Student{ID: 4, AgencyID: 1, FirstName: "Mei", LastName: "Lin"})
	svc := newTestReportService(reports, students)

	resp, err := svc.GetPaymentHistory(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalDueCents != 60000 {
		t.Errorf("cancelled rows must not count toward due, got %d", resp.TotalDueCents)
	}
	if resp.TotalPaidCents != 30000 {
		t.Errorf("expected 30000 cents paid, got %d", resp.TotalPaidCents)
	}
	if resp.OutstandingCents != 30000 {
		t.Errorf("expected 30000 cents outstanding, got %d", resp.OutstandingCents)
	}
	if resp.StudentName != "Mei Lin" {
		t.Errorf("expected student name Mei Lin, got %q", resp.StudentName)
	}
}

func TestGetPaymentHistoryOtherAgencyNotFound(t *testing.T) {
	students := newFakeStudentStore(&models.Student{ID: 4, AgencyID: 1})
	svc := newTestReportService(&fakeReportStore{}, students)

	_, err := svc.GetPaymentHistory(context.Background(), 2, 4)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound for another agency's student, got %v", err)
	}
}

func TestGetCommissionReportMergesCollegeCurrency(t *testing.T) {
	// Two rate groups of the same college and currency collapse into one row
	// with commission computed per group.
	reports := &fakeReportStore{groups: []repositories.CommissionGroup{
		{CollegeID: 3, CollegeName: "Harbor College", Currency: "AUD", CommissionRateBps: 1500, PaidInstallments: 2, PaidAmountCents: 100000},
		{CollegeID: 3, CollegeName: "Harbor College", Currency: "AUD", CommissionRateBps: 2000, PaidInstallments: 1, PaidAmountCents: 50000},
	}}
	svc := newTestReportService(reports, newFakeStudentStore())

	resp, err := svc.GetCommissionReport(context.Background(), 1, dto.CommissionReportFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(resp.Rows))
	}
	if resp.Rows[0].PaidInstallments != 3 {
		t.Errorf("expected 3 paid installments, got %d", resp.Rows[0].PaidInstallments)
	}
	// 15% of 100000 plus 20% of 50000
	if resp.Rows[0].CommissionCents != 25000 {
		t.Errorf("expected 25000 cents commission, got %d", resp.Rows[0].CommissionCents)
	}
	if resp.TotalCommissionCents != 25000 {
		t.Errorf("expected total commission 25000 cents, got %d", resp.TotalCommissionCents)
	}
}

func TestExportPaymentHistoryCSV(t *testing.T) {
	students := newFakeStudentStore(&models.Student{ID: 4, AgencyID: 1, FirstName: "Mei", LastName: "Lin"})
	svc := newTestReportService(&fakeReportStore{}, students)

	var buf bytes.Buffer
	if err := svc.ExportPaymentHistory(context.Background(), &buf, FormatCSV, 1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "College") {
		t.Errorf("expected the CSV header row, got %q", buf.String())
	}
}

func TestExportPaymentHistoryUnsupportedFormat(t *testing.T) {
	students := newFakeStudentStore(&models.Student{ID: 4, AgencyID: 1})
	svc := newTestReportService(&fakeReportStore{}, students)

	if err := svc.ExportPaymentHistory(context.Background(), &bytes.Buffer{}, "docx", 1, 4); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
