package dto

import (
	"fmt"
	"time"
)

// PaymentHistoryRow is one installment in a student's payment history,
// joined with its plan, college and program.
type PaymentHistoryRow struct {
	InstallmentID   int64      `json:"installmentId"`
	PaymentPlanID   int64      `json:"paymentPlanId"`
	CollegeName     string     `json:"collegeName"`
	ProgramName     string     `json:"programName"`
	Sequence        int        `json:"sequence"`
	AmountCents     int64      `json:"amountCents"`
	Currency        string     `json:"currency"`
	DueDate         time.Time  `json:"dueDate"`
	Status          string     `json:"status"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	PaidAmountCents *int64     `json:"paidAmountCents,omitempty"`
}

// PaymentHistoryResponse is the student payment history report.
type PaymentHistoryResponse struct {
	StudentID        int64               `json:"studentId"`
	StudentName      string              `json:"studentName"`
	Rows             []PaymentHistoryRow `json:"rows"`
	TotalDueCents    int64               `json:"totalDueCents"`
	TotalPaidCents   int64               `json:"totalPaidCents"`
	OutstandingCents int64               `json:"outstandingCents"`
}

// CommissionReportFilter carries the commission report query parameters.
type CommissionReportFilter struct {
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	CollegeID int64  `form:"collegeId" binding:"omitempty,min=1"`
}

// CommissionRow is a per-college aggregate of commission over paid installments.
type CommissionRow struct {
	CollegeID        int64  `json:"collegeId"`
	CollegeName      string `json:"collegeName"`
	Currency         string `json:"currency"`
	PaidInstallments int64  `json:"paidInstallments"`
	PaidAmountCents  int64  `json:"paidAmountCents"`
	CommissionCents  int64  `json:"commissionCents"`
}

// CommissionReportResponse is the agency commission summary.
type CommissionReportResponse struct {
	From                 *time.Time      `json:"from,omitempty"`
	To                   *time.Time      `json:"to,omitempty"`
	Rows                 []CommissionRow `json:"rows"`
	TotalPaidCents       int64           `json:"totalPaidCents"`
	TotalCommissionCents int64           `json:"totalCommissionCents"`
}

// FormatCents renders integer cents as a decimal amount string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
