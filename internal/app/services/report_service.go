package services

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/helpers"
	"github.com/pleeno/pleeno/internal/pkg/metrics"
	"github.com/pleeno/pleeno/internal/pkg/report"
)

// Export formats accepted by the report endpoints
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportService builds the payment history and commission reports and
// renders their exports.
type ReportService struct {
	reportRepo  ReportStore
	studentRepo StudentStore
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo ReportStore,
	studentRepo StudentStore,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		studentRepo: studentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CommissionCents computes the agency's commission on a paid amount at the
// given basis point rate, rounding half up.
func CommissionCents(paidCents int64, rateBps int32) int64 {
	return (paidCents*int64(rateBps) + 5000) / 10000
}

// GetPaymentHistory builds a student's payment history with totals.
// Cancelled installments count toward neither due nor paid.
func (s *ReportService) GetPaymentHistory(ctx context.Context, agencyID, studentID int64) (*dto.PaymentHistoryResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, agencyID, studentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.GetPaymentHistory(ctx, agencyID, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PaymentHistoryResponse{
		StudentID:   student.ID,
		StudentName: student.FullName(),
		Rows:        rows,
	}
	for _, row := range rows {
		if row.Status == "CANCELLED" {
			continue
		}
		resp.TotalDueCents += row.AmountCents
		if row.Status == "PAID" && row.PaidAmountCents != nil {
			resp.TotalPaidCents += *row.PaidAmountCents
		}
	}
	resp.OutstandingCents = resp.TotalDueCents - resp.TotalPaidCents

	return resp, nil
}

// GetCommissionReport aggregates commission over paid installments per
// college for the agency, optionally narrowed by paid date and college.
func (s *ReportService) GetCommissionReport(ctx context.Context, agencyID int64, filter dto.CommissionReportFilter) (*dto.CommissionReportResponse, error) {
	var from, to *time.Time
	if filter.From != "" {
		t, err := helpers.ParseDate(filter.From)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid from date")
		}
		from = &t
	}
	if filter.To != "" {
		t, err := helpers.ParseDate(filter.To)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid to date")
		}
		// The to date is inclusive, the query bound is exclusive
		end := t.AddDate(0, 0, 1)
		to = &end
	}

	groups, err := s.reportRepo.GetCommissionGroups(ctx, agencyID, from, to, filter.CollegeID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CommissionReportResponse{From: from, Rows: []dto.CommissionRow{}}
	if filter.To != "" {
		t, _ := helpers.ParseDate(filter.To)
		resp.To = &t
	}

	// Groups sharing a college and currency collapse into one row. Commission
	// is computed per group so each plan's own rate applies.
	index := make(map[string]int)
	for _, g := range groups {
		commission := CommissionCents(g.PaidAmountCents, g.CommissionRateBps)
		key := strconv.FormatInt(g.CollegeID, 10) + "/" + g.Currency

		if i, ok := index[key]; ok {
			resp.Rows[i].PaidInstallments += g.PaidInstallments
			resp.Rows[i].PaidAmountCents += g.PaidAmountCents
			resp.Rows[i].CommissionCents += commission
		} else {
			index[key] = len(resp.Rows)
			resp.Rows = append(resp.Rows, dto.CommissionRow{
				CollegeID:        g.CollegeID,
				CollegeName:      g.CollegeName,
				Currency:         g.Currency,
				PaidInstallments: g.PaidInstallments,
				PaidAmountCents:  g.PaidAmountCents,
				CommissionCents:  commission,
			})
		}

		resp.TotalPaidCents += g.PaidAmountCents
		resp.TotalCommissionCents += commission
	}

	return resp, nil
}

// ExportPaymentHistory renders a student's payment history in the requested
// format and writes it to w.
func (s *ReportService) ExportPaymentHistory(ctx context.Context, w io.Writer, format string, agencyID, studentID int64) error {
	history, err := s.GetPaymentHistory(ctx, agencyID, studentID)
	if err != nil {
		return err
	}

	table := buildPaymentHistoryTable(history)
	if err := writeTable(w, format, table); err != nil {
		return err
	}

	s.metrics.ReportExported("payment_history", format)
	return nil
}

// ExportCommissionReport renders the commission report in the requested
// format and writes it to w.
func (s *ReportService) ExportCommissionReport(ctx context.Context, w io.Writer, format string, agencyID int64, filter dto.CommissionReportFilter) error {
	resp, err := s.GetCommissionReport(ctx, agencyID, filter)
	if err != nil {
		return err
	}

	table := buildCommissionTable(resp)
	if err := writeTable(w, format, table); err != nil {
		return err
	}

	s.metrics.ReportExported("commissions", format)
	return nil
}

func writeTable(w io.Writer, format string, table report.Table) error {
	switch format {
	case FormatCSV:
		return report.WriteCSV(w, table)
	case FormatXLSX:
		return report.WriteXLSX(w, table)
	case FormatPDF:
		return report.WritePDF(w, table)
	default:
		return apperrors.NewBadRequestError("unsupported export format: " + format)
	}
}

func buildPaymentHistoryTable(history *dto.PaymentHistoryResponse) report.Table {
	table := report.Table{
		Title:   "Payment History - " + history.StudentName,
		Headers: []string{"College", "Program", "Installment", "Amount", "Currency", "Due Date", "Status", "Paid At", "Paid Amount"},
	}

	for _, row := range history.Rows {
		paidAt := ""
		if row.PaidAt != nil {
			paidAt = helpers.FormatDate(*row.PaidAt)
		}
		paidAmount := ""
		if row.PaidAmountCents != nil {
			paidAmount = dto.FormatCents(*row.PaidAmountCents)
		}
		table.Rows = append(table.Rows, []string{
			row.CollegeName,
			row.ProgramName,
			strconv.Itoa(row.Sequence),
			dto.FormatCents(row.AmountCents),
			row.Currency,
			helpers.FormatDate(row.DueDate),
			row.Status,
			paidAt,
			paidAmount,
		})
	}

	table.Rows = append(table.Rows, []string{
		"", "", "Total due", dto.FormatCents(history.TotalDueCents), "", "", "", "Total paid", dto.FormatCents(history.TotalPaidCents),
	})

	return table
}

func buildCommissionTable(resp *dto.CommissionReportResponse) report.Table {
	table := report.Table{
		Title:   "Commission Report",
		Headers: []string{"College", "Currency", "Paid Installments", "Paid Amount", "Commission"},
	}

	for _, row := range resp.Rows {
		table.Rows = append(table.Rows, []string{
			row.CollegeName,
			row.Currency,
			strconv.FormatInt(row.PaidInstallments, 10),
			dto.FormatCents(row.PaidAmountCents),
			dto.FormatCents(row.CommissionCents),
		})
	}

	table.Rows = append(table.Rows, []string{
		"Total", "", "", dto.FormatCents(resp.TotalPaidCents), dto.FormatCents(resp.TotalCommissionCents),
	})

	return table
}
