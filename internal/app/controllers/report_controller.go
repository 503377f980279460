package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/middleware"
)

var exportContentTypes = map[string]string{
	services.FormatCSV:  "text/csv",
	services.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	services.FormatPDF:  "application/pdf",
}

// ReportController handles the payment history and commission reports
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetPaymentHistory returns a student's payment history
// @Summary Get a student's payment history
// @Description Returns every installment across the student's payment plans with due, paid and outstanding totals
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentHistoryResponse} "Payment history"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/payment-history [get]
func (c *ReportController) GetPaymentHistory(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	history, err := c.reportService.GetPaymentHistory(ctx, middleware.GetAgencyID(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}

// ExportPaymentHistory downloads a student's payment history
// @Summary Export a student's payment history
// @Description Streams the payment history as a CSV, XLSX or PDF download
// @Tags reports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param format query string true "Export format" Enums(csv, xlsx, pdf)
// @Success 200 {file} file "Exported report"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/payment-history/export [get]
func (c *ReportController) ExportPaymentHistory(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	format := ctx.DefaultQuery("format", services.FormatCSV)
	contentType, ok := exportContentTypes[format]
	if !ok {
		middleware.HandleAPIError(ctx, servicesBadFormat(format))
		return
	}

	// Render into a buffer first so a failed export still returns a JSON
	// error instead of a partial download with attachment headers.
	var buf bytes.Buffer
	if err := c.reportService.ExportPaymentHistory(ctx, &buf, format, middleware.GetAgencyID(ctx), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fileName := fmt.Sprintf("payment-history-%d-%s.%s", studentID, time.Now().Format("2006-01-02"), format)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, contentType, buf.Bytes())
}

// GetCommissionReport returns the agency commission summary
// @Summary Get the commission report
// @Description Aggregates commission over paid installments per college, optionally narrowed by paid date range and college
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string false "End date (inclusive, YYYY-MM-DD)"
// @Param collegeId query int false "Filter by college"
// @Success 200 {object} dto.APIResponse{data=dto.CommissionReportResponse} "Commission report"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/commissions [get]
func (c *ReportController) GetCommissionReport(ctx *gin.Context) {
	var filter dto.CommissionReportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	report, err := c.reportService.GetCommissionReport(ctx, middleware.GetAgencyID(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// ExportCommissionReport downloads the commission report
// @Summary Export the commission report
// @Description Streams the commission report as a CSV, XLSX or PDF download
// @Tags reports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string false "End date (inclusive, YYYY-MM-DD)"
// @Param collegeId query int false "Filter by college"
// @Param format query string true "Export format" Enums(csv, xlsx, pdf)
// @Success 200 {file} file "Exported report"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/commissions/export [get]
func (c *ReportController) ExportCommissionReport(ctx *gin.Context) {
	var filter dto.CommissionReportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	format := ctx.DefaultQuery("format", services.FormatCSV)
	contentType, ok := exportContentTypes[format]
	if !ok {
		middleware.HandleAPIError(ctx, servicesBadFormat(format))
		return
	}

	var buf bytes.Buffer
	if err := c.reportService.ExportCommissionReport(ctx, &buf, format, middleware.GetAgencyID(ctx), filter); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fileName := fmt.Sprintf("commissions-%s.%s", time.Now().Format("2006-01-02"), format)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, contentType, buf.Bytes())
}
