package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/middleware"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// PaymentPlanController handles payment plan and installment operations
type PaymentPlanController struct {
	planService *services.PaymentPlanService
}

// NewPaymentPlanController creates a new PaymentPlanController
func NewPaymentPlanController(planService *services.PaymentPlanService) *PaymentPlanController {
	return &PaymentPlanController{planService: planService}
}

// CreatePaymentPlan creates a plan with its installment schedule
// @Summary Create a payment plan
// @Description Creates a payment plan for an enrollment and generates its installment schedule. The commission rate defaults to the college's rate when omitted.
// @Tags payment-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentPlanRequest true "Plan data"
// @Success 201 {object} dto.APIResponse{data=models.PaymentPlan} "Plan created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already has a plan"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payment-plans [post]
func (c *PaymentPlanController) CreatePaymentPlan(ctx *gin.Context) {
	var req dto.CreatePaymentPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	plan, err := c.planService.Create(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(plan))
}

// GetPaymentPlanByID retrieves a plan with its installments
// @Summary Get payment plan by ID
// @Tags payment-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment plan ID"
// @Success 200 {object} dto.APIResponse{data=models.PaymentPlan} "Plan"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payment-plans/{id} [get]
func (c *PaymentPlanController) GetPaymentPlanByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	plan, err := c.planService.GetByID(ctx, middleware.GetAgencyID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// GetEnrollmentPaymentPlans lists the plans of an enrollment
// @Summary List an enrollment's payment plans
// @Tags payment-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.PaymentPlan} "Plans"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/payment-plans [get]
func (c *PaymentPlanController) GetEnrollmentPaymentPlans(ctx *gin.Context) {
	enrollmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	plans, err := c.planService.GetByEnrollmentID(ctx, middleware.GetAgencyID(ctx), enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plans))
}

// CancelPaymentPlan cancels an active plan
// @Summary Cancel a payment plan
// @Description Cancels an active plan and its unpaid installments. Paid installments keep their record.
// @Tags payment-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment plan ID"
// @Success 200 {object} dto.APIResponse{data=models.PaymentPlan} "Plan cancelled"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 409 {object} dto.ErrorResponse "Plan is not active"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payment-plans/{id}/cancel [post]
func (c *PaymentPlanController) CancelPaymentPlan(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	plan, err := c.planService.Cancel(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// PayInstallment records a payment against an installment
// @Summary Pay an installment
// @Description Marks an installment as paid. The scheduled amount is assumed when paidAmountCents is omitted. Settling the last open installment completes the plan.
// @Tags payment-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Installment ID"
// @Param request body dto.PayInstallmentRequest true "Payment data"
// @Success 200 {object} dto.APIResponse{data=models.Installment} "Installment paid"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Installment not found"
// @Failure 409 {object} dto.ErrorResponse "Installment already paid or cancelled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /installments/{id}/pay [post]
func (c *PaymentPlanController) PayInstallment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Both fields are optional, so an empty body is as valid as {}.
	var req dto.PayInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleBindingError(ctx, err)
		return
	}

	installment, err := c.planService.PayInstallment(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(installment))
}

// SweepOverdue flips due pending installments to OVERDUE
// @Summary Sweep overdue installments
// @Description Marks all pending installments past their due date as OVERDUE and returns the count. Admin only.
// @Tags payment-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Sweep result"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /installments/sweep-overdue [post]
func (c *PaymentPlanController) SweepOverdue(ctx *gin.Context) {
	count, err := c.planService.SweepOverdue(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"markedOverdue": count}))
}

// SendReminders mails students whose installments fall due soon
// @Summary Send due installment reminders
// @Description Emails a reminder for every installment due within the window and returns how many were sent. Admin only.
// @Tags payment-plans
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} dto.APIResponse "Reminder result"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /installments/send-reminders [post]
func (c *PaymentPlanController) SendReminders(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("days must be a positive integer"))
		return
	}

	sent, err := c.planService.SendDueReminders(ctx, middleware.GetAgencyID(ctx), time.Duration(days)*24*time.Hour)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"remindersSent": sent}))
}
