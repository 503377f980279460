package dto

// CreatePaymentPlanRequest creates a plan and its installment schedule in one
// operation. CommissionRateBps falls back to the college default when omitted.
type CreatePaymentPlanRequest struct {
	EnrollmentID      int64  `json:"enrollmentId" binding:"required,min=1"`
	TotalAmountCents  int64  `json:"totalAmountCents" binding:"required,min=1"`
	Currency          string `json:"currency" binding:"required,len=3"`
	CommissionRateBps *int32 `json:"commissionRateBps" binding:"omitempty,min=0,max=10000"`
	InstallmentCount  int    `json:"installmentCount" binding:"required,min=1,max=60"`
	FirstDueDate      string `json:"firstDueDate" binding:"required,datetime=2006-01-02"`
	Frequency         string `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY"`
}

// PayInstallmentRequest records a payment against an installment. When
// PaidAmountCents is omitted the scheduled amount is assumed.
type PayInstallmentRequest struct {
	PaidAmountCents *int64 `json:"paidAmountCents" binding:"omitempty,min=1"`
	PaidAt          string `json:"paidAt" binding:"omitempty,datetime=2006-01-02"`
}
