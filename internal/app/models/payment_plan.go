package models

import "time"

// PaymentPlan is a student's total fee obligation for an enrollment, split
// into scheduled installments. Amounts are integer cents; the commission
// rate is in basis points so arithmetic stays exact.
type PaymentPlan struct {
	ID                int64            `json:"id"`
	AgencyID          int64            `json:"agencyId"`
	EnrollmentID      int64            `json:"enrollmentId"`
	TotalAmountCents  int64            `json:"totalAmountCents"`
	Currency          string           `json:"currency"`
	CommissionRateBps int32            `json:"commissionRateBps"`
	InstallmentCount  int              `json:"installmentCount"`
	FirstDueDate      time.Time        `json:"firstDueDate"`
	Frequency         PaymentFrequency `json:"frequency"`
	Status            PlanStatus       `json:"status"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`

	// Joined data, populated by services
	Enrollment   *Enrollment    `json:"enrollment,omitempty"`
	Installments []*Installment `json:"installments,omitempty"`
}

// Installment is one scheduled payment within a plan.
type Installment struct {
	ID              int64             `json:"id"`
	AgencyID        int64             `json:"agencyId"`
	PaymentPlanID   int64             `json:"paymentPlanId"`
	Sequence        int               `json:"sequence"`
	AmountCents     int64             `json:"amountCents"`
	DueDate         time.Time         `json:"dueDate"`
	Status          InstallmentStatus `json:"status"`
	PaidAt          *time.Time        `json:"paidAt,omitempty"`
	PaidAmountCents *int64            `json:"paidAmountCents,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
