package models

// UserRole defines the user role within an agency
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// AgencyStatus defines the lifecycle state of a tenant
type AgencyStatus string

const (
	AgencyActive    AgencyStatus = "ACTIVE"
	AgencySuspended AgencyStatus = "SUSPENDED"
)

// StudentStatus tracks the student's placement lifecycle
type StudentStatus string

const (
	StudentProspect  StudentStatus = "PROSPECT"
	StudentEnrolled  StudentStatus = "ENROLLED"
	StudentCompleted StudentStatus = "COMPLETED"
	StudentWithdrawn StudentStatus = "WITHDRAWN"
)

// EnrollmentStatus tracks a student's placement at a college
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentConfirmed EnrollmentStatus = "CONFIRMED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// PlanStatus tracks a payment plan lifecycle
type PlanStatus string

const (
	PlanActive    PlanStatus = "ACTIVE"
	PlanCompleted PlanStatus = "COMPLETED"
	PlanCancelled PlanStatus = "CANCELLED"
)

// InstallmentStatus tracks a single scheduled payment
type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "PENDING"
	InstallmentPaid      InstallmentStatus = "PAID"
	InstallmentOverdue   InstallmentStatus = "OVERDUE"
	InstallmentCancelled InstallmentStatus = "CANCELLED"
)

// PaymentFrequency is the spacing between scheduled installments
type PaymentFrequency string

const (
	FrequencyMonthly   PaymentFrequency = "MONTHLY"
	FrequencyQuarterly PaymentFrequency = "QUARTERLY"
)

// Months returns the calendar step for the frequency.
func (f PaymentFrequency) Months() int {
	if f == FrequencyQuarterly {
		return 3
	}
	return 1
}
