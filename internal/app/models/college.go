package models

import "time"

// College is an education provider the agency places students with.
// DefaultCommissionRateBps is the commission rate, in basis points, applied
// to new payment plans unless overridden per plan.
type College struct {
	ID                       int64     `json:"id"`
	AgencyID                 int64     `json:"agencyId"`
	Name                     string    `json:"name"`
	Country                  string    `json:"country"`
	City                     string    `json:"city"`
	ContactEmail             string    `json:"contactEmail"`
	DefaultCommissionRateBps int32     `json:"defaultCommissionRateBps"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}
