package models

import "time"

// Branch is an agency office.
type Branch struct {
	ID        int64     `json:"id"`
	AgencyID  int64     `json:"agencyId"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
