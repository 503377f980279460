package models

import "time"

// Agency is a tenant. Every other row in the system is scoped to one agency.
type Agency struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Country   string       `json:"country"`
	Status    AgencyStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
