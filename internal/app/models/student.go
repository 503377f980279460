package models

import "time"

// Student is a person the agency is placing. PassportNumber is unique within
// an agency but may repeat across agencies.
type Student struct {
	ID             int64         `json:"id"`
	AgencyID       int64         `json:"agencyId"`
	BranchID       *int64        `json:"branchId,omitempty"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	PassportNumber string        `json:"passportNumber"`
	Nationality    string        `json:"nationality"`
	DateOfBirth    *time.Time    `json:"dateOfBirth,omitempty"`
	Status         StudentStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	// Joined data, populated by services when listing
	Branch *Branch `json:"branch,omitempty"`
}

// FullName renders the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
