package models

import "time"

// Note is a free-text remark on a student, written by agency staff.
type Note struct {
	ID        int64     `json:"id"`
	AgencyID  int64     `json:"agencyId"`
	StudentID int64     `json:"studentId"`
	AuthorID  int64     `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`

	AuthorName string `json:"authorName,omitempty"`
}
