package models

import "time"

// Enrollment links a student to a college program.
type Enrollment struct {
	ID          int64            `json:"id"`
	AgencyID    int64            `json:"agencyId"`
	StudentID   int64            `json:"studentId"`
	CollegeID   int64            `json:"collegeId"`
	ProgramName string           `json:"programName"`
	IntakeDate  time.Time        `json:"intakeDate"`
	Status      EnrollmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	// Joined data, populated by services
	Student *Student `json:"student,omitempty"`
	College *College `json:"college,omitempty"`
}
