package dto

// CreateEnrollmentRequest represents the request to enroll a student at a college
type CreateEnrollmentRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,min=1"`
	CollegeID   int64  `json:"collegeId" binding:"required,min=1"`
	ProgramName string `json:"programName" binding:"required,min=2,max=200"`
	IntakeDate  string `json:"intakeDate" binding:"required,datetime=2006-01-02"`
}

// UpdateEnrollmentRequest represents the request to update an enrollment
type UpdateEnrollmentRequest struct {
	ProgramName string `json:"programName" binding:"required,min=2,max=200"`
	IntakeDate  string `json:"intakeDate" binding:"required,datetime=2006-01-02"`
	Status      string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}
