package dto

// CreateStudentRequest represents the request to create a student
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,min=2,max=100"`
	LastName       string `json:"lastName" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	PassportNumber string `json:"passportNumber" binding:"required,min=6,max=12"`
	Nationality    string `json:"nationality" binding:"required,min=2,max=100"`
	DateOfBirth    string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	BranchID       *int64 `json:"branchId" binding:"omitempty,min=1"`
}

// UpdateStudentRequest represents the request to update a student
type UpdateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,min=2,max=100"`
	LastName       string `json:"lastName" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	PassportNumber string `json:"passportNumber" binding:"required,min=6,max=12"`
	Nationality    string `json:"nationality" binding:"required,min=2,max=100"`
	DateOfBirth    string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	BranchID       *int64 `json:"branchId" binding:"omitempty,min=1"`
	Status         string `json:"status" binding:"required,oneof=PROSPECT ENROLLED COMPLETED WITHDRAWN"`
}

// StudentFilter carries the list endpoint's query parameters
type StudentFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=PROSPECT ENROLLED COMPLETED WITHDRAWN"`
	BranchID int64  `form:"branchId" binding:"omitempty,min=1"`
	Search   string `form:"search" binding:"omitempty,max=100"`
}
