package dto

// CreateCollegeRequest represents the request to create a college
type CreateCollegeRequest struct {
	Name                     string `json:"name" binding:"required,min=2,max=100"`
	Country                  string `json:"country" binding:"required,min=2,max=100"`
	City                     string `json:"city" binding:"omitempty,max=100"`
	ContactEmail             string `json:"contactEmail" binding:"omitempty,email"`
	DefaultCommissionRateBps int32  `json:"defaultCommissionRateBps" binding:"min=0,max=10000"`
}

// UpdateCollegeRequest represents the request to update a college
type UpdateCollegeRequest struct {
	Name                     string `json:"name" binding:"required,min=2,max=100"`
	Country                  string `json:"country" binding:"required,min=2,max=100"`
	City                     string `json:"city" binding:"omitempty,max=100"`
	ContactEmail             string `json:"contactEmail" binding:"omitempty,email"`
	DefaultCommissionRateBps int32  `json:"defaultCommissionRateBps" binding:"min=0,max=10000"`
}
