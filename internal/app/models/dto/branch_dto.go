package dto

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	City    string `json:"city" binding:"omitempty,max=100"`
	Country string `json:"country" binding:"required,min=2,max=100"`
}

// UpdateBranchRequest represents the request to update a branch
type UpdateBranchRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	City    string `json:"city" binding:"omitempty,max=100"`
	Country string `json:"country" binding:"required,min=2,max=100"`
}
