package dto

// CreateNoteRequest adds a note to a student
type CreateNoteRequest struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}
