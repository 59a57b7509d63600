package dto

// CreateFeedbackRequest represents a feedback submission
type CreateFeedbackRequest struct {
	Message string `json:"message" binding:"required,min=5,max=2000"`
}
