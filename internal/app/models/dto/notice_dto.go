package dto

// CreateNoticeRequest represents a new notice
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Content string `json:"content" binding:"required,min=3,max=10000"`
}

// UpdateNoticeRequest carries updated notice fields; same shape as create
type UpdateNoticeRequest = CreateNoticeRequest
