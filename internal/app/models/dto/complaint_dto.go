package dto

import "time"

// CreateComplaintRequest represents a complaint submission
type CreateComplaintRequest struct {
	Title        string     `json:"title" binding:"required,min=5,max=200"`
	Description  string     `json:"description" binding:"required,min=10,max=5000"`
	Category     string     `json:"category" binding:"required,oneof=bus_service driver_behavior schedule safety other"`
	Priority     string     `json:"priority" binding:"required,oneof=low medium high"`
	BusRoute     string     `json:"busRoute,omitempty"`
	IncidentTime *time.Time `json:"incidentTime,omitempty"`
}

// UpdateComplaintStatusRequest moves a complaint through triage
type UpdateComplaintStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=open in_progress resolved dismissed"`
	AdminResponse string `json:"adminResponse,omitempty" binding:"omitempty,max=5000"`
}

// ComplaintListQuery holds the listing filters parsed from query parameters
type ComplaintListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress resolved dismissed"`
	Category string `form:"category" binding:"omitempty,oneof=bus_service driver_behavior schedule safety other"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
}
