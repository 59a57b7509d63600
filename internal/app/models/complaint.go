package models

import "time"

// Complaint represents a user complaint based on the 'complaints' table
type Complaint struct {
	ID            int64             `json:"id" db:"id"`
	UserID        int64             `json:"userId" db:"user_id"`
	Title         string            `json:"title" db:"title"`
	Description   string            `json:"description" db:"description"`
	Category      ComplaintCategory `json:"category" db:"category" example:"bus_service"`
	Priority      ComplaintPriority `json:"priority" db:"priority" example:"medium"`
	Status        ComplaintStatus   `json:"status" db:"status" example:"open"`
	BusRoute      *string           `json:"busRoute,omitempty" db:"bus_route"`         // Route the complaint refers to (nullable)
	IncidentTime  *time.Time        `json:"incidentTime,omitempty" db:"incident_time"` // When the incident happened (nullable)
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	ResolvedAt    *time.Time        `json:"resolvedAt,omitempty" db:"resolved_at"`
	AdminResponse *string           `json:"adminResponse,omitempty" db:"admin_response"`
	User          *User             `json:"user,omitempty"` // Relation, no db tag
}

// Live reports whether the complaint is still actionable.
func (c *Complaint) Live() bool {
	return c.Status == StatusOpen || c.Status == StatusInProgress
}
