package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// AuthProvider identifies how an account was created
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Direction defines which way a bus runs
type Direction string

const (
	DirectionCampusToCity Direction = "CAMPUS_TO_CITY"
	DirectionCityToCampus Direction = "CITY_TO_CAMPUS"
)

// ScheduleType distinguishes the regular weekday timetable from the Friday one
type ScheduleType string

const (
	ScheduleTypeRegular ScheduleType = "Regular"
	ScheduleTypeFriday  ScheduleType = "Friday"
)

// ScheduleCategory is the three-way listing filter exposed by the API
type ScheduleCategory string

const (
	CategoryAll     ScheduleCategory = "all"
	CategoryRegular ScheduleCategory = "regular"
	CategoryFriday  ScheduleCategory = "friday"
)

// ComplaintCategory classifies a complaint
type ComplaintCategory string

const (
	ComplaintBusService     ComplaintCategory = "bus_service"
	ComplaintDriverBehavior ComplaintCategory = "driver_behavior"
	ComplaintSchedule       ComplaintCategory = "schedule"
	ComplaintSafety         ComplaintCategory = "safety"
	ComplaintOther          ComplaintCategory = "other"
)

// ComplaintPriority is the submitter-assigned urgency
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// ComplaintStatus is the triage state of a complaint
type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "open"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusDismissed  ComplaintStatus = "dismissed"
)

// ValidComplaintCategory reports whether c is a known category.
func ValidComplaintCategory(c ComplaintCategory) bool {
	switch c {
	case ComplaintBusService, ComplaintDriverBehavior, ComplaintSchedule, ComplaintSafety, ComplaintOther:
		return true
	}
	return false
}

// ValidComplaintPriority reports whether p is a known priority.
func ValidComplaintPriority(p ComplaintPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidComplaintStatus reports whether s is a known status.
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusDismissed:
		return true
	}
	return false
}
