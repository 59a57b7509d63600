package dto

// CreateScheduleRequest represents a new bus schedule entry
type CreateScheduleRequest struct {
	Time          string `json:"time" binding:"required"`
	StartingPoint string `json:"startingPoint" binding:"required"`
	Route         string `json:"route" binding:"required"`
	EndPoint      string `json:"endPoint" binding:"required"`
	Direction     string `json:"direction" binding:"required,oneof=CAMPUS_TO_CITY CITY_TO_CAMPUS"`
	Gender        string `json:"gender,omitempty" binding:"omitempty,oneof=male female"`
	BusType       string `json:"busType,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
	Description   string `json:"description,omitempty"`
	ScheduleType  string `json:"scheduleType" binding:"required,oneof=Regular Friday"`
}

// UpdateScheduleRequest carries updated schedule fields; same shape as create
type UpdateScheduleRequest = CreateScheduleRequest

// ScheduleListQuery holds the listing filters parsed from query parameters
type ScheduleListQuery struct {
	Query     string `form:"q"`
	Category  string `form:"category,default=all" binding:"omitempty,oneof=all regular friday"`
	Direction string `form:"direction" binding:"omitempty,oneof=CAMPUS_TO_CITY CITY_TO_CAMPUS"`
}
