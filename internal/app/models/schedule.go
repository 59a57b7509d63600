package models

import "time"

// BusSchedule represents a single bus departure based on the 'bus_schedules' table
type BusSchedule struct {
	ID            int64        `json:"id" db:"id"`
	Time          string       `json:"time" db:"departure_time" example:"07:00 AM"` // Departure time as displayed
	StartingPoint string       `json:"startingPoint" db:"starting_point" example:"Dhanmondi"`
	Route         string       `json:"route" db:"route" example:"Dhanmondi - Sobhanbagh - Campus"`
	EndPoint      string       `json:"endPoint" db:"end_point" example:"Main Campus"`
	Direction     Direction    `json:"direction" db:"direction" example:"CITY_TO_CAMPUS"`
	Gender        *string      `json:"gender,omitempty" db:"gender" example:"female"` // Set when a bus is reserved for one gender
	BusType       *string      `json:"busType,omitempty" db:"bus_type" example:"AC"`
	Remarks       *string      `json:"remarks,omitempty" db:"remarks"`
	Description   *string      `json:"description,omitempty" db:"description"`
	ScheduleType  ScheduleType `json:"scheduleType" db:"schedule_type" example:"Regular"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}
