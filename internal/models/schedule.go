package models

import "time"

// Frequency is the recurrence rule of a schedule configuration
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ScheduleStatus represents the operational state of a single flight occurrence
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusBoarding  ScheduleStatus = "boarding"
	ScheduleStatusDelayed   ScheduleStatus = "delayed"
	ScheduleStatusDeparted  ScheduleStatus = "departed"
	ScheduleStatusArrived   ScheduleStatus = "arrived"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// ScheduleRecurrenceConfig is the input of recurring schedule generation.
// Dates use YYYY-MM-DD and times use HH:MM.
type ScheduleRecurrenceConfig struct {
	StartDate     string         `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string         `json:"endDate" validate:"required,datetime=2006-01-02"`
	DepartureTime string         `json:"departureTime" validate:"required,datetime=15:04"`
	ArrivalTime   string         `json:"arrivalTime" validate:"required,datetime=15:04"`
	Frequency     Frequency      `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	DaysOfWeek    []int          `json:"daysOfWeek,omitempty" validate:"dive,min=0,max=6"`
	GateNumber    string         `json:"gateNumber,omitempty" validate:"max=16"`
	Status        ScheduleStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled boarding delayed departed arrived cancelled"`
}

// ScheduleRecord is one generated flight occurrence ready for bulk submission
type ScheduleRecord struct {
	FlightID        string         `json:"flightId,omitempty"`
	DepartureDate   string         `json:"departureDate" validate:"required,datetime=2006-01-02"`
	DepartureTime   string         `json:"departureTime" validate:"required,datetime=15:04"`
	ArrivalDate     string         `json:"arrivalDate" validate:"required,datetime=2006-01-02"`
	ArrivalTime     string         `json:"arrivalTime" validate:"required,datetime=15:04"`
	Status          ScheduleStatus `json:"status" validate:"omitempty,oneof=scheduled boarding delayed departed arrived cancelled"`
	GateNumber      string         `json:"gateNumber" validate:"max=16"`
	ActualDeparture *time.Time     `json:"actualDeparture"`
	ActualArrival   *time.Time     `json:"actualArrival"`
	DelayReason     *string        `json:"delayReason"`
}

// BulkSchedulesRequest is the body of the bulk schedule collection endpoint
type BulkSchedulesRequest struct {
	Schedules []ScheduleRecord `json:"schedules"`
}
