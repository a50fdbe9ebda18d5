package models

// TaskQueue is the Temporal task queue shared by the API server and the worker
const TaskQueue = "flight-generation-queue"

// Workflow and activity names
const (
	WorkflowBulkCreateSeats     = "BulkCreateSeatsWorkflow"
	WorkflowBulkCreateSchedules = "BulkCreateSchedulesWorkflow"

	ActivityInsertSeats     = "InsertSeats"
	ActivityInsertSchedules = "InsertSchedules"
)

// BulkSeatsInput is the input for the bulk seat workflow and activity
type BulkSeatsInput struct {
	FlightID string       `json:"flightId"`
	Seats    []SeatRecord `json:"seats"`
}

// BulkSchedulesInput is the input for the bulk schedule workflow and activity
type BulkSchedulesInput struct {
	FlightID  string           `json:"flightId"`
	Schedules []ScheduleRecord `json:"schedules"`
}

// BulkResult is the outcome of a bulk submission
type BulkResult struct {
	Success bool   `json:"success"`
	Created int    `json:"created"`
	Error   string `json:"error,omitempty"`
}

// Application error types raised by the bulk insert activities. The API
// server maps them back to its own conflict and validation errors.
const (
	ErrTypeInvalidInput     = "InvalidInput"
	ErrTypeFlightNotFound   = "FlightNotFound"
	ErrTypeSeatConflict     = "SeatConflict"
	ErrTypeScheduleConflict = "ScheduleConflict"
	ErrTypeInvalidReference = "InvalidReference"
)
