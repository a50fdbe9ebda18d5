package database

import (
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
)

// Flight represents a flight in the database
type Flight struct {
	ID             uuid.UUID `json:"id"`
	FlightNumber   string    `json:"flightNumber"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	PricePerSeat   float64   `json:"pricePerSeat"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SeatClass is a cabin tier offered on a flight
type SeatClass struct {
	ID        uuid.UUID        `json:"id"`
	FlightID  uuid.UUID        `json:"flightId"`
	ClassType models.ClassType `json:"classType"`
	Price     float64          `json:"price"`
	Amenities []string         `json:"amenities"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Seat represents a seat in the database
type Seat struct {
	ID           uuid.UUID         `json:"id"`
	FlightID     uuid.UUID         `json:"flightId"`
	ClassID      uuid.UUID         `json:"classId"`
	SeatNumber   string            `json:"seatNumber"`
	RowNumber    int               `json:"row"`
	ColumnLetter string            `json:"column"`
	Status       models.SeatStatus `json:"status"`
	Price        float64           `json:"price"`
	HeldUntil    *time.Time        `json:"heldUntil,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// SeatFilter narrows a seat listing; zero values match everything
type SeatFilter struct {
	ClassID *uuid.UUID
	Status  models.SeatStatus
}

// Schedule is a persisted flight occurrence. Dates are YYYY-MM-DD and
// times HH:MM, the same shape as the generated records.
type Schedule struct {
	ID              uuid.UUID             `json:"id"`
	FlightID        uuid.UUID             `json:"flightId"`
	DepartureDate   string                `json:"departureDate"`
	DepartureTime   string                `json:"departureTime"`
	ArrivalDate     string                `json:"arrivalDate"`
	ArrivalTime     string                `json:"arrivalTime"`
	Status          models.ScheduleStatus `json:"status"`
	GateNumber      string                `json:"gateNumber"`
	ActualDeparture *time.Time            `json:"actualDeparture"`
	ActualArrival   *time.Time            `json:"actualArrival"`
	DelayReason     *string               `json:"delayReason"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}
