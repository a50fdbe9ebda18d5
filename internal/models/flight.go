package models

// ClassType is the cabin tier a seat class belongs to
type ClassType string

const (
	ClassTypeEconomy  ClassType = "Economy"
	ClassTypeBusiness ClassType = "Business"
	ClassTypeFirst    ClassType = "First"
)

// SeatStatus represents the booking state of a seat
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusHeld      SeatStatus = "held"
	SeatStatusBooked    SeatStatus = "booked"
	SeatStatusBlocked   SeatStatus = "blocked"
)

// SeatClassConfig describes how to lay out the seats of one class on a flight
type SeatClassConfig struct {
	ClassID     string    `json:"classId" validate:"required"`
	ClassType   ClassType `json:"classType,omitempty" validate:"omitempty,oneof=Economy Business First"`
	RowStart    int       `json:"rowStart" validate:"min=1,max=999"`
	RowEnd      int       `json:"rowEnd" validate:"min=1,max=999,gtefield=RowStart"`
	SeatLetters []string  `json:"seatLetters" validate:"min=1,dive,required,max=4"`
	Price       float64   `json:"price" validate:"gte=0"`
	Enabled     bool      `json:"enabled"`
}

// SeatRecord is one generated seat ready for bulk submission
type SeatRecord struct {
	FlightID   string     `json:"flightId"`
	ClassID    string     `json:"classId" validate:"required"`
	SeatNumber string     `json:"seatNumber" validate:"required,max=10"`
	Row        int        `json:"row" validate:"min=1"`
	Column     string     `json:"column" validate:"required,max=4"`
	Price      float64    `json:"price" validate:"gte=0"`
	Status     SeatStatus `json:"status" validate:"omitempty,oneof=available held booked blocked"`
}

// SeatConfigsRequest wraps the seat configurations of a preview or generate call
type SeatConfigsRequest struct {
	Configs []SeatClassConfig `json:"configs"`
}

// BulkSeatsRequest is the body of the bulk seat collection endpoint
type BulkSeatsRequest struct {
	Seats []SeatRecord `json:"seats"`
}
