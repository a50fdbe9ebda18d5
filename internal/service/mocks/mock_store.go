package mocks

import (
	"context"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of service.Store and service.BulkWriter
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetAllFlights(ctx context.Context) ([]database.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Flight), args.Error(1)
}

func (m *MockStore) GetFlightByID(ctx context.Context, id uuid.UUID) (*database.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Flight), args.Error(1)
}

func (m *MockStore) GetSeatClasses(ctx context.Context, flightID uuid.UUID) ([]database.SeatClass, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.SeatClass), args.Error(1)
}

func (m *MockStore) GetFlightSeats(ctx context.Context, flightID uuid.UUID, filter database.SeatFilter) ([]database.Seat, error) {
	args := m.Called(ctx, flightID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Seat), args.Error(1)
}

func (m *MockStore) GetFlightSchedules(ctx context.Context, flightID uuid.UUID) ([]database.Schedule, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Schedule), args.Error(1)
}

func (m *MockStore) CreateSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error) {
	args := m.Called(ctx, flightID, seats)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) CreateSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error) {
	args := m.Called(ctx, flightID, schedules)
	return args.Int(0), args.Error(1)
}

// MockSubmitter is a mock implementation of service.Submitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) SubmitSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error) {
	args := m.Called(ctx, flightID, seats)
	return args.Int(0), args.Error(1)
}

func (m *MockSubmitter) SubmitSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error) {
	args := m.Called(ctx, flightID, schedules)
	return args.Int(0), args.Error(1)
}

// MockNotifier is a mock implementation of service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BroadcastSeatsGenerated(flightID string, count int) {
	m.Called(flightID, count)
}

func (m *MockNotifier) BroadcastSchedulesGenerated(flightID string, count int) {
	m.Called(flightID, count)
}
