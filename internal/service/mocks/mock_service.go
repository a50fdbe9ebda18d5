package mocks

import (
	"context"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/generator"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockGenerationService is a mock implementation of GenerationService
type MockGenerationService struct {
	mock.Mock
}

var _ service.GenerationService = (*MockGenerationService)(nil)

func (m *MockGenerationService) GetFlights(ctx context.Context) ([]database.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Flight), args.Error(1)
}

func (m *MockGenerationService) GetFlight(ctx context.Context, flightID string) (*database.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Flight), args.Error(1)
}

func (m *MockGenerationService) GetFlightSeats(ctx context.Context, flightID string, classID string, status string) ([]database.Seat, error) {
	args := m.Called(ctx, flightID, classID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Seat), args.Error(1)
}

func (m *MockGenerationService) GetSeatClasses(ctx context.Context, flightID string) ([]database.SeatClass, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.SeatClass), args.Error(1)
}

func (m *MockGenerationService) GetFlightSchedules(ctx context.Context, flightID string) ([]database.Schedule, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Schedule), args.Error(1)
}

func (m *MockGenerationService) SuggestSeatConfigs(ctx context.Context, flightID string) ([]models.SeatClassConfig, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SeatClassConfig), args.Error(1)
}

func (m *MockGenerationService) PreviewSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*generator.SeatPreview, error) {
	args := m.Called(ctx, flightID, configs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.SeatPreview), args.Error(1)
}

func (m *MockGenerationService) GenerateSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*service.GenerationResult, error) {
	args := m.Called(ctx, flightID, configs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerationResult), args.Error(1)
}

func (m *MockGenerationService) CreateSeats(ctx context.Context, flightID string, seats []models.SeatRecord) (*service.GenerationResult, error) {
	args := m.Called(ctx, flightID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerationResult), args.Error(1)
}

func (m *MockGenerationService) PreviewSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*service.SchedulePreview, error) {
	args := m.Called(ctx, flightID, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SchedulePreview), args.Error(1)
}

func (m *MockGenerationService) GenerateSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*service.GenerationResult, error) {
	args := m.Called(ctx, flightID, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerationResult), args.Error(1)
}

func (m *MockGenerationService) CreateSchedules(ctx context.Context, flightID string, schedules []models.ScheduleRecord) (*service.GenerationResult, error) {
	args := m.Called(ctx, flightID, schedules)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerationResult), args.Error(1)
}
