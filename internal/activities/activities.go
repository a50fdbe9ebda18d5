package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/generator"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

// BulkWriter stores complete batches of seats and schedules
type BulkWriter interface {
	CreateSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error)
	CreateSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error)
}

// Activities holds the bulk insert activities and their dependencies
type Activities struct {
	writer BulkWriter
}

// NewActivities creates a new Activities instance
func NewActivities(writer BulkWriter) *Activities {
	return &Activities{writer: writer}
}

// InsertSeats activity - stores a seat batch for one flight
func (a *Activities) InsertSeats(ctx context.Context, input models.BulkSeatsInput) (*models.BulkResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Inserting seats", "flightID", input.FlightID, "count", len(input.Seats))

	flightID, err := uuid.Parse(input.FlightID)
	if err != nil {
		return nil, invalidInput(fmt.Errorf("invalid flight ID %q", input.FlightID))
	}
	if err := generator.ValidateSeatRecords(input.Seats); err != nil {
		return nil, invalidInput(err)
	}

	created, err := a.writer.CreateSeats(ctx, flightID, input.Seats)
	if err != nil {
		logger.Warn("Seat insert failed", "flightID", input.FlightID, "error", err)
		return nil, classify(err)
	}

	logger.Info("Seats inserted", "flightID", input.FlightID, "created", created)
	return &models.BulkResult{Success: true, Created: created}, nil
}

// InsertSchedules activity - stores a schedule batch for one flight
func (a *Activities) InsertSchedules(ctx context.Context, input models.BulkSchedulesInput) (*models.BulkResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Inserting schedules", "flightID", input.FlightID, "count", len(input.Schedules))

	flightID, err := uuid.Parse(input.FlightID)
	if err != nil {
		return nil, invalidInput(fmt.Errorf("invalid flight ID %q", input.FlightID))
	}
	if err := generator.ValidateScheduleRecords(input.Schedules); err != nil {
		return nil, invalidInput(err)
	}

	created, err := a.writer.CreateSchedules(ctx, flightID, input.Schedules)
	if err != nil {
		logger.Warn("Schedule insert failed", "flightID", input.FlightID, "error", err)
		return nil, classify(err)
	}

	logger.Info("Schedules inserted", "flightID", input.FlightID, "created", created)
	return &models.BulkResult{Success: true, Created: created}, nil
}

func invalidInput(err error) error {
	return temporal.NewNonRetryableApplicationError(err.Error(), models.ErrTypeInvalidInput, err)
}

// classify marks errors that a retry cannot fix as non-retryable.
// Anything else is returned unchanged so the retry policy applies.
func classify(err error) error {
	var errType string
	switch {
	case errors.Is(err, database.ErrNotFound):
		errType = models.ErrTypeFlightNotFound
	case errors.Is(err, database.ErrSeatConflict):
		errType = models.ErrTypeSeatConflict
	case errors.Is(err, database.ErrScheduleConflict):
		errType = models.ErrTypeScheduleConflict
	case errors.Is(err, database.ErrInvalidReference):
		errType = models.ErrTypeInvalidReference
	default:
		return err
	}
	return temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
}
