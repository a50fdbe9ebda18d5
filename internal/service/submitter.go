package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

// ErrSubmissionFailed wraps any backend failure while storing a batch
var ErrSubmissionFailed = errors.New("bulk submission failed")

// Submitter hands a generated batch to the backend collection endpoints.
// A batch is stored completely or not at all.
type Submitter interface {
	SubmitSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error)
	SubmitSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error)
}

// BulkWriter is the write side of the repository
type BulkWriter interface {
	CreateSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error)
	CreateSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error)
}

// DirectSubmitter writes batches through the repository in the request
type DirectSubmitter struct {
	writer BulkWriter
}

// NewDirectSubmitter creates a new DirectSubmitter
func NewDirectSubmitter(writer BulkWriter) *DirectSubmitter {
	return &DirectSubmitter{writer: writer}
}

func (d *DirectSubmitter) SubmitSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error) {
	created, err := d.writer.CreateSeats(ctx, flightID, seats)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	return created, nil
}

func (d *DirectSubmitter) SubmitSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error) {
	created, err := d.writer.CreateSchedules(ctx, flightID, schedules)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	return created, nil
}

// TemporalSubmitter runs each batch as a workflow on the worker and waits
// for its result. Retries and timeouts are owned by the workflow.
type TemporalSubmitter struct {
	client client.Client
	log    logger.Logger
}

// NewTemporalSubmitter creates a new TemporalSubmitter
func NewTemporalSubmitter(c client.Client, log logger.Logger) *TemporalSubmitter {
	return &TemporalSubmitter{client: c, log: log}
}

func (t *TemporalSubmitter) SubmitSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error) {
	input := models.BulkSeatsInput{FlightID: flightID.String(), Seats: seats}
	workflowID := fmt.Sprintf("bulk-seats-%s-%s", flightID, uuid.NewString())
	return t.execute(ctx, workflowID, models.WorkflowBulkCreateSeats, input)
}

func (t *TemporalSubmitter) SubmitSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error) {
	input := models.BulkSchedulesInput{FlightID: flightID.String(), Schedules: schedules}
	workflowID := fmt.Sprintf("bulk-schedules-%s-%s", flightID, uuid.NewString())
	return t.execute(ctx, workflowID, models.WorkflowBulkCreateSchedules, input)
}

func (t *TemporalSubmitter) execute(ctx context.Context, workflowID, workflow string, input interface{}) (int, error) {
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: models.TaskQueue,
	}

	run, err := t.client.ExecuteWorkflow(ctx, options, workflow, input)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to start workflow: %w", ErrSubmissionFailed, err)
	}
	t.log.Debug("Started bulk workflow", "workflowId", workflowID, "workflow", workflow)

	var result models.BulkResult
	if err := run.Get(ctx, &result); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSubmissionFailed, fromApplicationError(err))
	}
	if !result.Success {
		return 0, fmt.Errorf("%w: %s", ErrSubmissionFailed, result.Error)
	}
	return result.Created, nil
}

// fromApplicationError restores repository errors from the application
// error types raised by the activities.
func fromApplicationError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}

	var sentinel error
	switch appErr.Type() {
	case models.ErrTypeSeatConflict:
		sentinel = database.ErrSeatConflict
	case models.ErrTypeScheduleConflict:
		sentinel = database.ErrScheduleConflict
	case models.ErrTypeFlightNotFound:
		sentinel = database.ErrNotFound
	case models.ErrTypeInvalidReference, models.ErrTypeInvalidInput:
		sentinel = database.ErrInvalidReference
	default:
		return err
	}
	return fmt.Errorf("%w: %s", sentinel, appErr.Error())
}
