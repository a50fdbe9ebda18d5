package workflows

import (
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// InsertTimeout bounds a single bulk insert attempt
	InsertTimeout = 30 * time.Second
	// MaxInsertAttempts includes the first attempt
	MaxInsertAttempts = 3
)

func withInsertOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: InsertTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    MaxInsertAttempts,
			NonRetryableErrorTypes: []string{
				models.ErrTypeInvalidInput,
				models.ErrTypeFlightNotFound,
				models.ErrTypeSeatConflict,
				models.ErrTypeScheduleConflict,
				models.ErrTypeInvalidReference,
			},
		},
	})
}

// BulkCreateSeatsWorkflow stores a generated seat batch. The batch is
// written in one activity so it lands completely or not at all.
func BulkCreateSeatsWorkflow(ctx workflow.Context, input models.BulkSeatsInput) (*models.BulkResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Bulk seat workflow started", "flightID", input.FlightID, "count", len(input.Seats))

	var result models.BulkResult
	err := workflow.ExecuteActivity(withInsertOptions(ctx), models.ActivityInsertSeats, input).Get(ctx, &result)
	if err != nil {
		logger.Error("Bulk seat insert failed", "flightID", input.FlightID, "error", err)
		return nil, err
	}

	logger.Info("Bulk seat workflow completed", "flightID", input.FlightID, "created", result.Created)
	return &result, nil
}

// BulkCreateSchedulesWorkflow stores a schedule batch in one activity
func BulkCreateSchedulesWorkflow(ctx workflow.Context, input models.BulkSchedulesInput) (*models.BulkResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Bulk schedule workflow started", "flightID", input.FlightID, "count", len(input.Schedules))

	var result models.BulkResult
	err := workflow.ExecuteActivity(withInsertOptions(ctx), models.ActivityInsertSchedules, input).Get(ctx, &result)
	if err != nil {
		logger.Error("Bulk schedule insert failed", "flightID", input.FlightID, "error", err)
		return nil, err
	}

	logger.Info("Bulk schedule workflow completed", "flightID", input.FlightID, "created", result.Created)
	return &result, nil
}
