package main

import (
	"context"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/activities"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/config"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/workflows"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	// Connect to database
	log.Info("Connecting to database...")
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database", "error", err)
	}
	log.Info("Connected to database")

	// Create repository
	repo := database.NewRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Connect to Temporal
	log.Info("Connecting to Temporal", "host", cfg.TemporalHost)
	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHost,
		Logger:   log.With("component", "temporal"),
	})
	if err != nil {
		log.Fatal("Failed to connect to Temporal", "error", err)
	}
	defer c.Close()
	log.Info("Connected to Temporal")

	// Create worker
	w := worker.New(c, models.TaskQueue, worker.Options{})

	// Register workflows
	w.RegisterWorkflowWithOptions(workflows.BulkCreateSeatsWorkflow, workflow.RegisterOptions{Name: models.WorkflowBulkCreateSeats})
	w.RegisterWorkflowWithOptions(workflows.BulkCreateSchedulesWorkflow, workflow.RegisterOptions{Name: models.WorkflowBulkCreateSchedules})

	// Create and register activities
	acts := activities.NewActivities(repo)
	w.RegisterActivityWithOptions(acts.InsertSeats, activity.RegisterOptions{Name: models.ActivityInsertSeats})
	w.RegisterActivityWithOptions(acts.InsertSchedules, activity.RegisterOptions{Name: models.ActivityInsertSchedules})

	// Start worker
	log.Info("Starting Temporal worker", "taskQueue", models.TaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatal("Worker failed", "error", err)
	}
}
