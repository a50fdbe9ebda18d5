package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/config"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/handlers"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/metrics"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/router"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/service"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.temporal.io/sdk/client"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database", "error", err)
	}
	log.Info("Connected to database")

	repo := database.NewRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Realtime updates
	hub := websocket.NewHub(log.With("component", "websocket"))
	go hub.Run(ctx)

	// Submission backend
	var submitter service.Submitter
	switch cfg.SubmitMode {
	case config.SubmitModeTemporal:
		temporalClient, err := client.Dial(client.Options{
			HostPort: cfg.TemporalHost,
			Logger:   log.With("component", "temporal"),
		})
		if err != nil {
			log.Fatal("Failed to create Temporal client", "error", err)
		}
		defer temporalClient.Close()
		log.Info("Connected to Temporal server", "host", cfg.TemporalHost)
		submitter = service.NewTemporalSubmitter(temporalClient, log)
	default:
		submitter = service.NewDirectSubmitter(repo)
	}

	// Initialize services
	generationService := service.NewGenerationService(repo, submitter, hub, m, log, service.Limits{
		MaxScheduleDays: cfg.MaxScheduleDays,
		MaxBlockTime:    cfg.MaxBlockTime,
	})

	// Initialize handlers
	h := handlers.NewHandler(generationService, log)

	r := router.SetupRouter(h, router.Options{
		JWTSecret: cfg.JWTSecret,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		WebSocket: hub.HandleWebSocket,
		Logger:    log,
	})
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, API authentication disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("API server starting", "port", cfg.Port, "submitMode", cfg.SubmitMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server stopped")
}
