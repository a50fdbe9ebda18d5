package router

import (
	"net/http"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/handlers"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/gorilla/mux"
)

// Options configures the optional parts of the router
type Options struct {
	// JWTSecret enables bearer authentication on /api when set
	JWTSecret string
	// Metrics is served on /metrics when set
	Metrics http.Handler
	// WebSocket serves /api/flights/{flightId}/ws when set
	WebSocket http.HandlerFunc
	Logger    logger.Logger
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	if opts.Logger != nil {
		r.Use(loggingMiddleware(opts.Logger))
	}

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	if opts.JWTSecret != "" {
		api.Use(authMiddleware([]byte(opts.JWTSecret)))
	}

	// Flights
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seat-classes", h.GetSeatClasses).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seat-configs", h.SuggestSeatConfigs).Methods(http.MethodGet, http.MethodOptions)

	// Seats
	api.HandleFunc("/flights/{id}/seats", h.GetFlightSeats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seats", h.CreateSeats).Methods(http.MethodPost)
	api.HandleFunc("/flights/{id}/seats/preview", h.PreviewSeats).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seats/generate", h.GenerateSeats).Methods(http.MethodPost, http.MethodOptions)

	// Schedules
	api.HandleFunc("/flights/{id}/schedules", h.GetFlightSchedules).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/schedules", h.CreateSchedules).Methods(http.MethodPost)
	api.HandleFunc("/flights/{id}/schedules/preview", h.PreviewSchedules).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{id}/schedules/generate", h.GenerateSchedules).Methods(http.MethodPost, http.MethodOptions)

	// Layouts
	api.HandleFunc("/layouts/{classType}", h.GetLayout).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket for real-time updates
	if opts.WebSocket != nil {
		api.HandleFunc("/flights/{flightId}/ws", opts.WebSocket).Methods(http.MethodGet)
	}

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics).Methods(http.MethodGet)
	}

	return r
}
