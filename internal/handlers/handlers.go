package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/generator"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/service"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 4 << 20

// Handler contains HTTP handlers for the API
type Handler struct {
	generationService service.GenerationService
	log               logger.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(generationService service.GenerationService, log logger.Logger) *Handler {
	return &Handler{
		generationService: generationService,
		log:               log,
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details []generator.FieldError `json:"details,omitempty"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps service and repository errors onto status codes
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if verrs, ok := generator.AsValidation(err); ok {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: verrs})
		return
	}

	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "Flight not found")
	case errors.Is(err, database.ErrSeatConflict), errors.Is(err, database.ErrScheduleConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, database.ErrInvalidReference):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoRecordsGenerated), errors.Is(err, service.ErrRangeTooLarge):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrSubmissionFailed):
		h.log.Error("Bulk submission failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusBadGateway, "Failed to submit records")
	default:
		h.log.Error("Request failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// GetFlights handles GET /api/flights
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.generationService.GetFlights(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.generationService.GetFlight(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetFlightSeats handles GET /api/flights/{id}/seats
func (h *Handler) GetFlightSeats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seats, err := h.generationService.GetFlightSeats(r.Context(), mux.Vars(r)["id"], q.Get("classId"), q.Get("status"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// GetSeatClasses handles GET /api/flights/{id}/seat-classes
func (h *Handler) GetSeatClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.generationService.GetSeatClasses(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// SuggestSeatConfigs handles GET /api/flights/{id}/seat-configs
func (h *Handler) SuggestSeatConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.generationService.SuggestSeatConfigs(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SeatConfigsRequest{Configs: configs})
}

// PreviewSeats handles POST /api/flights/{id}/seats/preview
func (h *Handler) PreviewSeats(w http.ResponseWriter, r *http.Request) {
	var req models.SeatConfigsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	preview, err := h.generationService.PreviewSeats(r.Context(), mux.Vars(r)["id"], req.Configs)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// GenerateSeats handles POST /api/flights/{id}/seats/generate
func (h *Handler) GenerateSeats(w http.ResponseWriter, r *http.Request) {
	var req models.SeatConfigsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.generationService.GenerateSeats(r.Context(), mux.Vars(r)["id"], req.Configs)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// CreateSeats handles POST /api/flights/{id}/seats
func (h *Handler) CreateSeats(w http.ResponseWriter, r *http.Request) {
	var req models.BulkSeatsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.generationService.CreateSeats(r.Context(), mux.Vars(r)["id"], req.Seats)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// GetFlightSchedules handles GET /api/flights/{id}/schedules
func (h *Handler) GetFlightSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.generationService.GetFlightSchedules(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schedules)
}

// PreviewSchedules handles POST /api/flights/{id}/schedules/preview
func (h *Handler) PreviewSchedules(w http.ResponseWriter, r *http.Request) {
	var cfg models.ScheduleRecurrenceConfig
	if !decodeBody(w, r, &cfg) {
		return
	}

	preview, err := h.generationService.PreviewSchedules(r.Context(), mux.Vars(r)["id"], cfg)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// GenerateSchedules handles POST /api/flights/{id}/schedules/generate
func (h *Handler) GenerateSchedules(w http.ResponseWriter, r *http.Request) {
	var cfg models.ScheduleRecurrenceConfig
	if !decodeBody(w, r, &cfg) {
		return
	}

	result, err := h.generationService.GenerateSchedules(r.Context(), mux.Vars(r)["id"], cfg)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// CreateSchedules handles POST /api/flights/{id}/schedules
func (h *Handler) CreateSchedules(w http.ResponseWriter, r *http.Request) {
	var req models.BulkSchedulesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.generationService.CreateSchedules(r.Context(), mux.Vars(r)["id"], req.Schedules)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// GetLayout handles GET /api/layouts/{classType}
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	classType, ok := generator.ParseClassType(mux.Vars(r)["classType"])
	if !ok {
		respondError(w, http.StatusNotFound, "Unknown class type")
		return
	}

	layout, _ := generator.RecommendedLayout(classType)
	respondJSON(w, http.StatusOK, layout)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
