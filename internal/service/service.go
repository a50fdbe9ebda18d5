package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/database"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/generator"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/metrics"
	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNoRecordsGenerated is returned when a valid configuration matches nothing
	ErrNoRecordsGenerated = errors.New("configuration generates no records")
	// ErrRangeTooLarge is returned when a schedule range exceeds the configured limit
	ErrRangeTooLarge = errors.New("schedule date range too large")
)

// GenerationService defines the seat and schedule generation service interface
type GenerationService interface {
	GetFlights(ctx context.Context) ([]database.Flight, error)
	GetFlight(ctx context.Context, flightID string) (*database.Flight, error)
	GetFlightSeats(ctx context.Context, flightID string, classID string, status string) ([]database.Seat, error)
	GetSeatClasses(ctx context.Context, flightID string) ([]database.SeatClass, error)
	GetFlightSchedules(ctx context.Context, flightID string) ([]database.Schedule, error)

	SuggestSeatConfigs(ctx context.Context, flightID string) ([]models.SeatClassConfig, error)
	PreviewSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*generator.SeatPreview, error)
	GenerateSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*GenerationResult, error)
	CreateSeats(ctx context.Context, flightID string, seats []models.SeatRecord) (*GenerationResult, error)

	PreviewSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*SchedulePreview, error)
	GenerateSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*GenerationResult, error)
	CreateSchedules(ctx context.Context, flightID string, schedules []models.ScheduleRecord) (*GenerationResult, error)
}

// Store is the read side of the repository used by the service
type Store interface {
	GetAllFlights(ctx context.Context) ([]database.Flight, error)
	GetFlightByID(ctx context.Context, id uuid.UUID) (*database.Flight, error)
	GetSeatClasses(ctx context.Context, flightID uuid.UUID) ([]database.SeatClass, error)
	GetFlightSeats(ctx context.Context, flightID uuid.UUID, filter database.SeatFilter) ([]database.Seat, error)
	GetFlightSchedules(ctx context.Context, flightID uuid.UUID) ([]database.Schedule, error)
}

// Notifier pushes generation events to connected clients
type Notifier interface {
	BroadcastSeatsGenerated(flightID string, count int)
	BroadcastSchedulesGenerated(flightID string, count int)
}

// Limits bounds what a single request may generate
type Limits struct {
	MaxScheduleDays int
	MaxBlockTime    time.Duration
}

// GenerationResult is returned after a batch has been submitted
type GenerationResult struct {
	FlightID string   `json:"flightId"`
	Created  int      `json:"created"`
	Warnings []string `json:"warnings,omitempty"`
}

// SchedulePreview lists the schedules a recurrence config would produce
type SchedulePreview struct {
	FlightID  string                  `json:"flightId"`
	Count     int                     `json:"count"`
	Schedules []models.ScheduleRecord `json:"schedules"`
	Warnings  []string                `json:"warnings,omitempty"`
}

// generationServiceImpl implements GenerationService
type generationServiceImpl struct {
	store     Store
	submitter Submitter
	notifier  Notifier
	metrics   *metrics.Metrics
	log       logger.Logger
	limits    Limits
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(store Store, submitter Submitter, notifier Notifier, m *metrics.Metrics, log logger.Logger, limits Limits) GenerationService {
	return &generationServiceImpl{
		store:     store,
		submitter: submitter,
		notifier:  notifier,
		metrics:   m,
		log:       log,
		limits:    limits,
	}
}

func (s *generationServiceImpl) GetFlights(ctx context.Context) ([]database.Flight, error) {
	return s.store.GetAllFlights(ctx)
}

func (s *generationServiceImpl) GetFlight(ctx context.Context, flightID string) (*database.Flight, error) {
	id, err := parseID("flightId", flightID)
	if err != nil {
		return nil, err
	}
	return s.store.GetFlightByID(ctx, id)
}

func (s *generationServiceImpl) GetFlightSeats(ctx context.Context, flightID string, classID string, status string) ([]database.Seat, error) {
	id, err := parseID("flightId", flightID)
	if err != nil {
		return nil, err
	}

	filter := database.SeatFilter{Status: models.SeatStatus(status)}
	if classID != "" {
		cid, err := parseID("classId", classID)
		if err != nil {
			return nil, err
		}
		filter.ClassID = &cid
	}
	switch filter.Status {
	case "", models.SeatStatusAvailable, models.SeatStatusHeld, models.SeatStatusBooked, models.SeatStatusBlocked:
	default:
		return nil, generator.ValidationErrors{{Field: "status", Message: "must be one of: available, held, booked, blocked"}}
	}

	if _, err := s.store.GetFlightByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetFlightSeats(ctx, id, filter)
}

func (s *generationServiceImpl) GetSeatClasses(ctx context.Context, flightID string) ([]database.SeatClass, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return s.store.GetSeatClasses(ctx, id)
}

func (s *generationServiceImpl) GetFlightSchedules(ctx context.Context, flightID string) ([]database.Schedule, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return s.store.GetFlightSchedules(ctx, id)
}

// SuggestSeatConfigs seeds one enabled configuration per seat class of the
// flight from the recommended layout of its class type.
func (s *generationServiceImpl) SuggestSeatConfigs(ctx context.Context, flightID string) ([]models.SeatClassConfig, error) {
	classes, err := s.GetSeatClasses(ctx, flightID)
	if err != nil {
		return nil, err
	}

	configs := make([]models.SeatClassConfig, 0, len(classes))
	for _, c := range classes {
		configs = append(configs, generator.ConfigFromClass(c.ID.String(), c.ClassType, c.Price))
	}
	return configs, nil
}

func (s *generationServiceImpl) PreviewSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*generator.SeatPreview, error) {
	if _, err := s.requireFlight(ctx, flightID); err != nil {
		return nil, err
	}
	if err := generator.ValidateSeatConfigs(configs); err != nil {
		s.metrics.ValidationFailures.WithLabelValues(metrics.KindSeats).Inc()
		return nil, err
	}

	preview := generator.PreviewSeats(configs)
	return &preview, nil
}

func (s *generationServiceImpl) GenerateSeats(ctx context.Context, flightID string, configs []models.SeatClassConfig) (*GenerationResult, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if err := generator.ValidateSeatConfigs(configs); err != nil {
		s.metrics.ValidationFailures.WithLabelValues(metrics.KindSeats).Inc()
		return nil, err
	}

	start := time.Now()
	seats := generator.GenerateSeats(configs, id.String())
	s.metrics.GenerationTime.WithLabelValues(metrics.KindSeats).Observe(time.Since(start).Seconds())

	if len(seats) == 0 {
		return nil, ErrNoRecordsGenerated
	}
	s.metrics.RecordsGenerated.WithLabelValues(metrics.KindSeats).Add(float64(len(seats)))

	return s.submitSeats(ctx, id, seats)
}

func (s *generationServiceImpl) CreateSeats(ctx context.Context, flightID string, seats []models.SeatRecord) (*GenerationResult, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if err := generator.ValidateSeatRecords(seats); err != nil {
		s.metrics.ValidationFailures.WithLabelValues(metrics.KindSeats).Inc()
		return nil, err
	}

	for i := range seats {
		seats[i].FlightID = id.String()
	}
	return s.submitSeats(ctx, id, seats)
}

func (s *generationServiceImpl) PreviewSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*SchedulePreview, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	schedules, warnings, err := s.expandSchedules(id, cfg)
	if err != nil {
		return nil, err
	}

	return &SchedulePreview{
		FlightID:  id.String(),
		Count:     len(schedules),
		Schedules: schedules,
		Warnings:  warnings,
	}, nil
}

func (s *generationServiceImpl) GenerateSchedules(ctx context.Context, flightID string, cfg models.ScheduleRecurrenceConfig) (*GenerationResult, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	schedules, warnings, err := s.expandSchedules(id, cfg)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoRecordsGenerated
	}
	s.metrics.RecordsGenerated.WithLabelValues(metrics.KindSchedules).Add(float64(len(schedules)))

	result, err := s.submitSchedules(ctx, id, schedules)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings
	return result, nil
}

func (s *generationServiceImpl) CreateSchedules(ctx context.Context, flightID string, schedules []models.ScheduleRecord) (*GenerationResult, error) {
	id, err := s.requireFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if err := generator.ValidateScheduleRecords(schedules); err != nil {
		s.metrics.ValidationFailures.WithLabelValues(metrics.KindSchedules).Inc()
		return nil, err
	}

	for i := range schedules {
		schedules[i].FlightID = id.String()
	}
	return s.submitSchedules(ctx, id, schedules)
}

// expandSchedules validates cfg, applies the range limit and generates the
// schedules of flight id together with any duration warnings.
func (s *generationServiceImpl) expandSchedules(id uuid.UUID, cfg models.ScheduleRecurrenceConfig) ([]models.ScheduleRecord, []string, error) {
	rule, err := generator.ParseRecurrence(cfg)
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues(metrics.KindSchedules).Inc()
		return nil, nil, err
	}

	if days := generator.DaysInRange(rule.StartDate, rule.EndDate); s.limits.MaxScheduleDays > 0 && days > s.limits.MaxScheduleDays {
		return nil, nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, s.limits.MaxScheduleDays)
	}

	start := time.Now()
	schedules := generator.GenerateSchedules(rule)
	s.metrics.GenerationTime.WithLabelValues(metrics.KindSchedules).Observe(time.Since(start).Seconds())

	for i := range schedules {
		schedules[i].FlightID = id.String()
	}
	return schedules, generator.DurationWarnings(rule, s.limits.MaxBlockTime), nil
}

func (s *generationServiceImpl) submitSeats(ctx context.Context, id uuid.UUID, seats []models.SeatRecord) (*GenerationResult, error) {
	created, err := s.submitter.SubmitSeats(ctx, id, seats)
	s.recordSubmission(metrics.KindSeats, err)
	if err != nil {
		s.log.Warn("Seat submission failed", "flightId", id, "seats", len(seats), "error", err)
		return nil, err
	}

	s.log.Info("Seats created", "flightId", id, "created", created)
	s.notifier.BroadcastSeatsGenerated(id.String(), created)
	return &GenerationResult{FlightID: id.String(), Created: created}, nil
}

func (s *generationServiceImpl) submitSchedules(ctx context.Context, id uuid.UUID, schedules []models.ScheduleRecord) (*GenerationResult, error) {
	created, err := s.submitter.SubmitSchedules(ctx, id, schedules)
	s.recordSubmission(metrics.KindSchedules, err)
	if err != nil {
		s.log.Warn("Schedule submission failed", "flightId", id, "schedules", len(schedules), "error", err)
		return nil, err
	}

	s.log.Info("Schedules created", "flightId", id, "created", created)
	s.notifier.BroadcastSchedulesGenerated(id.String(), created)
	return &GenerationResult{FlightID: id.String(), Created: created}, nil
}

func (s *generationServiceImpl) recordSubmission(kind string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case IsRejection(err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeFailed
	}
	s.metrics.Submissions.WithLabelValues(kind, outcome).Inc()
}

func (s *generationServiceImpl) requireFlight(ctx context.Context, flightID string) (uuid.UUID, error) {
	id, err := parseID("flightId", flightID)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.store.GetFlightByID(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// IsRejection reports whether the backend refused a batch because of its
// content rather than because it was unreachable.
func IsRejection(err error) bool {
	return generator.IsValidation(err) ||
		errors.Is(err, database.ErrSeatConflict) ||
		errors.Is(err, database.ErrScheduleConflict) ||
		errors.Is(err, database.ErrInvalidReference) ||
		errors.Is(err, database.ErrNotFound)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, generator.ValidationErrors{{Field: field, Message: "must be a valid UUID"}}
	}
	return id, nil
}
