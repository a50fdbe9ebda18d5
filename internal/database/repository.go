package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrSeatConflict     = errors.New("seat already exists")
	ErrScheduleConflict = errors.New("schedule already exists")
	ErrInvalidReference = errors.New("invalid reference")
)

// Postgres error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var seatColumns = []string{
	"id", "flight_id", "class_id", "seat_number", "row_number", "column_letter", "status", "price",
}

// Repository handles all database operations
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// --- Flight Operations ---

// GetAllFlights returns all flights ordered by departure
func (r *Repository) GetAllFlights(ctx context.Context) ([]Flight, error) {
	query := `
		SELECT id, flight_number, origin, destination, departure_time, arrival_time,
		       total_seats, available_seats, price_per_seat, created_at, updated_at
		FROM flights
		ORDER BY departure_time ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	flights := []Flight{}
	for rows.Next() {
		var f Flight
		err := rows.Scan(
			&f.ID, &f.FlightNumber, &f.Origin, &f.Destination,
			&f.DepartureTime, &f.ArrivalTime, &f.TotalSeats, &f.AvailableSeats,
			&f.PricePerSeat, &f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, rows.Err()
}

// GetFlightByID returns a flight by ID
func (r *Repository) GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	query := `
		SELECT id, flight_number, origin, destination, departure_time, arrival_time,
		       total_seats, available_seats, price_per_seat, created_at, updated_at
		FROM flights
		WHERE id = $1
	`

	var f Flight
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.FlightNumber, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.TotalSeats, &f.AvailableSeats,
		&f.PricePerSeat, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	return &f, nil
}

// --- Seat Class Operations ---

// GetSeatClasses returns the seat classes offered on a flight
func (r *Repository) GetSeatClasses(ctx context.Context, flightID uuid.UUID) ([]SeatClass, error) {
	query := `
		SELECT id, flight_id, class_type, price, amenities, created_at, updated_at
		FROM seat_classes
		WHERE flight_id = $1
		ORDER BY CASE class_type WHEN 'First' THEN 1 WHEN 'Business' THEN 2 ELSE 3 END
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat classes: %w", err)
	}
	defer rows.Close()

	classes := []SeatClass{}
	for rows.Next() {
		var c SeatClass
		if err := rows.Scan(&c.ID, &c.FlightID, &c.ClassType, &c.Price, &c.Amenities, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan seat class: %w", err)
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

// --- Seat Operations ---

// GetFlightSeats returns the seats of a flight in seat map order
func (r *Repository) GetFlightSeats(ctx context.Context, flightID uuid.UUID, filter SeatFilter) ([]Seat, error) {
	query, args := buildSeatQuery(flightID, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query seats: %w", err)
	}
	defer rows.Close()

	seats := []Seat{}
	for rows.Next() {
		var s Seat
		err := rows.Scan(
			&s.ID, &s.FlightID, &s.ClassID, &s.SeatNumber, &s.RowNumber, &s.ColumnLetter,
			&s.Status, &s.Price, &s.HeldUntil, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, s)
	}

	return seats, rows.Err()
}

func buildSeatQuery(flightID uuid.UUID, filter SeatFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, flight_id, class_id, seat_number, row_number, column_letter,
		       status, price, held_until, created_at, updated_at
		FROM seats
		WHERE flight_id = $1`)

	args := []interface{}{flightID}
	if filter.ClassID != nil {
		args = append(args, *filter.ClassID)
		fmt.Fprintf(&sb, " AND class_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	sb.WriteString(" ORDER BY row_number, column_letter")

	return sb.String(), args
}

// CreateSeats inserts a generated seat batch in one transaction and
// refreshes the flight's seat counters. Either every seat is stored or none.
func (r *Repository) CreateSeats(ctx context.Context, flightID uuid.UUID, seats []models.SeatRecord) (int, error) {
	rows, err := seatRows(flightID, seats)
	if err != nil {
		return 0, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockFlight(ctx, tx, flightID); err != nil {
		return 0, err
	}

	classIDs, err := flightClassIDs(ctx, tx, flightID)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		classID := row[2].(uuid.UUID)
		if _, ok := classIDs[classID]; !ok {
			return 0, fmt.Errorf("%w: seat class %s does not belong to flight %s", ErrInvalidReference, classID, flightID)
		}
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"seats"}, seatColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, mapWriteError(err, ErrSeatConflict, "failed to insert seats")
	}

	// Update flight seat counters
	_, err = tx.Exec(ctx, `
		UPDATE flights f
		SET total_seats = (SELECT COUNT(*) FROM seats s WHERE s.flight_id = f.id),
		    available_seats = (
				SELECT COUNT(*) FROM seats s
				WHERE s.flight_id = f.id AND s.status = 'available'
			),
		    updated_at = NOW()
		WHERE id = $1
	`, flightID)
	if err != nil {
		return 0, fmt.Errorf("failed to update seat counters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit seats: %w", err)
	}
	return int(copied), nil
}

// seatRows converts seat records into CopyFrom rows ordered like seatColumns
func seatRows(flightID uuid.UUID, seats []models.SeatRecord) ([][]interface{}, error) {
	rows := make([][]interface{}, 0, len(seats))
	for i, s := range seats {
		classID, err := uuid.Parse(s.ClassID)
		if err != nil {
			return nil, fmt.Errorf("%w: seats[%d].classId %q is not a valid id", ErrInvalidReference, i, s.ClassID)
		}
		status := s.Status
		if status == "" {
			status = models.SeatStatusAvailable
		}
		rows = append(rows, []interface{}{
			uuid.New(), flightID, classID, s.SeatNumber, s.Row, s.Column, string(status), s.Price,
		})
	}
	return rows, nil
}

// --- Schedule Operations ---

// GetFlightSchedules returns the schedules of a flight by departure
func (r *Repository) GetFlightSchedules(ctx context.Context, flightID uuid.UUID) ([]Schedule, error) {
	query := `
		SELECT id, flight_id,
		       to_char(departure_date, 'YYYY-MM-DD'), to_char(departure_time, 'HH24:MI'),
		       to_char(arrival_date, 'YYYY-MM-DD'), to_char(arrival_time, 'HH24:MI'),
		       status, gate_number, actual_departure, actual_arrival, delay_reason,
		       created_at, updated_at
		FROM flight_schedules
		WHERE flight_id = $1
		ORDER BY departure_date, departure_time
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []Schedule{}
	for rows.Next() {
		var s Schedule
		err := rows.Scan(
			&s.ID, &s.FlightID, &s.DepartureDate, &s.DepartureTime, &s.ArrivalDate, &s.ArrivalTime,
			&s.Status, &s.GateNumber, &s.ActualDeparture, &s.ActualArrival, &s.DelayReason,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// CreateSchedules inserts a schedule batch in one transaction. Either every
// schedule is stored or none.
func (r *Repository) CreateSchedules(ctx context.Context, flightID uuid.UUID, schedules []models.ScheduleRecord) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockFlight(ctx, tx, flightID); err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	for _, s := range schedules {
		status := s.Status
		if status == "" {
			status = models.ScheduleStatusScheduled
		}
		batch.Queue(`
			INSERT INTO flight_schedules (
				id, flight_id, departure_date, departure_time, arrival_date, arrival_time,
				status, gate_number, actual_departure, actual_arrival, delay_reason
			)
			VALUES ($1, $2, $3::date, $4::time, $5::date, $6::time, $7, $8, $9, $10, $11)
		`, uuid.New(), flightID, s.DepartureDate, s.DepartureTime, s.ArrivalDate, s.ArrivalTime,
			string(status), s.GateNumber, s.ActualDeparture, s.ActualArrival, s.DelayReason)
	}

	br := tx.SendBatch(ctx, batch)
	for range schedules {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, mapWriteError(err, ErrScheduleConflict, "failed to insert schedule")
		}
	}
	if err := br.Close(); err != nil {
		return 0, mapWriteError(err, ErrScheduleConflict, "failed to insert schedules")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit schedules: %w", err)
	}
	return len(schedules), nil
}

// --- Helpers ---

func lockFlight(ctx context.Context, tx pgx.Tx, flightID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM flights WHERE id = $1 FOR UPDATE`, flightID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock flight: %w", err)
	}
	return nil
}

func flightClassIDs(ctx context.Context, tx pgx.Tx, flightID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM seat_classes WHERE flight_id = $1`, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat classes: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan seat class id: %w", err)
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// mapWriteError translates constraint violations into repository errors
func mapWriteError(err error, conflict error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", conflict, pgErr.Detail)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.Detail)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
