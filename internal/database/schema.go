package database

import (
	"context"
	"fmt"
)

// schema is applied in order; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		flight_number   VARCHAR(10) NOT NULL,
		origin          VARCHAR(100) NOT NULL,
		destination     VARCHAR(100) NOT NULL,
		departure_time  TIMESTAMPTZ NOT NULL,
		arrival_time    TIMESTAMPTZ NOT NULL,
		total_seats     INT NOT NULL DEFAULT 0,
		available_seats INT NOT NULL DEFAULT 0,
		price_per_seat  NUMERIC(10, 2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS seat_classes (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		flight_id  UUID NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
		class_type VARCHAR(20) NOT NULL CHECK (class_type IN ('Economy', 'Business', 'First')),
		price      NUMERIC(10, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		amenities  TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// Seat numbers are unique per class, not per flight: classes may share rows
	`CREATE TABLE IF NOT EXISTS seats (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		flight_id     UUID NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
		class_id      UUID NOT NULL REFERENCES seat_classes(id) ON DELETE CASCADE,
		seat_number   VARCHAR(10) NOT NULL,
		row_number    INT NOT NULL CHECK (row_number >= 1),
		column_letter VARCHAR(4) NOT NULL,
		status        VARCHAR(20) NOT NULL DEFAULT 'available',
		price         NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		held_until    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (flight_id, class_id, seat_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_seats_flight ON seats (flight_id, row_number, column_letter)`,
	`CREATE TABLE IF NOT EXISTS flight_schedules (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		flight_id        UUID NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
		departure_date   DATE NOT NULL,
		departure_time   TIME NOT NULL,
		arrival_date     DATE NOT NULL,
		arrival_time     TIME NOT NULL,
		status           VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		gate_number      VARCHAR(16) NOT NULL DEFAULT '',
		actual_departure TIMESTAMPTZ,
		actual_arrival   TIMESTAMPTZ,
		delay_reason     TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (flight_id, departure_date, departure_time),
		CHECK (arrival_date >= departure_date)
	)`,
}

// Migrate creates the tables used by the service if they do not exist
func (r *Repository) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
