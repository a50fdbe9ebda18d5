package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatRows(t *testing.T) {
	flightID := uuid.New()
	classID := uuid.New()

	rows, err := seatRows(flightID, []models.SeatRecord{
		{ClassID: classID.String(), SeatNumber: "1A", Row: 1, Column: "A", Price: 150},
		{ClassID: classID.String(), SeatNumber: "1B", Row: 1, Column: "B", Price: 150, Status: models.SeatStatusBlocked},
	})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(seatColumns))
		assert.Equal(t, flightID, row[1])
		assert.Equal(t, classID, row[2])
	}
	assert.Equal(t, "1A", rows[0][3])
	assert.Equal(t, "available", rows[0][6])
	assert.Equal(t, "blocked", rows[1][6])
	assert.NotEqual(t, rows[0][0], rows[1][0])
}

func TestSeatRows_InvalidClassID(t *testing.T) {
	_, err := seatRows(uuid.New(), []models.SeatRecord{
		{ClassID: "economy", SeatNumber: "1A", Row: 1, Column: "A"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "seats[0].classId")
}

func TestBuildSeatQuery(t *testing.T) {
	flightID := uuid.New()
	classID := uuid.New()

	tests := []struct {
		name     string
		filter   SeatFilter
		args     int
		contains []string
	}{
		{name: "no filter", filter: SeatFilter{}, args: 1},
		{name: "class filter", filter: SeatFilter{ClassID: &classID}, args: 2, contains: []string{"class_id = $2"}},
		{name: "status filter", filter: SeatFilter{Status: models.SeatStatusAvailable}, args: 2, contains: []string{"status = $2"}},
		{
			name:     "both filters",
			filter:   SeatFilter{ClassID: &classID, Status: models.SeatStatusBooked},
			args:     3,
			contains: []string{"class_id = $2", "status = $3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildSeatQuery(flightID, tt.filter)

			assert.Len(t, args, tt.args)
			assert.Equal(t, flightID, args[0])
			for _, c := range tt.contains {
				assert.Contains(t, query, c)
			}
			assert.Contains(t, query, "ORDER BY row_number, column_letter")
		})
	}
}

func TestMapWriteError(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, Detail: "Key (seat_number)=(1A) already exists."}
	fk := &pgconn.PgError{Code: pgForeignKeyViolation, Detail: "Key (class_id) is not present."}
	other := errors.New("connection reset")

	assert.ErrorIs(t, mapWriteError(fmt.Errorf("copy: %w", unique), ErrSeatConflict, "insert"), ErrSeatConflict)
	assert.ErrorIs(t, mapWriteError(unique, ErrScheduleConflict, "insert"), ErrScheduleConflict)
	assert.ErrorIs(t, mapWriteError(fk, ErrSeatConflict, "insert"), ErrInvalidReference)

	err := mapWriteError(other, ErrSeatConflict, "failed to insert seats")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrSeatConflict)
	assert.Contains(t, err.Error(), "failed to insert seats")
}
