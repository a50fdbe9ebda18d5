package generator

import (
	"testing"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatNumbers(seats []models.SeatRecord) []string {
	numbers := make([]string, len(seats))
	for i, s := range seats {
		numbers[i] = s.SeatNumber
	}
	return numbers
}

func TestGenerateSeats_RowMajorOrder(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "eco", RowStart: 1, RowEnd: 3, SeatLetters: []string{"A", "B", "C"}, Price: 120, Enabled: true},
	}

	seats := GenerateSeats(configs, "FL001")

	require.Len(t, seats, 9)
	assert.Equal(t, []string{"1A", "1B", "1C", "2A", "2B", "2C", "3A", "3B", "3C"}, seatNumbers(seats))
	for _, s := range seats {
		assert.Equal(t, "FL001", s.FlightID)
		assert.Equal(t, "eco", s.ClassID)
		assert.Equal(t, 120.0, s.Price)
		assert.Equal(t, models.SeatStatusAvailable, s.Status)
	}
	assert.Equal(t, 2, seats[4].Row)
	assert.Equal(t, "B", seats[4].Column)
}

func TestGenerateSeats_LetterOrderIsPreserved(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "biz", RowStart: 5, RowEnd: 5, SeatLetters: []string{"D", "A", "C"}, Price: 400, Enabled: true},
	}

	assert.Equal(t, []string{"5D", "5A", "5C"}, seatNumbers(GenerateSeats(configs, "FL001")))
}

func TestGenerateSeats_DisabledConfigExcluded(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "first", RowStart: 1, RowEnd: 2, SeatLetters: []string{"A", "B"}, Price: 900, Enabled: false},
		{ClassID: "eco", RowStart: 15, RowEnd: 16, SeatLetters: []string{"A"}, Price: 100, Enabled: true},
	}

	seats := GenerateSeats(configs, "FL001")

	assert.Equal(t, []string{"15A", "16A"}, seatNumbers(seats))
	for _, s := range seats {
		assert.NotEqual(t, "first", s.ClassID)
	}
}

func TestGenerateSeats_ConfigOrderPreserved(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "eco", RowStart: 15, RowEnd: 15, SeatLetters: []string{"A"}, Price: 100, Enabled: true},
		{ClassID: "first", RowStart: 1, RowEnd: 1, SeatLetters: []string{"A"}, Price: 900, Enabled: true},
	}

	assert.Equal(t, []string{"15A", "1A"}, seatNumbers(GenerateSeats(configs, "FL001")))
}

func TestGenerateSeats_DuplicateLettersCollapsed(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "eco", RowStart: 1, RowEnd: 1, SeatLetters: []string{"A", "B", "A", " ", "B"}, Price: 100, Enabled: true},
	}

	seats := GenerateSeats(configs, "FL001")

	assert.Equal(t, []string{"1A", "1B"}, seatNumbers(seats))
	assert.Equal(t, len(seats), TotalSeatCount(configs))
}

func TestGenerateSeats_OverlappingClassesAllowed(t *testing.T) {
	configs := []models.SeatClassConfig{
		{ClassID: "biz", RowStart: 1, RowEnd: 2, SeatLetters: []string{"A"}, Price: 400, Enabled: true},
		{ClassID: "eco", RowStart: 2, RowEnd: 3, SeatLetters: []string{"A"}, Price: 100, Enabled: true},
	}

	require.NoError(t, ValidateSeatConfigs(configs))
	assert.Equal(t, []string{"1A", "2A", "2A", "3A"}, seatNumbers(GenerateSeats(configs, "FL001")))
}

func TestGenerateSeats_Idempotent(t *testing.T) {
	configs := []models.SeatClassConfig{
		ConfigFromClass("first", models.ClassTypeFirst, 900),
		ConfigFromClass("biz", models.ClassTypeBusiness, 400),
		ConfigFromClass("eco", models.ClassTypeEconomy, 120),
	}

	assert.Equal(t, GenerateSeats(configs, "FL001"), GenerateSeats(configs, "FL001"))
}

func TestSeatCount(t *testing.T) {
	tests := []struct {
		name     string
		config   models.SeatClassConfig
		expected int
	}{
		{
			name:     "first class layout",
			config:   ConfigFromClass("first", models.ClassTypeFirst, 900),
			expected: 4,
		},
		{
			name:     "business layout",
			config:   ConfigFromClass("biz", models.ClassTypeBusiness, 400),
			expected: 24,
		},
		{
			name:     "economy layout",
			config:   ConfigFromClass("eco", models.ClassTypeEconomy, 120),
			expected: 126,
		},
		{
			name:     "disabled",
			config:   models.SeatClassConfig{RowStart: 1, RowEnd: 10, SeatLetters: []string{"A"}},
			expected: 0,
		},
		{
			name:     "inverted range",
			config:   models.SeatClassConfig{RowStart: 10, RowEnd: 1, SeatLetters: []string{"A"}, Enabled: true},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeatCount(tt.config))
			assert.Len(t, GenerateSeats([]models.SeatClassConfig{tt.config}, "FL001"), tt.expected)
		})
	}
}

func TestPreviewSeats_RevenueMatchesGeneratedSeats(t *testing.T) {
	configs := []models.SeatClassConfig{
		ConfigFromClass("first", models.ClassTypeFirst, 950.5),
		ConfigFromClass("biz", models.ClassTypeBusiness, 420),
		{ClassID: "eco", RowStart: 15, RowEnd: 35, SeatLetters: []string{"A", "B", "C", "D", "E", "F"}, Price: 99, Enabled: false},
	}

	preview := PreviewSeats(configs)
	seats := GenerateSeats(configs, "FL001")

	require.Len(t, preview.Classes, 2)
	assert.Equal(t, len(seats), preview.TotalSeats)

	revenueByClass := map[string]float64{}
	for _, s := range seats {
		revenueByClass[s.ClassID] += s.Price
	}
	for _, cp := range preview.Classes {
		assert.InDelta(t, float64(cp.SeatCount)*cp.Price, revenueByClass[cp.ClassID], 0.001)
		assert.InDelta(t, cp.Revenue, revenueByClass[cp.ClassID], 0.001)
	}
	assert.InDelta(t, 4*950.5+24*420.0, preview.TotalRevenue, 0.001)
}

func TestValidateSeatConfigs(t *testing.T) {
	tests := []struct {
		name    string
		configs []models.SeatClassConfig
		fields  []string
	}{
		{
			name: "valid",
			configs: []models.SeatClassConfig{
				{ClassID: "eco", RowStart: 1, RowEnd: 3, SeatLetters: []string{"A"}, Price: 0, Enabled: true},
			},
		},
		{
			name:    "no configs",
			configs: nil,
			fields:  []string{"configs"},
		},
		{
			name: "nothing enabled",
			configs: []models.SeatClassConfig{
				{ClassID: "eco", RowStart: 1, RowEnd: 3, SeatLetters: []string{"A"}},
			},
			fields: []string{"configs"},
		},
		{
			name: "every invalid field reported",
			configs: []models.SeatClassConfig{
				{ClassID: "eco", RowStart: 5, RowEnd: 3, Price: -1, Enabled: true},
			},
			fields: []string{"configs[0].rowEnd", "configs[0].seatLetters", "configs[0].price"},
		},
		{
			name: "errors across configs",
			configs: []models.SeatClassConfig{
				{ClassID: "", RowStart: 1, RowEnd: 2, SeatLetters: []string{"A"}, Enabled: true},
				{ClassID: "biz", RowStart: 0, RowEnd: 2, SeatLetters: []string{"A", ""}, Enabled: true},
			},
			fields: []string{"configs[0].classId", "configs[1].rowStart", "configs[1].seatLetters[1]"},
		},
		{
			name: "disabled config not validated",
			configs: []models.SeatClassConfig{
				{ClassID: "", RowStart: 0, RowEnd: -1, Price: -5},
				{ClassID: "eco", RowStart: 1, RowEnd: 1, SeatLetters: []string{"A"}, Enabled: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeatConfigs(tt.configs)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			verrs, ok := AsValidation(err)
			require.True(t, ok, "expected validation errors, got %v", err)
			got := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				got = append(got, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}
