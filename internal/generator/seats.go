package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
)

// ClassPreview summarizes what one seat class configuration will produce
type ClassPreview struct {
	ClassID     string           `json:"classId"`
	ClassType   models.ClassType `json:"classType,omitempty"`
	Rows        int              `json:"rows"`
	SeatsPerRow int              `json:"seatsPerRow"`
	SeatCount   int              `json:"seatCount"`
	Price       float64          `json:"price"`
	Revenue     float64          `json:"revenue"`
}

// SeatPreview is the seat count and revenue of a generation batch, computed
// before anything is generated or submitted.
type SeatPreview struct {
	Classes      []ClassPreview `json:"classes"`
	TotalSeats   int            `json:"totalSeats"`
	TotalRevenue float64        `json:"totalRevenue"`
}

// ValidateSeatConfigs checks every enabled configuration and returns all
// problems at once. Overlapping row ranges across classes are allowed.
func ValidateSeatConfigs(configs []models.SeatClassConfig) error {
	if len(configs) == 0 {
		return ValidationErrors{{Field: "configs", Message: "at least one seat class configuration is required"}}
	}

	var errs ValidationErrors
	enabled := 0
	for i, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		enabled++
		errs = append(errs, checkStruct(fmt.Sprintf("configs[%d].", i), cfg)...)
	}
	if enabled == 0 {
		errs = append(errs, FieldError{Field: "configs", Message: "at least one seat class must be enabled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SeatCount returns how many seats cfg produces
func SeatCount(cfg models.SeatClassConfig) int {
	if !cfg.Enabled || cfg.RowEnd < cfg.RowStart {
		return 0
	}
	return (cfg.RowEnd - cfg.RowStart + 1) * len(uniqueLetters(cfg.SeatLetters))
}

// TotalSeatCount returns the number of seats produced by all enabled configs
func TotalSeatCount(configs []models.SeatClassConfig) int {
	total := 0
	for _, cfg := range configs {
		total += SeatCount(cfg)
	}
	return total
}

// PreviewSeats computes per-class and total seat counts and revenue
func PreviewSeats(configs []models.SeatClassConfig) SeatPreview {
	preview := SeatPreview{Classes: make([]ClassPreview, 0, len(configs))}

	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		count := SeatCount(cfg)
		rows := 0
		if cfg.RowEnd >= cfg.RowStart {
			rows = cfg.RowEnd - cfg.RowStart + 1
		}
		cp := ClassPreview{
			ClassID:     cfg.ClassID,
			ClassType:   cfg.ClassType,
			Rows:        rows,
			SeatsPerRow: len(uniqueLetters(cfg.SeatLetters)),
			SeatCount:   count,
			Price:       cfg.Price,
			Revenue:     float64(count) * cfg.Price,
		}
		preview.Classes = append(preview.Classes, cp)
		preview.TotalSeats += cp.SeatCount
		preview.TotalRevenue += cp.Revenue
	}
	return preview
}

// GenerateSeats expands the enabled configs into seat records. Configs are
// processed in input order and each one row-major: rows ascending, then the
// seat letters in the order supplied. That order is the seat map reading order.
func GenerateSeats(configs []models.SeatClassConfig, flightID string) []models.SeatRecord {
	seats := make([]models.SeatRecord, 0, TotalSeatCount(configs))

	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		letters := uniqueLetters(cfg.SeatLetters)
		for row := cfg.RowStart; row <= cfg.RowEnd; row++ {
			for _, letter := range letters {
				seats = append(seats, models.SeatRecord{
					FlightID:   flightID,
					ClassID:    cfg.ClassID,
					SeatNumber: strconv.Itoa(row) + letter,
					Row:        row,
					Column:     letter,
					Price:      cfg.Price,
					Status:     models.SeatStatusAvailable,
				})
			}
		}
	}
	return seats
}

// uniqueLetters trims the letters and drops blanks and repeats, keeping the first occurrence
func uniqueLetters(letters []string) []string {
	out := make([]string, 0, len(letters))
	seen := make(map[string]struct{}, len(letters))
	for _, l := range letters {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
