// Package generator expands compact schedule and seat configurations into
// the records submitted to the bulk creation endpoints. Every function here
// is pure: no I/O, no shared state, identical input gives identical output.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minutesPerDay = 24 * 60
)

// TimeOfDay is a wall clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an HH:MM string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the minutes elapsed since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than o
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseDate parses a YYYY-MM-DD calendar date. Dates are naive: no timezone
// normalization is applied, the result is midnight UTC of that date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate formats the calendar date of t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// RecurrenceRule is a validated, parsed ScheduleRecurrenceConfig
type RecurrenceRule struct {
	StartDate     time.Time
	EndDate       time.Time
	DepartureTime TimeOfDay
	ArrivalTime   TimeOfDay
	Frequency     models.Frequency
	DaysOfWeek    []time.Weekday
	GateNumber    string
	Status        models.ScheduleStatus
}

// ParseRecurrence validates cfg and converts it into a RecurrenceRule.
// All invalid fields are reported together as ValidationErrors.
func ParseRecurrence(cfg models.ScheduleRecurrenceConfig) (RecurrenceRule, error) {
	errs := checkStruct("", cfg)

	rule := RecurrenceRule{
		Frequency:  cfg.Frequency,
		GateNumber: strings.TrimSpace(cfg.GateNumber),
		Status:     cfg.Status,
	}
	if rule.Status == "" {
		rule.Status = models.ScheduleStatusScheduled
	}

	var err error
	if !errs.has("startDate") {
		if rule.StartDate, err = ParseDate(cfg.StartDate); err != nil {
			errs = append(errs, FieldError{Field: "startDate", Message: "must match format YYYY-MM-DD"})
		}
	}
	if !errs.has("endDate") {
		if rule.EndDate, err = ParseDate(cfg.EndDate); err != nil {
			errs = append(errs, FieldError{Field: "endDate", Message: "must match format YYYY-MM-DD"})
		}
	}
	if !errs.has("startDate") && !errs.has("endDate") && rule.EndDate.Before(rule.StartDate) {
		errs = append(errs, FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if !errs.has("departureTime") {
		if rule.DepartureTime, err = ParseTimeOfDay(cfg.DepartureTime); err != nil {
			errs = append(errs, FieldError{Field: "departureTime", Message: "must match format HH:MM"})
		}
	}
	if !errs.has("arrivalTime") {
		if rule.ArrivalTime, err = ParseTimeOfDay(cfg.ArrivalTime); err != nil {
			errs = append(errs, FieldError{Field: "arrivalTime", Message: "must match format HH:MM"})
		}
	}

	if cfg.Frequency == models.FrequencyWeekly && len(cfg.DaysOfWeek) == 0 {
		errs = append(errs, FieldError{Field: "daysOfWeek", Message: "at least one day is required for weekly frequency"})
	}

	var seen [7]bool
	for _, d := range cfg.DaysOfWeek {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		rule.DaysOfWeek = append(rule.DaysOfWeek, time.Weekday(d))
	}

	if len(errs) > 0 {
		return RecurrenceRule{}, errs
	}
	return rule, nil
}

// IsOvernight reports whether a flight lands on the next calendar day.
// Only the times of day are compared; no duration sanity check is applied.
func IsOvernight(departure, arrival TimeOfDay) bool {
	return arrival.Before(departure)
}

// BlockTime returns the departure-to-arrival duration implied by the two
// times of day, wrapping past midnight when the flight is overnight.
func BlockTime(departure, arrival TimeOfDay) time.Duration {
	minutes := (arrival.Minutes() - departure.Minutes() + minutesPerDay) % minutesPerDay
	return time.Duration(minutes) * time.Minute
}

// DaysInRange returns the inclusive number of calendar days between start and end
func DaysInRange(start, end time.Time) int {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// GenerateSchedules expands rule into one record per matching date, in
// ascending date order. A weekly rule without days yields no records.
func GenerateSchedules(rule RecurrenceRule) []models.ScheduleRecord {
	start := dateOnly(rule.StartDate)
	end := dateOnly(rule.EndDate)

	var days [7]bool
	for _, d := range rule.DaysOfWeek {
		if d >= time.Sunday && d <= time.Saturday {
			days[d] = true
		}
	}

	status := rule.Status
	if status == "" {
		status = models.ScheduleStatusScheduled
	}
	overnight := IsOvernight(rule.DepartureTime, rule.ArrivalTime)

	records := make([]models.ScheduleRecord, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !matchesFrequency(rule.Frequency, d, start, days) {
			continue
		}

		arrival := d
		if overnight {
			arrival = d.AddDate(0, 0, 1)
		}

		records = append(records, models.ScheduleRecord{
			DepartureDate: FormatDate(d),
			DepartureTime: rule.DepartureTime.String(),
			ArrivalDate:   FormatDate(arrival),
			ArrivalTime:   rule.ArrivalTime.String(),
			Status:        status,
			GateNumber:    rule.GateNumber,
		})
	}
	return records
}

// DurationWarnings flags rules whose overnight inference is suspicious,
// e.g. an arrival time typed earlier than the departure by mistake.
// It never changes what GenerateSchedules produces.
func DurationWarnings(rule RecurrenceRule, maxBlock time.Duration) []string {
	var warnings []string
	block := BlockTime(rule.DepartureTime, rule.ArrivalTime)

	if block == 0 {
		warnings = append(warnings, "arrival time equals departure time")
	}
	if maxBlock > 0 && IsOvernight(rule.DepartureTime, rule.ArrivalTime) && block > maxBlock {
		warnings = append(warnings, fmt.Sprintf(
			"arrival %s is treated as next day, giving a block time of %s which exceeds %s",
			rule.ArrivalTime, block, maxBlock,
		))
	}
	return warnings
}

func matchesFrequency(freq models.Frequency, d, start time.Time, days [7]bool) bool {
	switch freq {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		return days[d.Weekday()]
	case models.FrequencyMonthly:
		// Months without the anchor day are skipped
		return d.Day() == start.Day()
	default:
		return false
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
