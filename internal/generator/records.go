package generator

import (
	"fmt"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/models"
)

// ValidateSeatRecords checks a batch of already generated seats before it is
// submitted through the bulk collection endpoint.
func ValidateSeatRecords(seats []models.SeatRecord) error {
	if len(seats) == 0 {
		return ValidationErrors{{Field: "seats", Message: "at least one seat is required"}}
	}

	var errs ValidationErrors
	seen := make(map[string]int, len(seats))
	for i, s := range seats {
		errs = append(errs, checkStruct(fmt.Sprintf("seats[%d].", i), s)...)

		key := s.ClassID + "/" + s.SeatNumber
		if first, ok := seen[key]; ok {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("seats[%d].seatNumber", i),
				Message: fmt.Sprintf("duplicates seats[%d]", first),
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateScheduleRecords checks a batch of schedule records. Arrival must
// fall on the departure date or the day after it.
func ValidateScheduleRecords(schedules []models.ScheduleRecord) error {
	if len(schedules) == 0 {
		return ValidationErrors{{Field: "schedules", Message: "at least one schedule is required"}}
	}

	var errs ValidationErrors
	seen := make(map[string]int, len(schedules))
	for i, s := range schedules {
		prefix := fmt.Sprintf("schedules[%d].", i)
		fieldErrs := checkStruct(prefix, s)
		errs = append(errs, fieldErrs...)
		if len(fieldErrs) > 0 {
			continue
		}

		dep, _ := ParseDate(s.DepartureDate)
		arr, _ := ParseDate(s.ArrivalDate)
		if days := DaysInRange(dep, arr) - 1; days < 0 || days > 1 {
			errs = append(errs, FieldError{
				Field:   prefix + "arrivalDate",
				Message: "must be the departure date or the day after",
			})
		}

		key := s.DepartureDate + " " + s.DepartureTime
		if first, ok := seen[key]; ok {
			errs = append(errs, FieldError{
				Field:   prefix + "departureDate",
				Message: fmt.Sprintf("duplicates schedules[%d]", first),
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
