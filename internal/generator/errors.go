package generator

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes one invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a configuration so that
// callers can report them together instead of one at a time.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation error"
	}
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// IsValidation reports whether err carries ValidationErrors
func IsValidation(err error) bool {
	var target ValidationErrors
	return errors.As(err, &target)
}

// AsValidation extracts the field errors carried by err
func AsValidation(err error) (ValidationErrors, bool) {
	var target ValidationErrors
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
