// Package validate holds the field checks the form layer runs before a store
// call. Every failure wraps model.ErrValidation so callers can classify it
// with errors.Is.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tonearm/tonearm/internal/model"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, fmt.Sprintf(format, args...))
}

// NonEmpty requires v to contain non-whitespace characters.
func NonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fail("%s is required", field)
	}
	return nil
}

// Email requires a plausible address shape.
func Email(v string) error {
	if strings.TrimSpace(v) == "" {
		return fail("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fail("invalid email")
	}
	return nil
}

// IntRange bounds an optional integer field. A nil value passes.
func IntRange(field string, v *int, min, max int) error {
	if v == nil {
		return nil
	}
	if *v < min || *v > max {
		return fail("%s must be between %d and %d", field, min, max)
	}
	return nil
}

// Positive requires v > 0.
func Positive(field string, v float64) error {
	if v <= 0 {
		return fail("%s must be greater than 0", field)
	}
	return nil
}

// PositiveInt requires v > 0.
func PositiveInt(field string, v int) error {
	if v <= 0 {
		return fail("%s must be greater than 0", field)
	}
	return nil
}

// DateOrder requires end to be strictly after start; equal instants fail.
func DateOrder(start, end time.Time) error {
	if start.IsZero() {
		return fail("start date is required")
	}
	if end.IsZero() {
		return fail("end date is required")
	}
	if !end.After(start) {
		return fail("end date must be after start date")
	}
	return nil
}

// MaxLen bounds an optional string field. A nil value passes.
func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fail("%s exceeds %d characters", field, limit)
	}
	return nil
}
