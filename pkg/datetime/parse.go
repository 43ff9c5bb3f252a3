// Package datetime provides date utilities for schedule dating.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidateMonth checks that a date string matches the YYYY-MM layout.
func ValidateMonth(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("date %q does not match layout %s: %w", date, DateTimeLayout, err)
	}
	return nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// PeriodDate returns the calendar month of the given 1-based payment period
// for a loan whose first payment falls in startMonth.
func PeriodDate(startMonth string, period int) (string, error) {
	if period < 1 {
		return "", fmt.Errorf("period must be at least 1, got %d", period)
	}
	return OffsetDate(startMonth, DateTimeLayout, period-1)
}
