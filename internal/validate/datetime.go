// Package validate checks the fixed textual formats of sighting fields.
package validate

import (
	"regexp"
	"time"

	"github.com/leapstack-labs/wildlog/pkg/core"
)

// Layouts accepted for the date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Date reports whether s is a YYYY-MM-DD calendar date.
func Date(s string) error {
	if !datePattern.MatchString(s) {
		return &core.FormatError{Field: "date", Value: s}
	}
	// time.Parse rejects month 13 and day 30 of February.
	if _, err := time.Parse(DateLayout, s); err != nil {
		return &core.FormatError{Field: "date", Value: s}
	}
	return nil
}

// Time reports whether s is a 24-hour HH:MM clock time.
func Time(s string) error {
	if !timePattern.MatchString(s) {
		return &core.FormatError{Field: "time", Value: s}
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return &core.FormatError{Field: "time", Value: s}
	}
	return nil
}

// DateTime checks the date first, then the time, and returns the first
// *core.FormatError found.
func DateTime(date, clock string) error {
	if err := Date(date); err != nil {
		return err
	}
	return Time(clock)
}
