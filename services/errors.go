package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyDataset is returned when no row matched the target record type.
// It signals an input/configuration mismatch rather than malformed data.
var ErrEmptyDataset = errors.New("no matching records found")

// FormatError reports a value that does not match the accepted grammar.
type FormatError struct {
	Field  string
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s format: %q", e.Field, e.Input)
	}
	return fmt.Sprintf("invalid %s format: %q (%s)", e.Field, e.Input, e.Reason)
}

// DateRangeError reports a well-formed date token that is not a real
// calendar date, e.g. "31 abr".
type DateRangeError struct {
	Input string
	Year  int
	Month time.Month
	Day   int
}

func (e *DateRangeError) Error() string {
	if e.Year < minYear || e.Year > maxYear {
		return fmt.Sprintf("date out of range: %q (year %d outside %d..%d)",
			e.Input, e.Year, minYear, maxYear)
	}
	return fmt.Sprintf("date out of range: %q (day %d does not exist in %s %d)",
		e.Input, e.Day, e.Month, e.Year)
}
