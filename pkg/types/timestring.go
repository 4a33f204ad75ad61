package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeString is a wall-clock time of day stored in canonical "HH:MM"
// (24-hour) form. It is comparable by value: two TimeStrings are the same
// moment of the day iff they are equal as strings.
type TimeString string

// canonicalLayout is the storage and comparison format.
const canonicalLayout = "15:04"

// acceptedLayouts are the input formats understood by NewTimeStringFromString.
// The booking frontend historically sent both 24-hour times ("14:30") and
// kitchen-style times ("2:30 PM").
var acceptedLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
}

var (
	// ErrInvalidTimeString is returned for strings that match no accepted layout.
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(canonicalLayout))
}

// NewTimeStringFromString parses s into a canonical TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return NewTimeString(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed canonical time.
func (t TimeString) Validate() error {
	_, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Clock returns the hour and minute components.
func (t TimeString) Clock() (hour, minute int, err error) {
	parsed, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Equal reports whether both values denote the same time of day.
func (t TimeString) Equal(other TimeString) bool {
	return t == other
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return false
	}
	b, err := time.Parse(canonicalLayout, string(other))
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return false
	}
	b, err := time.Parse(canonicalLayout, string(other))
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time of day m minutes after t.
// The result wraps within the same day is not supported: exceeding 23:59
// is an error, callers treat it as "past closing".
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return "", err
	}
	total := hour*60 + minute + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is outside the day", ErrInvalidTimeString, string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At combines the calendar date of date with this time of day in loc,
// producing an absolute instant.
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}
