package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned when a time-of-day string cannot be parsed
var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a local time of day in seconds since midnight.
// Values past 24:00 are allowed for runs that continue after midnight.
type TimeOfDay int

// MaxHours bounds the hour field; runs may continue into the next day but no further
const MaxHours = 47

// NewTimeOfDay builds a TimeOfDay from hours, minutes and seconds
func NewTimeOfDay(hours, minutes, seconds int) TimeOfDay {
	return TimeOfDay(hours*3600 + minutes*60 + seconds)
}

// ParseTimeOfDay parses an ISO-8601 local time of day ("HH:MM" or "HH:MM:SS")
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		// GTFS writes "9:05:00", so the hour may be a single digit
		if part == "" || len(part) > 2 || (i > 0 && len(part) != 2) || !isDigits(part) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		values[i] = v
	}

	if values[0] > MaxHours || values[1] > 59 || values[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return NewTimeOfDay(values[0], values[1], values[2]), nil
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on malformed input.
// Intended for literals in tests and built-in data.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Seconds returns the number of seconds since midnight
func (t TimeOfDay) Seconds() int {
	return int(t)
}

// String formats as HH:MM, or HH:MM:SS when the seconds are non-zero
func (t TimeOfDay) String() string {
	h := int(t) / 3600
	m := (int(t) % 3600) / 60
	s := int(t) % 60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
