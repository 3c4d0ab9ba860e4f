package timetable

import (
	"errors"
	"fmt"
)

var (
	// ErrStationNotFound is returned when a tag or name does not match any station
	ErrStationNotFound = errors.New("station not found")
	// ErrDuplicateStation is returned when two stations share a tag
	ErrDuplicateStation = errors.New("duplicate station tag")
	// ErrInvalidLine is returned for lines that cannot form a run
	ErrInvalidLine = errors.New("invalid line")
	// ErrInvalidStop is returned when a stop breaks the start/via/end rules
	ErrInvalidStop = errors.New("invalid stop")
)

// BuildError locates a failure inside the line catalog.
// Stop is -1 when the failure concerns the line (or station list) as a whole.
type BuildError struct {
	Line string
	Stop int
	Err  error
}

func (e *BuildError) Error() string {
	switch {
	case e.Line == "":
		return fmt.Sprintf("timetable build: %v", e.Err)
	case e.Stop < 0:
		return fmt.Sprintf("timetable build: line %q: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("timetable build: line %q stop %d: %v", e.Line, e.Stop, e.Err)
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
