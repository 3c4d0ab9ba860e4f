// Package timetable holds the immutable station/line model and the
// projections the planner runs on: neighbour expansion and departure boards.
//
// A Timetable is produced once by Build, which resolves every stop's station
// tag and checks the stop rules. After that it is read-only and can be shared
// by any number of concurrent queries.
package timetable

import (
	"fmt"
)

// Timetable owns all stations and lines
type Timetable struct {
	stations []*Station
	byTag    map[string]*Station
	lines    []*Line

	// stops per station, ordered by line input order then stop order
	stopsAt map[*Station][]*Stop
}

// Build resolves and validates the catalog and returns a fully linked timetable.
// Any unknown station tag or broken stop rule fails the whole build.
func Build(stations []Station, lines []LineSpec) (*Timetable, error) {
	t := &Timetable{
		stations: make([]*Station, 0, len(stations)),
		byTag:    make(map[string]*Station, len(stations)),
		lines:    make([]*Line, 0, len(lines)),
		stopsAt:  make(map[*Station][]*Stop),
	}

	for i := range stations {
		s := stations[i]
		if s.Tag == "" {
			return nil, &BuildError{Stop: -1, Err: fmt.Errorf("%w: station %d has no tag", ErrInvalidStop, i)}
		}
		if _, exists := t.byTag[s.Tag]; exists {
			return nil, &BuildError{Stop: -1, Err: fmt.Errorf("%w: %s", ErrDuplicateStation, s.Tag)}
		}
		station := &s
		t.stations = append(t.stations, station)
		t.byTag[s.Tag] = station
	}

	for order, spec := range lines {
		line, err := t.buildLine(order, spec)
		if err != nil {
			return nil, err
		}
		t.lines = append(t.lines, line)
		for _, stop := range line.stops {
			t.stopsAt[stop.station] = append(t.stopsAt[stop.station], stop)
		}
	}

	return t, nil
}

func (t *Timetable) buildLine(order int, spec LineSpec) (*Line, error) {
	if spec.Name == "" {
		return nil, &BuildError{Line: fmt.Sprintf("#%d", order), Stop: -1, Err: fmt.Errorf("%w: empty name", ErrInvalidLine)}
	}
	if len(spec.Stops) < 2 {
		return nil, &BuildError{Line: spec.Name, Stop: -1, Err: fmt.Errorf("%w: needs at least two stops, got %d", ErrInvalidLine, len(spec.Stops))}
	}

	line := &Line{
		name:  spec.Name,
		stops: make([]*Stop, 0, len(spec.Stops)),
	}

	last := len(spec.Stops) - 1
	for i, ss := range spec.Stops {
		station, ok := t.byTag[ss.Tag]
		if !ok {
			return nil, &BuildError{Line: spec.Name, Stop: i, Err: fmt.Errorf("%w: %q", ErrStationNotFound, ss.Tag)}
		}

		if err := checkStop(ss, i, last); err != nil {
			return nil, &BuildError{Line: spec.Name, Stop: i, Err: err}
		}

		stop := &Stop{
			station:  station,
			line:     line,
			index:    i,
			terminal: ss.Terminal,
		}
		if ss.Arrival != nil {
			stop.arrival, stop.hasArrival = *ss.Arrival, true
		}
		if ss.Departure != nil {
			stop.departure, stop.hasDeparture = *ss.Departure, true
		}

		if i > 0 {
			prev := line.stops[i-1]
			if stop.arrival < prev.departure {
				return nil, &BuildError{Line: spec.Name, Stop: i, Err: fmt.Errorf("%w: arrival %s before previous departure %s", ErrInvalidStop, stop.arrival, prev.departure)}
			}
		}

		line.stops = append(line.stops, stop)
	}

	return line, nil
}

// checkStop enforces the start/via/end shape of the i-th stop
func checkStop(ss StopSpec, i, last int) error {
	switch {
	case i == 0:
		if ss.Arrival != nil || ss.Departure == nil || ss.Terminal {
			return fmt.Errorf("%w: first stop must have a departure and no arrival", ErrInvalidStop)
		}
	case i == last:
		if ss.Arrival == nil || ss.Departure != nil || !ss.Terminal {
			return fmt.Errorf("%w: last stop must be terminal with an arrival and no departure", ErrInvalidStop)
		}
	default:
		if ss.Arrival == nil || ss.Departure == nil || ss.Terminal {
			return fmt.Errorf("%w: intermediate stop needs arrival and departure", ErrInvalidStop)
		}
		if *ss.Departure < *ss.Arrival {
			return fmt.Errorf("%w: departure %s before arrival %s", ErrInvalidStop, *ss.Departure, *ss.Arrival)
		}
	}
	return nil
}

// Stations returns all stations in catalog order
func (t *Timetable) Stations() []*Station {
	out := make([]*Station, len(t.stations))
	copy(out, t.stations)
	return out
}

// Lines returns all lines in catalog order
func (t *Timetable) Lines() []*Line {
	out := make([]*Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Resolve returns the station with the given tag
func (t *Timetable) Resolve(tag string) (*Station, error) {
	if s, ok := t.byTag[tag]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrStationNotFound, tag)
}

// StationByName returns the first station whose display name matches exactly
func (t *Timetable) StationByName(name string) (*Station, error) {
	for _, s := range t.stations {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStationNotFound, name)
}

// Contains reports whether s is one of this timetable's stations
func (t *Timetable) Contains(s *Station) bool {
	if s == nil {
		return false
	}
	return t.byTag[s.Tag] == s
}

// StopsAt returns the stops served at a station, in line order
func (t *Timetable) StopsAt(s *Station) []*Stop {
	stops := t.stopsAt[s]
	out := make([]*Stop, len(stops))
	copy(out, stops)
	return out
}
