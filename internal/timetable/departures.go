package timetable

import "sort"

// EventKind tells a departure apart from a run ending at the station
type EventKind int

const (
	// DepartureEvent is a line leaving the station
	DepartureEvent EventKind = iota
	// ArrivalEvent is a line terminating at the station
	ArrivalEvent
)

func (k EventKind) String() string {
	if k == ArrivalEvent {
		return "arrival"
	}
	return "departure"
}

// Departure is one entry of a station's departure board
type Departure struct {
	Time TimeOfDay
	Kind EventKind
	Line *Line
	Stop *Stop
}

// Counterpart is where the line is heading for departures, or where the run
// came from for arrivals
func (d Departure) Counterpart() *Station {
	if d.Kind == ArrivalEvent {
		return d.Line.Origin().Station()
	}
	return d.Line.Terminal().Station()
}

// Direction renders the board label, e.g. "to Horb" or "from Aulendorf"
func (d Departure) Direction() string {
	if d.Kind == ArrivalEvent {
		return "from " + d.Counterpart().Name
	}
	return "to " + d.Counterpart().Name
}

// Departures lists every event at station at or after now, by time. Equal
// times keep catalog line order. A stop without a departure (the end of a
// run) is listed as an arrival.
func (t *Timetable) Departures(station *Station, now TimeOfDay) []Departure {
	var out []Departure
	for _, stop := range t.stopsAt[station] {
		at := stop.EventTime()
		if at < now {
			continue
		}
		kind := DepartureEvent
		if _, ok := stop.Departure(); !ok {
			kind = ArrivalEvent
		}
		out = append(out, Departure{Time: at, Kind: kind, Line: stop.line, Stop: stop})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
