package search

import "github.com/mini-rodalies-3d/timetable/internal/timetable"

// Label is the per-query state of one station
type Label struct {
	Station     *timetable.Station
	Visited     bool
	Line        *timetable.Line
	Predecessor *timetable.Station

	// position in the timetable's station order; breaks ties between equal times
	index   int
	time    timetable.TimeOfDay
	reached bool
	edge    timetable.Edge
}

// Time returns the best known arrival; ok is false while the station is unreached
func (l *Label) Time() (t timetable.TimeOfDay, ok bool) {
	return l.time, l.reached
}

// Index is the station's position in the timetable's station order
func (l *Label) Index() int {
	return l.index
}

// closerThan orders labels for selection. A nil label loses to everything,
// an unreached label never wins, and a reached label beats an unreached one.
// Two reached labels compare by time only.
func (l *Label) closerThan(other *Label) bool {
	if other == nil {
		return true
	}
	if !l.reached {
		return false
	}
	if !other.reached {
		return true
	}
	return l.time < other.time
}

// improves reports whether arriving at t would be strictly better
func (l *Label) improves(t timetable.TimeOfDay) bool {
	return !l.reached || t < l.time
}
