package timetable

// Station is a place where lines stop. Tag is the unique key.
type Station struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

func (s *Station) String() string {
	return s.Name
}

// StopSpec describes one stop of a line before station tags are resolved.
// Use Start, Via and End to build one.
type StopSpec struct {
	Tag       string
	Arrival   *TimeOfDay
	Departure *TimeOfDay
	Terminal  bool
}

// Start is the first stop of a run: departure only
func Start(tag string, departure TimeOfDay) StopSpec {
	return StopSpec{Tag: tag, Departure: &departure}
}

// Via is an intermediate stop with both arrival and departure
func Via(tag string, arrival, departure TimeOfDay) StopSpec {
	return StopSpec{Tag: tag, Arrival: &arrival, Departure: &departure}
}

// End is the terminal stop of a run: arrival only
func End(tag string, arrival TimeOfDay) StopSpec {
	return StopSpec{Tag: tag, Arrival: &arrival, Terminal: true}
}

// LineSpec is an unresolved line: a name and its stops in schedule order
type LineSpec struct {
	Name  string
	Stops []StopSpec
}

// Stop is one scheduled event of a line at a station
type Stop struct {
	station *Station
	line    *Line
	index   int

	arrival      TimeOfDay
	departure    TimeOfDay
	hasArrival   bool
	hasDeparture bool
	terminal     bool
}

// Station returns the resolved station of the stop
func (s *Stop) Station() *Station { return s.station }

// Line returns the line the stop belongs to
func (s *Stop) Line() *Line { return s.line }

// Index returns the position of the stop within its line
func (s *Stop) Index() int { return s.index }

// Arrival returns the arrival time; ok is false at the origin of a run
func (s *Stop) Arrival() (t TimeOfDay, ok bool) { return s.arrival, s.hasArrival }

// Departure returns the departure time; ok is false at the terminal
func (s *Stop) Departure() (t TimeOfDay, ok bool) { return s.departure, s.hasDeparture }

// IsTerminal reports whether the run ends at this stop
func (s *Stop) IsTerminal() bool { return s.terminal }

// EventTime is the departure time, or the arrival time for a terminal stop
func (s *Stop) EventTime() TimeOfDay {
	if s.hasDeparture {
		return s.departure
	}
	return s.arrival
}

// Line is one scheduled vehicle run
type Line struct {
	name  string
	stops []*Stop
}

// Name returns the line's display name, e.g. "RB 14 001"
func (l *Line) Name() string { return l.name }

func (l *Line) String() string { return l.name }

// Stops returns the stops in schedule order
func (l *Line) Stops() []*Stop {
	out := make([]*Stop, len(l.stops))
	copy(out, l.stops)
	return out
}

// Len returns the number of stops
func (l *Line) Len() int { return len(l.stops) }

// Origin returns the stop where the run starts
func (l *Line) Origin() *Stop { return l.stops[0] }

// Terminal returns the stop where the run ends
func (l *Line) Terminal() *Stop { return l.stops[len(l.stops)-1] }
