package search

import "github.com/mini-rodalies-3d/timetable/internal/timetable"

// Segment is one ride: board a line at one stop and leave it at another
type Segment struct {
	Board  *timetable.Stop
	Alight *timetable.Stop
	Line   *timetable.Line
}

// Departure is when the line leaves the boarding stop
func (s Segment) Departure() timetable.TimeOfDay {
	t, _ := s.Board.Departure()
	return t
}

// Arrival is when the line reaches the alighting stop
func (s Segment) Arrival() timetable.TimeOfDay {
	t, _ := s.Alight.Arrival()
	return t
}

// reconstruct follows predecessor links from target back to origin and merges
// consecutive hops on the same run into one segment. ok is false if the chain
// breaks before reaching the origin.
func reconstruct(byStation map[*timetable.Station]*Label, origin, target *Label) (segments []Segment, ok bool) {
	segments = []Segment{}

	current := target
	for steps := 0; current.Station != origin.Station; steps++ {
		if current.Predecessor == nil || steps > len(byStation) {
			return nil, false
		}

		edge := current.edge
		if len(segments) > 0 && segments[0].Line == edge.Line && segments[0].Board == edge.To {
			segments[0].Board = edge.From
		} else {
			segments = append([]Segment{{Board: edge.From, Alight: edge.To, Line: edge.Line}}, segments...)
		}

		current = byStation[current.Predecessor]
	}

	return segments, true
}
