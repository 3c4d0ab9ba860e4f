package timetable

// Edge is one ride from a station to the next stop of a line
type Edge struct {
	Station *Station
	Arrival TimeOfDay
	Line    *Line
	From    *Stop
	To      *Stop
}

// Neighbours maps each reachable station to its earliest edge
type Neighbours map[*Station]Edge

// Neighbours returns, for every line departing from station at or after now,
// the next stop downstream on that line. Each line contributes at most one
// edge: the one after its first qualifying stop at this station.
//
// When several lines reach the same station the earliest arrival wins. An
// exact tie keeps the line that comes first in catalog order; that choice is
// stable but carries no meaning.
func (t *Timetable) Neighbours(station *Station, now TimeOfDay) Neighbours {
	result := Neighbours{}
	used := make(map[*Line]struct{})

	for _, stop := range t.stopsAt[station] {
		if _, ok := used[stop.line]; ok {
			continue
		}
		dep, ok := stop.Departure()
		if !ok || dep < now {
			continue
		}
		used[stop.line] = struct{}{}

		next := stop.line.stops[stop.index+1]
		if cur, ok := result[next.station]; ok && cur.Arrival <= next.arrival {
			continue
		}
		result[next.station] = Edge{
			Station: next.station,
			Arrival: next.arrival,
			Line:    stop.line,
			From:    stop,
			To:      next,
		}
	}

	return result
}
