package catalog

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/mini-rodalies-3d/timetable/internal/static/gtfs"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

var errUntimedEndpoint = errors.New("first and last stop need a time")

// FromGTFS turns every trip of a static feed into a line. Only stops that
// some trip calls at become stations. Service calendars are ignored: the
// catalog describes a single operating day.
func FromGTFS(data *gtfs.Data) *Catalog {
	routes := make(map[string]gtfs.Route, len(data.Routes))
	for _, r := range data.Routes {
		routes[r.RouteID] = r
	}

	byTrip := make(map[string][]gtfs.StopTime)
	served := make(map[string]bool)
	for _, st := range data.StopTimes {
		byTrip[st.TripID] = append(byTrip[st.TripID], st)
		served[st.StopID] = true
	}

	c := &Catalog{}
	for _, s := range data.Stops {
		if !served[s.StopID] {
			continue
		}
		name := s.StopName
		if name == "" {
			name = s.StopID
		}
		c.Stations = append(c.Stations, StationRecord{Tag: s.StopID, Name: name})
	}

	skipped, untimed := 0, 0
	for _, trip := range data.Trips {
		times := byTrip[trip.TripID]
		if len(times) < 2 {
			skipped++
			continue
		}
		sort.SliceStable(times, func(i, j int) bool {
			return times[i].StopSequence < times[j].StopSequence
		})
		if err := interpolate(times); err != nil {
			log.Printf("Warning: skipping GTFS trip %s: %v", trip.TripID, err)
			untimed++
			continue
		}

		line := LineRecord{Name: lineName(routes[trip.RouteID], trip)}
		last := len(times) - 1
		for i, st := range times {
			arr, dep := st.ArrivalTime, st.DepartureTime
			if arr == "" {
				arr = dep
			}
			if dep == "" {
				dep = arr
			}
			switch i {
			case 0:
				line.Stops = append(line.Stops, StopRecord{Tag: st.StopID, Departure: dep})
			case last:
				line.Stops = append(line.Stops, StopRecord{Tag: st.StopID, Arrival: arr})
			default:
				line.Stops = append(line.Stops, StopRecord{Tag: st.StopID, Arrival: arr, Departure: dep})
			}
		}
		c.Lines = append(c.Lines, line)
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d GTFS trips with fewer than two stop times", skipped)
	}
	if untimed > 0 {
		log.Printf("Warning: skipped %d GTFS trips with unusable stop times", untimed)
	}

	return c
}

func lineName(route gtfs.Route, trip gtfs.Trip) string {
	prefix := route.RouteShortName
	if prefix == "" {
		prefix = route.RouteLongName
	}
	id := trip.TripName
	if id == "" {
		id = trip.TripID
	}
	if prefix == "" {
		return id
	}
	return prefix + " " + id
}

// interpolate fills stops that carry neither an arrival nor a departure
// (non-timepoints) with times spread evenly between the surrounding timed
// stops. times must be sorted by stop sequence.
func interpolate(times []gtfs.StopTime) error {
	if !timed(times[0]) || !timed(times[len(times)-1]) {
		return errUntimedEndpoint
	}

	prev := 0
	for i := 1; i < len(times); i++ {
		if !timed(times[i]) {
			continue
		}
		if i-prev > 1 {
			from, err := eventTime(times[prev].DepartureTime, times[prev].ArrivalTime)
			if err != nil {
				return fmt.Errorf("stop %s: %w", times[prev].StopID, err)
			}
			to, err := eventTime(times[i].ArrivalTime, times[i].DepartureTime)
			if err != nil {
				return fmt.Errorf("stop %s: %w", times[i].StopID, err)
			}
			span := i - prev
			for k := prev + 1; k < i; k++ {
				t := from + (to-from)*timetable.TimeOfDay(k-prev)/timetable.TimeOfDay(span)
				times[k].ArrivalTime = t.String()
				times[k].DepartureTime = t.String()
			}
		}
		prev = i
	}
	return nil
}

func timed(st gtfs.StopTime) bool {
	return st.ArrivalTime != "" || st.DepartureTime != ""
}

// eventTime parses the preferred column, falling back to the other one
func eventTime(preferred, fallback string) (timetable.TimeOfDay, error) {
	if preferred == "" {
		preferred = fallback
	}
	return timetable.ParseTimeOfDay(preferred)
}
