package repository

import (
	"errors"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
)

// ErrEmptyCatalog is returned when the store holds no stations
var ErrEmptyCatalog = errors.New("catalog store is empty")

const stationsQuery = `
	SELECT tag, name
	FROM stations
	ORDER BY position
`

const stopsQuery = `
	SELECT l.line_id, l.name, s.station_tag, s.arrival, s.departure
	FROM lines l
	JOIN line_stops s ON s.line_id = l.line_id
	ORDER BY l.position, s.stop_sequence
`

// catalogRows collects scanned rows into a catalog. Stop rows must arrive
// grouped by line in line order.
type catalogRows struct {
	c      catalog.Catalog
	lineID int64
}

func (r *catalogRows) addStation(tag, name string) {
	r.c.Stations = append(r.c.Stations, catalog.StationRecord{Tag: tag, Name: name})
}

func (r *catalogRows) addStop(lineID int64, lineName, tag string, arrival, departure *string) {
	if len(r.c.Lines) == 0 || lineID != r.lineID {
		r.c.Lines = append(r.c.Lines, catalog.LineRecord{Name: lineName})
		r.lineID = lineID
	}
	line := &r.c.Lines[len(r.c.Lines)-1]
	line.Stops = append(line.Stops, catalog.StopRecord{
		Tag:       tag,
		Arrival:   deref(arrival),
		Departure: deref(departure),
	})
}

func (r *catalogRows) catalog() (*catalog.Catalog, error) {
	if len(r.c.Stations) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &r.c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
