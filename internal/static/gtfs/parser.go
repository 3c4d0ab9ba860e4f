package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parse reads a GTFS zip file from disk
func Parse(zipPath string) (*Data, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	return ParseZip(&r.Reader)
}

// ParseZip reads the tables out of an opened GTFS archive. Missing optional
// files are skipped; stops.txt, trips.txt and stop_times.txt are required.
func ParseZip(r *zip.Reader) (*Data, error) {
	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}

	for _, name := range []string{"stops.txt", "trips.txt", "stop_times.txt"} {
		if _, ok := files[name]; !ok {
			return nil, fmt.Errorf("gtfs archive is missing %s", name)
		}
	}

	data := &Data{}

	tables := []struct {
		name     string
		required bool
		row      func(row record)
	}{
		{"agency.txt", false, func(row record) {
			data.Agency = append(data.Agency, Agency{
				AgencyID:   row.get("agency_id"),
				AgencyName: row.get("agency_name"),
				AgencyURL:  row.get("agency_url"),
			})
		}},
		{"routes.txt", false, func(row record) {
			data.Routes = append(data.Routes, Route{
				RouteID:        row.get("route_id"),
				AgencyID:       row.get("agency_id"),
				RouteShortName: row.get("route_short_name"),
				RouteLongName:  row.get("route_long_name"),
				RouteType:      row.getInt("route_type"),
			})
		}},
		{"stops.txt", true, func(row record) {
			data.Stops = append(data.Stops, Stop{
				StopID:        row.get("stop_id"),
				StopCode:      row.get("stop_code"),
				StopName:      row.get("stop_name"),
				LocationType:  row.getInt("location_type"),
				ParentStation: row.get("parent_station"),
			})
		}},
		{"trips.txt", true, func(row record) {
			data.Trips = append(data.Trips, Trip{
				RouteID:      row.get("route_id"),
				ServiceID:    row.get("service_id"),
				TripID:       row.get("trip_id"),
				TripHeadsign: row.get("trip_headsign"),
				TripName:     row.get("trip_short_name"),
				DirectionID:  row.getInt("direction_id"),
			})
		}},
		{"stop_times.txt", true, func(row record) {
			data.StopTimes = append(data.StopTimes, StopTime{
				TripID:        row.get("trip_id"),
				ArrivalTime:   row.get("arrival_time"),
				DepartureTime: row.get("departure_time"),
				StopID:        row.get("stop_id"),
				StopSequence:  row.getInt("stop_sequence"),
			})
		}},
	}

	for _, table := range tables {
		f, ok := files[table.name]
		if !ok {
			continue
		}
		if err := readTable(f, table.row); err != nil {
			if table.required {
				return nil, fmt.Errorf("failed to parse %s: %w", table.name, err)
			}
			log.Printf("Warning: failed to parse %s: %v", table.name, err)
		}
	}

	log.Printf("GTFS parsed: %d routes, %d stops, %d trips, %d stop times",
		len(data.Routes), len(data.Stops), len(data.Trips), len(data.StopTimes))

	return data, nil
}

type record struct {
	fields []string
	index  map[string]int
}

func (r record) get(field string) string {
	if i, ok := r.index[field]; ok && i < len(r.fields) {
		return strings.TrimSpace(r.fields[i])
	}
	return ""
}

func (r record) getInt(field string) int {
	v, _ := strconv.Atoi(r.get(field))
	return v
}

// readTable streams one CSV file. Malformed rows are skipped.
func readTable(f *zip.File, fn func(record)) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		// some feeds start with a UTF-8 BOM
		index[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	skipped := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		fn(record{fields: fields, index: index})
	}
	if skipped > 0 {
		log.Printf("Warning: skipped %d malformed rows in %s", skipped, f.Name)
	}

	return nil
}
