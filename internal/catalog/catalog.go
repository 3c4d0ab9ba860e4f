// Package catalog holds the raw station and line lists a timetable is built from.
//
// Catalogs come from YAML files, the SQLite/Postgres stores, GTFS feeds or the
// built-in sample. They carry times as strings; Build parses them and hands
// the result to timetable.Build, which does the fail-fast resolution.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

// StationRecord is one entry of the station catalog
type StationRecord struct {
	Tag  string `yaml:"tag" json:"tag" validate:"required"`
	Name string `yaml:"name" json:"name" validate:"required"`
}

// StopRecord is one stop of a line. Arrival is empty at the origin,
// Departure is empty at the terminal.
type StopRecord struct {
	Tag       string `yaml:"tag" json:"tag" validate:"required"`
	Arrival   string `yaml:"arrival,omitempty" json:"arrival,omitempty"`
	Departure string `yaml:"departure,omitempty" json:"departure,omitempty"`
}

// LineRecord is one scheduled run
type LineRecord struct {
	Name  string       `yaml:"name" json:"name" validate:"required"`
	Stops []StopRecord `yaml:"stops" json:"stops" validate:"min=2,dive"`
}

// Catalog is the complete input for a timetable
type Catalog struct {
	Stations []StationRecord `yaml:"stations" json:"stations" validate:"required,min=1,dive"`
	Lines    []LineRecord    `yaml:"lines" json:"lines" validate:"dive"`
}

// LoadYAML decodes and validates a catalog
func LoadYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// Validate checks the struct tags
func (c *Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Build parses every time and builds the timetable
func (c *Catalog) Build() (*timetable.Timetable, error) {
	stations := make([]timetable.Station, 0, len(c.Stations))
	for _, s := range c.Stations {
		stations = append(stations, timetable.Station{Tag: s.Tag, Name: s.Name})
	}

	lines := make([]timetable.LineSpec, 0, len(c.Lines))
	for _, l := range c.Lines {
		spec := timetable.LineSpec{Name: l.Name, Stops: make([]timetable.StopSpec, 0, len(l.Stops))}
		for i, s := range l.Stops {
			ss, err := s.spec()
			if err != nil {
				return nil, fmt.Errorf("line %q stop %d: %w", l.Name, i, err)
			}
			spec.Stops = append(spec.Stops, ss)
		}
		lines = append(lines, spec)
	}

	return timetable.Build(stations, lines)
}

func (s StopRecord) spec() (timetable.StopSpec, error) {
	ss := timetable.StopSpec{Tag: s.Tag}
	if s.Arrival != "" {
		t, err := timetable.ParseTimeOfDay(s.Arrival)
		if err != nil {
			return ss, err
		}
		ss.Arrival = &t
	}
	if s.Departure != "" {
		t, err := timetable.ParseTimeOfDay(s.Departure)
		if err != nil {
			return ss, err
		}
		ss.Departure = &t
	}
	ss.Terminal = s.Departure == ""
	return ss, nil
}
