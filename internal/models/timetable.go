package models

import "errors"

// Station is the API view of a timetable station
type Station struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// StationsResponse is the response for GET /api/stations
type StationsResponse struct {
	Stations []Station `json:"stations"`
	Count    int       `json:"count"`
}

// Departure is one row of a departure board. Kind is "departure" or
// "arrival"; Direction reads "to <terminal>" or "from <origin>".
type Departure struct {
	Time        string  `json:"time"`
	Kind        string  `json:"kind"`
	Line        string  `json:"line"`
	Direction   string  `json:"direction"`
	Counterpart Station `json:"counterpart"`
}

// DeparturesResponse is the response for GET /api/stations/{tag}/departures
type DeparturesResponse struct {
	Station    Station     `json:"station"`
	From       string      `json:"from"`
	Departures []Departure `json:"departures"`
	Count      int         `json:"count"`
}

// Segment is one ride of a connection
type Segment struct {
	Line      string  `json:"line"`
	From      Station `json:"from"`
	To        Station `json:"to"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
}

// Connection is the response for GET /api/connections. Arrival is omitted
// when Found is false.
type Connection struct {
	From             Station   `json:"from"`
	To               Station   `json:"to"`
	Start            string    `json:"start"`
	Found            bool      `json:"found"`
	Arrival          *string   `json:"arrival,omitempty"`
	Segments         []Segment `json:"segments"`
	ExpandedStations int       `json:"expandedStations"`
}

// ConnectionRequest holds the query parameters of GET /api/connections
type ConnectionRequest struct {
	From string
	To   string
	At   string
}

// Validate checks that every parameter is present
func (r *ConnectionRequest) Validate() error {
	if r.From == "" {
		return errors.New("from is required")
	}
	if r.To == "" {
		return errors.New("to is required")
	}
	if r.At == "" {
		return errors.New("at is required")
	}
	return nil
}
