package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mini-rodalies-3d/timetable/internal/metrics"
	"github.com/mini-rodalies-3d/timetable/internal/models"
	"github.com/mini-rodalies-3d/timetable/internal/planner"
	"github.com/mini-rodalies-3d/timetable/internal/search"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

// Planner defines the queries the HTTP layer needs
type Planner interface {
	Timetable() *timetable.Timetable
	Station(tag string) (*timetable.Station, error)
	Departures(ctx context.Context, tag, at string) ([]timetable.Departure, error)
	Connection(ctx context.Context, from, to, at string) (*search.Result, error)
	Stats() metrics.Snapshot
}

// TimetableHandler handles station, departure and connection requests
type TimetableHandler struct {
	planner Planner
}

// NewTimetableHandler creates a new handler with the given planner
func NewTimetableHandler(p Planner) *TimetableHandler {
	return &TimetableHandler{planner: p}
}

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ListStations handles GET /api/stations
func (h *TimetableHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations := h.planner.Timetable().Stations()

	response := models.StationsResponse{
		Stations: make([]models.Station, 0, len(stations)),
		Count:    len(stations),
	}
	for _, s := range stations {
		response.Stations = append(response.Stations, toStation(s))
	}

	// the timetable never changes while the process runs
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, response)
}

// GetStation handles GET /api/stations/{tag}
func (h *TimetableHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	station, err := h.planner.Station(tag)
	if err != nil {
		writeError(w, http.StatusNotFound, "Station not found", map[string]interface{}{"tag": tag})
		return
	}

	writeJSON(w, http.StatusOK, toStation(station))
}

// GetDepartures handles GET /api/stations/{tag}/departures?at=HH:MM
func (h *TimetableHandler) GetDepartures(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	at := r.URL.Query().Get("at")

	board, err := h.planner.Departures(r.Context(), tag, at)
	switch {
	case errors.Is(err, timetable.ErrStationNotFound):
		writeError(w, http.StatusNotFound, "Station not found", map[string]interface{}{"tag": tag})
		return
	case errors.Is(err, planner.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid departure query", map[string]interface{}{"reason": err.Error()})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to list departures", map[string]interface{}{"internal": err.Error()})
		return
	}

	station, _ := h.planner.Station(tag)
	from := "00:00"
	if at != "" {
		from = at
	}

	response := models.DeparturesResponse{
		Station:    toStation(station),
		From:       from,
		Departures: make([]models.Departure, 0, len(board)),
		Count:      len(board),
	}
	for _, d := range board {
		response.Departures = append(response.Departures, models.Departure{
			Time:        d.Time.String(),
			Kind:        d.Kind.String(),
			Line:        d.Line.Name(),
			Direction:   d.Direction(),
			Counterpart: toStation(d.Counterpart()),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// GetConnection handles GET /api/connections?from=TAG&to=TAG&at=HH:MM.
// An unreachable destination is a 200 with found=false.
func (h *TimetableHandler) GetConnection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.ConnectionRequest{From: q.Get("from"), To: q.Get("to"), At: q.Get("at")}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	res, err := h.planner.Connection(r.Context(), req.From, req.To, req.At)
	if errors.Is(err, planner.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid connection query", map[string]interface{}{"reason": err.Error()})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to search connection", map[string]interface{}{"internal": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, toConnection(res))
}

func toStation(s *timetable.Station) models.Station {
	if s == nil {
		return models.Station{}
	}
	return models.Station{Tag: s.Tag, Name: s.Name}
}

func toConnection(res *search.Result) models.Connection {
	c := models.Connection{
		From:             toStation(res.Query.From),
		To:               toStation(res.Query.To),
		Start:            res.Query.Start.String(),
		Found:            res.Found,
		Segments:         make([]models.Segment, 0, len(res.Segments)),
		ExpandedStations: res.Expanded,
	}
	if res.Found {
		arrival := res.Arrival.String()
		c.Arrival = &arrival
	}
	for _, seg := range res.Segments {
		c.Segments = append(c.Segments, models.Segment{
			Line:      seg.Line.Name(),
			From:      toStation(seg.Board.Station()),
			To:        toStation(seg.Alight.Station()),
			Departure: seg.Departure().String(),
			Arrival:   seg.Arrival().String(),
		})
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]interface{}) {
	writeJSON(w, status, ErrorResponse{Error: message, Details: details})
}
