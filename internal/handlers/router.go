package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every endpoint onto a chi router
func NewRouter(p Planner, source string, allowedOrigins []string) http.Handler {
	timetableHandler := NewTimetableHandler(p)
	healthHandler := NewHealthHandler(p, source)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", healthHandler.GetHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/stations", timetableHandler.ListStations)
	r.Get("/api/stations/{tag}", timetableHandler.GetStation)
	r.Get("/api/stations/{tag}/departures", timetableHandler.GetDepartures)
	r.Get("/api/connections", timetableHandler.GetConnection)

	return r
}
