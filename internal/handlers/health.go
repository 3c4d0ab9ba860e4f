package handlers

import (
	"net/http"
	"time"

	"github.com/mini-rodalies-3d/timetable/internal/models"
)

// HealthHandler reports the loaded timetable and search statistics
type HealthHandler struct {
	planner Planner
	source  string
}

// NewHealthHandler creates a health handler; source names where the catalog came from
func NewHealthHandler(p Planner, source string) *HealthHandler {
	return &HealthHandler{planner: p, source: source}
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	tt := h.planner.Timetable()
	stats := h.planner.Stats()

	writeJSON(w, http.StatusOK, models.Health{
		Status:   "ok",
		Source:   h.source,
		Stations: len(tt.Stations()),
		Lines:    len(tt.Lines()),
		Search: models.SearchStats{
			Searches:       stats.Searches,
			MeanExpanded:   stats.MeanExpanded,
			StdDevExpanded: stats.StdDevExpanded,
			MaxExpanded:    stats.MaxExpanded,
		},
		Timestamp: time.Now().UTC(),
	})
}
