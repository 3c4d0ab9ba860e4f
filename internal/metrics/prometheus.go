package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query kinds
const (
	KindConnection = "connection"
	KindDepartures = "departures"
)

// Query outcomes
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

var (
	queryCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_queries_total",
		Help: "Number of planner queries by kind and outcome",
	}, []string{"kind", "outcome"})
	queryLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_query_duration_seconds",
		Help:    "Time spent answering planner queries",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"kind"})
	expandedStations = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "timetable_search_expanded_stations",
		Help:       "Stations settled per connection search",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})
	cacheCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_query_cache_total",
		Help: "Connection cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(queryCount, queryLatency, expandedStations, cacheCount)
}

// ObserveQuery records one finished query
func ObserveQuery(kind, outcome string, elapsed time.Duration) {
	queryCount.With(prometheus.Labels{"kind": kind, "outcome": outcome}).Inc()
	queryLatency.With(prometheus.Labels{"kind": kind}).Observe(elapsed.Seconds())
}

// ObserveExpanded records how many stations a search settled
func ObserveExpanded(n int) {
	expandedStations.Observe(float64(n))
}

// CacheHit counts a connection served from cache
func CacheHit() {
	cacheCount.With(prometheus.Labels{"result": "hit"}).Inc()
}

// CacheMiss counts a connection that had to be searched
func CacheMiss() {
	cacheCount.With(prometheus.Labels{"result": "miss"}).Inc()
}
