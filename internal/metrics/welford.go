package metrics

import (
	"math"
	"sync"
)

// WelfordState holds running statistics using Welford's online algorithm,
// so mean and standard deviation update in O(1) without keeping samples.
type WelfordState struct {
	Count int
	Mean  float64
	M2    float64 // sum of squared differences from the mean
}

// Update adds a new observation
func (w *WelfordState) Update(newValue float64) {
	w.Count++
	delta := newValue - w.Mean
	w.Mean += delta / float64(w.Count)
	delta2 := newValue - w.Mean
	w.M2 += delta * delta2
}

// StdDev returns the population standard deviation, 0 below two observations
func (w *WelfordState) StdDev() float64 {
	if w.Count < 2 {
		return 0
	}
	return math.Sqrt(w.M2 / float64(w.Count))
}

// SearchStats tracks the stations settled per search. Safe for concurrent use.
type SearchStats struct {
	mu       sync.Mutex
	expanded WelfordState
	max      int
}

// Snapshot is a point-in-time copy of SearchStats
type Snapshot struct {
	Searches       int     `json:"searches"`
	MeanExpanded   float64 `json:"mean_expanded"`
	StdDevExpanded float64 `json:"stddev_expanded"`
	MaxExpanded    int     `json:"max_expanded"`
}

// Record adds one search that settled n stations
func (s *SearchStats) Record(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expanded.Update(float64(n))
	if n > s.max {
		s.max = n
	}
	ObserveExpanded(n)
}

// Snapshot returns the current statistics
func (s *SearchStats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Searches:       s.expanded.Count,
		MeanExpanded:   s.expanded.Mean,
		StdDevExpanded: s.expanded.StdDev(),
		MaxExpanded:    s.max,
	}
}
