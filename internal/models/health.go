package models

import "time"

// SearchStats summarises the searches served since startup
type SearchStats struct {
	Searches       int     `json:"searches"`
	MeanExpanded   float64 `json:"meanExpanded"`
	StdDevExpanded float64 `json:"stdDevExpanded"`
	MaxExpanded    int     `json:"maxExpanded"`
}

// Health is the response for GET /health
type Health struct {
	Status    string      `json:"status"`
	Source    string      `json:"source"`
	Stations  int         `json:"stations"`
	Lines     int         `json:"lines"`
	Search    SearchStats `json:"search"`
	Timestamp time.Time   `json:"timestamp"`
}
