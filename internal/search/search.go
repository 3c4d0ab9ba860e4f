// Package search answers earliest-arrival queries over a timetable.
//
// The graph is never materialised: edges come from timetable neighbour
// expansion at the moment a station is settled, so the search is a
// label-setting Dijkstra over a time-expanded graph. Edge weights are wait
// plus ride time and never negative, so a settled station is final.
package search

import (
	"errors"
	"fmt"

	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

// ErrInvalidInput is returned for queries the search cannot start
var ErrInvalidInput = errors.New("invalid input")

// Graph is the part of a timetable the search reads
type Graph interface {
	Stations() []*timetable.Station
	Contains(s *timetable.Station) bool
	Neighbours(s *timetable.Station, now timetable.TimeOfDay) timetable.Neighbours
}

// Query asks for the earliest arrival at To leaving From no earlier than Start
type Query struct {
	From  *timetable.Station
	To    *timetable.Station
	Start timetable.TimeOfDay
}

// Result is the outcome of one query. Found is false when To cannot be
// reached; Segments is then empty. It is never partial.
type Result struct {
	Query    Query
	Found    bool
	Arrival  timetable.TimeOfDay
	Segments []Segment
	// Expanded counts the stations settled before the search stopped
	Expanded int
}

// Option configures a search
type Option func(*options)

type options struct {
	frontier    FrontierKind
	newFrontier func(labels []*Label) Frontier
}

// WithFrontier picks the selection strategy; the default is LinearScan
func WithFrontier(kind FrontierKind) Option {
	return func(o *options) {
		o.frontier = kind
		o.newFrontier = nil
	}
}

// WithFrontierFunc plugs in a custom selection strategy. newFrontier is
// called once per search with every label in station order, all unreached.
func WithFrontierFunc(newFrontier func(labels []*Label) Frontier) Option {
	return func(o *options) {
		o.newFrontier = newFrontier
	}
}

// Search runs one earliest-arrival query. Unreachable destinations are a
// normal result with Found == false; only malformed queries return an error.
func Search(g Graph, q Query, opts ...Option) (*Result, error) {
	o := options{frontier: LinearScan}
	for _, opt := range opts {
		opt(&o)
	}

	if !g.Contains(q.From) {
		return nil, fmt.Errorf("%w: origin %v is not in the timetable", ErrInvalidInput, q.From)
	}
	if !g.Contains(q.To) {
		return nil, fmt.Errorf("%w: destination %v is not in the timetable", ErrInvalidInput, q.To)
	}

	stations := g.Stations()
	labels := make([]*Label, len(stations))
	byStation := make(map[*timetable.Station]*Label, len(stations))
	for i, s := range stations {
		l := &Label{Station: s, index: i}
		labels[i] = l
		byStation[s] = l
	}

	origin := byStation[q.From]
	origin.time, origin.reached = q.Start, true

	var frontier Frontier
	if o.newFrontier != nil {
		frontier = o.newFrontier(labels)
	} else {
		frontier = newFrontier(o.frontier, labels)
	}
	frontier.Improved(origin)

	result := &Result{Query: q, Segments: []Segment{}}

	var target *Label
	for {
		current := frontier.Next()
		if current == nil || !current.reached {
			return result, nil
		}
		if current.Station == q.To {
			target = current
			break
		}

		current.Visited = true
		result.Expanded++

		for station, edge := range g.Neighbours(current.Station, current.time) {
			next, ok := byStation[station]
			if !ok || next.Visited || !next.improves(edge.Arrival) {
				continue
			}
			next.time, next.reached = edge.Arrival, true
			next.Line = edge.Line
			next.Predecessor = current.Station
			next.edge = edge
			frontier.Improved(next)
		}
	}

	segments, ok := reconstruct(byStation, origin, target)
	if !ok {
		return result, nil
	}

	result.Found = true
	result.Arrival = target.time
	result.Segments = segments
	return result, nil
}
