// Package planner answers departure and connection queries against one
// built timetable. It resolves station tags and time strings, caches
// connection results and records query metrics.
package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bluele/gcache"
	"github.com/google/uuid"

	"github.com/mini-rodalies-3d/timetable/internal/metrics"
	"github.com/mini-rodalies-3d/timetable/internal/search"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

// ErrInvalidInput marks queries with unknown stations or malformed times
var ErrInvalidInput = search.ErrInvalidInput

// Planner is safe for concurrent use; the timetable it holds is never modified
type Planner struct {
	tt       *timetable.Timetable
	frontier search.FrontierKind
	cache    gcache.Cache
	stats    metrics.SearchStats
}

// Option configures a Planner
type Option func(*Planner)

// WithFrontier selects the search frontier
func WithFrontier(kind search.FrontierKind) Option {
	return func(p *Planner) {
		p.frontier = kind
	}
}

// WithCacheSize enables an LRU of n connection results; 0 disables caching
func WithCacheSize(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.cache = gcache.New(n).LRU().Build()
		} else {
			p.cache = nil
		}
	}
}

// New creates a planner with a linear scan frontier and no cache
func New(tt *timetable.Timetable, opts ...Option) *Planner {
	p := &Planner{tt: tt, frontier: search.LinearScan}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timetable returns the timetable the planner queries
func (p *Planner) Timetable() *timetable.Timetable {
	return p.tt
}

// Stats returns the running search statistics
func (p *Planner) Stats() metrics.Snapshot {
	return p.stats.Snapshot()
}

// Station looks up a station by tag
func (p *Planner) Station(tag string) (*timetable.Station, error) {
	return p.tt.Resolve(tag)
}

// Departures lists the events at a station from at onwards. An empty at
// means the start of the day.
func (p *Planner) Departures(ctx context.Context, tag, at string) ([]timetable.Departure, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	station, err := p.tt.Resolve(tag)
	if err != nil {
		metrics.ObserveQuery(metrics.KindDepartures, metrics.OutcomeInvalid, time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var now timetable.TimeOfDay
	if at != "" {
		if now, err = timetable.ParseTimeOfDay(at); err != nil {
			metrics.ObserveQuery(metrics.KindDepartures, metrics.OutcomeInvalid, time.Since(start))
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	board := p.tt.Departures(station, now)
	metrics.ObserveQuery(metrics.KindDepartures, metrics.OutcomeFound, time.Since(start))
	return board, nil
}

// Connection finds the earliest arrival at to when leaving from no earlier
// than at. An unreachable destination is a Result with Found == false.
func (p *Planner) Connection(ctx context.Context, from, to, at string) (*search.Result, error) {
	start := time.Now()
	requestID := uuid.New().String()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := p.query(from, to, at)
	if err != nil {
		metrics.ObserveQuery(metrics.KindConnection, metrics.OutcomeInvalid, time.Since(start))
		log.Printf("[%s] rejected connection query %s -> %s at %q: %v", requestID, from, to, at, err)
		return nil, err
	}

	key := fmt.Sprintf("%s|%s|%d|%s", q.From.Tag, q.To.Tag, q.Start.Seconds(), p.frontier)
	if p.cache != nil {
		if cached, err := p.cache.Get(key); err == nil {
			if res, ok := cached.(*search.Result); ok {
				metrics.CacheHit()
				metrics.ObserveQuery(metrics.KindConnection, outcome(res), time.Since(start))
				return res, nil
			}
		}
		metrics.CacheMiss()
	}

	res, err := search.Search(p.tt, q, search.WithFrontier(p.frontier))
	if err != nil {
		metrics.ObserveQuery(metrics.KindConnection, metrics.OutcomeInvalid, time.Since(start))
		return nil, err
	}
	p.stats.Record(res.Expanded)

	if p.cache != nil {
		if err := p.cache.Set(key, res); err != nil {
			log.Printf("Warning: [%s] failed to cache connection: %v", requestID, err)
		}
	}

	elapsed := time.Since(start)
	metrics.ObserveQuery(metrics.KindConnection, outcome(res), elapsed)
	log.Printf("[%s] connection %s -> %s at %s: found=%t expanded=%d (%s)",
		requestID, q.From.Tag, q.To.Tag, q.Start, res.Found, res.Expanded, elapsed)

	return res, nil
}

func (p *Planner) query(from, to, at string) (search.Query, error) {
	origin, err := p.tt.Resolve(from)
	if err != nil {
		return search.Query{}, fmt.Errorf("%w: origin: %w", ErrInvalidInput, err)
	}
	destination, err := p.tt.Resolve(to)
	if err != nil {
		return search.Query{}, fmt.Errorf("%w: destination: %w", ErrInvalidInput, err)
	}
	startAt, err := timetable.ParseTimeOfDay(at)
	if err != nil {
		return search.Query{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return search.Query{From: origin, To: destination, Start: startAt}, nil
}

func outcome(res *search.Result) string {
	if res.Found {
		return metrics.OutcomeFound
	}
	return metrics.OutcomeUnreachable
}
