package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
	"github.com/mini-rodalies-3d/timetable/internal/search"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

func newSamplePlanner(t *testing.T, opts ...Option) *Planner {
	t.Helper()
	tt, err := catalog.Sample().Build()
	require.NoError(t, err)
	return New(tt, opts...)
}

func TestConnection(t *testing.T) {
	p := newSamplePlanner(t)

	res, err := p.Connection(context.Background(), "ALD", "HOB", "14:00")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, timetable.MustParseTimeOfDay("18:48"), res.Arrival)
	assert.Len(t, res.Segments, 2)

	stats := p.Stats()
	assert.Equal(t, 1, stats.Searches)
	assert.Equal(t, 21, stats.MaxExpanded)
}

func TestConnectionUnreachableIsNotAnError(t *testing.T) {
	p := newSamplePlanner(t)

	res, err := p.Connection(context.Background(), "HOB", "ALD", "08:00")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestConnectionInvalidInput(t *testing.T) {
	p := newSamplePlanner(t)

	tests := []struct {
		name         string
		from, to, at string
		wrapped      error
	}{
		{"unknown origin", "XXX", "HOB", "14:00", timetable.ErrStationNotFound},
		{"unknown destination", "ALD", "XXX", "14:00", timetable.ErrStationNotFound},
		{"bad time", "ALD", "HOB", "2pm", timetable.ErrInvalidTime},
		{"missing time", "ALD", "HOB", "", timetable.ErrInvalidTime},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Connection(context.Background(), tc.from, tc.to, tc.at)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tc.wrapped)
		})
	}
}

func TestConnectionCache(t *testing.T) {
	p := newSamplePlanner(t, WithCacheSize(8), WithFrontier(search.BinaryHeap))

	first, err := p.Connection(context.Background(), "ALD", "HOB", "14:00")
	require.NoError(t, err)
	second, err := p.Connection(context.Background(), "ALD", "HOB", "14:00")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, p.Stats().Searches, "second query is served from cache")

	// same minute written differently hits the same entry
	third, err := p.Connection(context.Background(), "ALD", "HOB", "14:00:00")
	require.NoError(t, err)
	assert.Same(t, first, third)
}

func TestConnectionWithoutCacheSearchesEveryTime(t *testing.T) {
	p := newSamplePlanner(t, WithCacheSize(0))

	for i := 0; i < 3; i++ {
		_, err := p.Connection(context.Background(), "ALD", "SGH", "15:00")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.Stats().Searches)
}

func TestConnectionCancelledContext(t *testing.T) {
	p := newSamplePlanner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Connection(ctx, "ALD", "HOB", "14:00")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDepartures(t *testing.T) {
	p := newSamplePlanner(t)

	board, err := p.Departures(context.Background(), "SGH", "17:00")
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "from Aulendorf", board[0].Direction())
	assert.Equal(t, "to Horb", board[1].Direction())

	all, err := p.Departures(context.Background(), "SGH", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = p.Departures(context.Background(), "XXX", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = p.Departures(context.Background(), "SGH", "25:99")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStation(t *testing.T) {
	p := newSamplePlanner(t)

	s, err := p.Station("HOB")
	require.NoError(t, err)
	assert.Equal(t, "Horb", s.Name)

	_, err = p.Station("XXX")
	assert.ErrorIs(t, err, timetable.ErrStationNotFound)
}
