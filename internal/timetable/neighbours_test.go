package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighboursSample(t *testing.T) {
	tt := sampleTimetable(t)

	t.Run("stuttgart before both runs", func(t *testing.T) {
		n := tt.Neighbours(mustResolve(t, tt, "SGH"), at("17:00"))
		require.Len(t, n, 1)

		edge, ok := n[mustResolve(t, tt, "BÖB")]
		require.True(t, ok)
		assert.Equal(t, at("18:15"), edge.Arrival)
		assert.Equal(t, "RB 14 001", edge.Line.Name())
		assert.Equal(t, "SGH", edge.From.Station().Tag)
		assert.Equal(t, "BÖB", edge.To.Station().Tag)
	})

	t.Run("departure equal to now counts", func(t *testing.T) {
		n := tt.Neighbours(mustResolve(t, tt, "SGH"), at("17:55"))
		assert.Len(t, n, 1)
	})

	t.Run("after the last departure", func(t *testing.T) {
		n := tt.Neighbours(mustResolve(t, tt, "SGH"), at("17:56"))
		assert.Empty(t, n)
	})

	t.Run("terminal only station", func(t *testing.T) {
		n := tt.Neighbours(mustResolve(t, tt, "HOB"), at("00:00"))
		assert.Empty(t, n)
	})

	t.Run("aulendorf", func(t *testing.T) {
		n := tt.Neighbours(mustResolve(t, tt, "ALD"), at("14:00"))
		require.Len(t, n, 1)
		assert.Equal(t, at("15:12"), n[mustResolve(t, tt, "ALH")].Arrival)
	})
}

func TestNeighboursEarliestArrivalWins(t *testing.T) {
	stations := []Station{{Tag: "A", Name: "Alpha"}, {Tag: "B", Name: "Beta"}}
	lines := []LineSpec{
		{Name: "slow", Stops: []StopSpec{Start("A", at("10:00")), End("B", at("11:00"))}},
		{Name: "fast", Stops: []StopSpec{Start("A", at("10:10")), End("B", at("10:30"))}},
		{Name: "twin", Stops: []StopSpec{Start("A", at("10:15")), End("B", at("10:30"))}},
	}
	tt, err := Build(stations, lines)
	require.NoError(t, err)

	n := tt.Neighbours(mustResolve(t, tt, "A"), at("09:00"))
	require.Len(t, n, 1)

	edge := n[mustResolve(t, tt, "B")]
	assert.Equal(t, at("10:30"), edge.Arrival)
	// equal arrivals keep the line listed first
	assert.Equal(t, "fast", edge.Line.Name())
}

func TestNeighboursOneEdgePerLine(t *testing.T) {
	// a loop that calls at A twice; only the first qualifying call is used
	stations := []Station{{Tag: "A", Name: "Alpha"}, {Tag: "B", Name: "Beta"}, {Tag: "C", Name: "Gamma"}}
	lines := []LineSpec{{Name: "loop", Stops: []StopSpec{
		Start("A", at("10:00")),
		Via("B", at("10:10"), at("10:11")),
		Via("A", at("10:20"), at("10:21")),
		End("C", at("10:30")),
	}}}
	tt, err := Build(stations, lines)
	require.NoError(t, err)

	a := mustResolve(t, tt, "A")

	n := tt.Neighbours(a, at("09:00"))
	require.Len(t, n, 1)
	assert.Contains(t, n, mustResolve(t, tt, "B"))

	n = tt.Neighbours(a, at("10:05"))
	require.Len(t, n, 1)
	assert.Equal(t, at("10:30"), n[mustResolve(t, tt, "C")].Arrival)
}

func TestNeighboursNeverArriveBeforeNow(t *testing.T) {
	tt := sampleTimetable(t)

	for _, s := range tt.Stations() {
		for now := at("14:00"); now <= at("19:00"); now += 5 * 60 {
			for station, edge := range tt.Neighbours(s, now) {
				assert.GreaterOrEqual(t, int(edge.Arrival), int(now), "%s -> %s at %s", s.Tag, station.Tag, now)
				assert.Same(t, station, edge.Station)
				assert.Equal(t, edge.From.Index()+1, edge.To.Index())
			}
		}
	}
}
