package timetable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSample(t *testing.T) {
	tt := sampleTimetable(t)

	require.Len(t, tt.Stations(), 22)
	require.Len(t, tt.Lines(), 2)

	rb := tt.Lines()[0]
	assert.Equal(t, "RB 14 001", rb.Name())
	assert.Equal(t, 8, rb.Len())
	assert.Equal(t, "SGH", rb.Origin().Station().Tag)
	assert.Equal(t, "HOB", rb.Terminal().Station().Tag)
	assert.True(t, rb.Terminal().IsTerminal())
	assert.False(t, rb.Origin().IsTerminal())

	_, ok := rb.Origin().Arrival()
	assert.False(t, ok, "origin has no arrival")
	_, ok = rb.Terminal().Departure()
	assert.False(t, ok, "terminal has no departure")

	for i, stop := range rb.Stops() {
		assert.Equal(t, i, stop.Index())
		assert.Same(t, rb, stop.Line())
	}
}

func TestStopsAtKeepsLineOrder(t *testing.T) {
	tt := sampleTimetable(t)
	sgh := mustResolve(t, tt, "SGH")

	stops := tt.StopsAt(sgh)
	require.Len(t, stops, 2)
	assert.Equal(t, "RB 14 001", stops[0].Line().Name())
	assert.Equal(t, "IRE 6 001", stops[1].Line().Name())
}

func TestResolve(t *testing.T) {
	tt := sampleTimetable(t)

	s, err := tt.Resolve("HOB")
	require.NoError(t, err)
	assert.Equal(t, "Horb", s.Name)

	_, err = tt.Resolve("XXX")
	assert.ErrorIs(t, err, ErrStationNotFound)

	byName, err := tt.StationByName("Horb")
	require.NoError(t, err)
	assert.Same(t, s, byName)

	_, err = tt.StationByName("Ulm")
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestContains(t *testing.T) {
	tt := sampleTimetable(t)
	other := sampleTimetable(t)

	assert.True(t, tt.Contains(mustResolve(t, tt, "ALD")))
	assert.False(t, tt.Contains(mustResolve(t, other, "ALD")), "station of another timetable")
	assert.False(t, tt.Contains(&Station{Tag: "ALD", Name: "Aulendorf"}))
	assert.False(t, tt.Contains(nil))
}

func TestBuildErrors(t *testing.T) {
	stations := []Station{{Tag: "A", Name: "Alpha"}, {Tag: "B", Name: "Beta"}, {Tag: "C", Name: "Gamma"}}

	tests := []struct {
		name     string
		stations []Station
		lines    []LineSpec
		wantErr  error
		wantLine string
		wantStop int
	}{
		{
			name:     "duplicate station tag",
			stations: []Station{{Tag: "A", Name: "Alpha"}, {Tag: "A", Name: "Again"}},
			wantErr:  ErrDuplicateStation,
			wantStop: -1,
		},
		{
			name:     "empty station tag",
			stations: []Station{{Tag: "", Name: "Nowhere"}},
			wantErr:  ErrInvalidStop,
			wantStop: -1,
		},
		{
			name:     "unknown tag",
			stations: stations,
			lines:    []LineSpec{{Name: "L1", Stops: []StopSpec{Start("A", at("10:00")), End("Z", at("10:10"))}}},
			wantErr:  ErrStationNotFound,
			wantLine: "L1",
			wantStop: 1,
		},
		{
			name:     "single stop",
			stations: stations,
			lines:    []LineSpec{{Name: "L1", Stops: []StopSpec{Start("A", at("10:00"))}}},
			wantErr:  ErrInvalidLine,
			wantLine: "L1",
			wantStop: -1,
		},
		{
			name:     "empty name",
			stations: stations,
			lines:    []LineSpec{{Stops: []StopSpec{Start("A", at("10:00")), End("B", at("10:10"))}}},
			wantErr:  ErrInvalidLine,
			wantLine: "#0",
			wantStop: -1,
		},
		{
			name:     "first stop with arrival",
			stations: stations,
			lines:    []LineSpec{{Name: "L1", Stops: []StopSpec{Via("A", at("09:59"), at("10:00")), End("B", at("10:10"))}}},
			wantErr:  ErrInvalidStop,
			wantLine: "L1",
			wantStop: 0,
		},
		{
			name:     "last stop not terminal",
			stations: stations,
			lines:    []LineSpec{{Name: "L1", Stops: []StopSpec{Start("A", at("10:00")), Via("B", at("10:10"), at("10:11"))}}},
			wantErr:  ErrInvalidStop,
			wantLine: "L1",
			wantStop: 1,
		},
		{
			name:     "terminal in the middle",
			stations: stations,
			lines: []LineSpec{{Name: "L1", Stops: []StopSpec{
				Start("A", at("10:00")), End("B", at("10:10")), End("C", at("10:20")),
			}}},
			wantErr:  ErrInvalidStop,
			wantLine: "L1",
			wantStop: 1,
		},
		{
			name:     "departure before arrival",
			stations: stations,
			lines: []LineSpec{{Name: "L1", Stops: []StopSpec{
				Start("A", at("10:00")), Via("B", at("10:10"), at("10:05")), End("C", at("10:20")),
			}}},
			wantErr:  ErrInvalidStop,
			wantLine: "L1",
			wantStop: 1,
		},
		{
			name:     "arrival before previous departure",
			stations: stations,
			lines: []LineSpec{{Name: "L1", Stops: []StopSpec{
				Start("A", at("10:00")), Via("B", at("09:50"), at("09:55")), End("C", at("10:20")),
			}}},
			wantErr:  ErrInvalidStop,
			wantLine: "L1",
			wantStop: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt, err := Build(tc.stations, tc.lines)
			require.Error(t, err)
			assert.Nil(t, tt)
			assert.ErrorIs(t, err, tc.wantErr)

			var be *BuildError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.wantLine, be.Line)
			assert.Equal(t, tc.wantStop, be.Stop)
		})
	}
}

func TestBuildErrorMessage(t *testing.T) {
	err := &BuildError{Line: "RB 14 001", Stop: 3, Err: ErrInvalidStop}
	assert.Equal(t, `timetable build: line "RB 14 001" stop 3: invalid stop`, err.Error())

	err = &BuildError{Line: "RB 14 001", Stop: -1, Err: ErrInvalidLine}
	assert.Equal(t, `timetable build: line "RB 14 001": invalid line`, err.Error())
}

func TestBuildEmptyCatalog(t *testing.T) {
	tt, err := Build(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tt.Stations())
	assert.Empty(t, tt.Lines())
}
