package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5 km", 12500},
		{"300ft", 91.44},
		{"  1 mile ", 1609.344},
		{"42", 42},
		{"-3 m", -3},
		{"1e3 m", 1000},
	}
	for _, tt := range tests {
		d, err := ParseDistance(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, d.Meters(), 1e-9, tt.in)
	}
}

func TestParseQuantityErrors(t *testing.T) {
	_, err := ParseDistance("12 furlongs")
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))

	_, err = ParseDistance("km")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParseSpeed("fast")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParseMass("3 stone")
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
}

func TestParseOtherQuantities(t *testing.T) {
	s, err := ParseSpeed("36 KPH")
	require.NoError(t, err)
	assert.InDelta(t, 10, s.MetersPerSecond(), 1e-9)

	s, err = ParseSpeed("10 m/s")
	require.NoError(t, err)
	assert.Equal(t, FromMetersPerSecond(10), s)

	m, err := ParseMass("2 tonnes")
	require.NoError(t, err)
	assert.Equal(t, FromKilograms(2000), m)

	a, err := ParseAcceleration("9.81 m/s²")
	require.NoError(t, err)
	assert.InDelta(t, 9.81, a.MPSS(), 1e-12)

	a, err = ParseAcceleration("32 ft/s^2")
	require.NoError(t, err)
	assert.InDelta(t, 32, a.FPSS(), 1e-9)
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"90", 90},
		{"90°", 90},
		{"-45 deg", -45},
		{"720degrees", 720},
	}
	for _, tt := range tests {
		a, err := ParseAngle(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, a.RawDegrees(), epsilon, tt.in)
	}

	a, err := ParseAngle("3.14159265358979 rad")
	require.NoError(t, err)
	assert.InDelta(t, 180, a.RawDegrees(), 1e-9)

	_, err = ParseAngle("90 grad")
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
	_, err = ParseAngle("north")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParseTimeSpan(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"01:01:03.25", 3663.25},
		{"12:33:15", 45195},
		{"02:30", 150},
		{"-00:01:30", -90},
		{"90", 90},
		{"1.5", 1.5},
		{"90s", 90},
		{"1h30m", 5400},
		{"250ms", 0.25},
	}
	for _, tt := range tests {
		ts, err := ParseTimeSpan(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, ts.TotalSeconds(), 1e-9, tt.in)
	}
}

func TestParseTimeSpanErrors(t *testing.T) {
	for _, in := range []string{"1:2:3:4", "aa:10", "10:-5", "soon", "NaN", "Inf", "-inf", "00:00:NaN", "01:+Inf"} {
		_, err := ParseTimeSpan(in)
		assert.True(t, errors.Is(err, ErrInvalidArgument), in)
	}
}

func TestParseTimeSpanRoundTripsString(t *testing.T) {
	for _, secs := range []float64{0, 3.25, 63.25, 3663.25, 45195} {
		ts := FromSeconds(secs)
		back, err := ParseTimeSpan(ts.String())
		require.NoError(t, err)
		assert.InDelta(t, secs, back.TotalSeconds(), 1e-9)
		assert.False(t, math.IsNaN(back.TotalSeconds()))
	}
}
