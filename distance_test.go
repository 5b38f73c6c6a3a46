package measure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceConversions(t *testing.T) {
	tests := []struct {
		name string
		d    Distance
		unit DistanceUnit
		want float64
	}{
		{"km to m", FromKilometers(1.5), Meters, 1500},
		{"mile to ft", FromMiles(1), Feet, 5280},
		{"yard to ft", FromYards(1), Feet, 3},
		{"m to km", FromMeters(250), Kilometers, 0.25},
		{"ft to yd", FromFeet(9), Yards, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.In(tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDistanceRoundTripsThroughEveryUnit(t *testing.T) {
	d := FromMeters(1234.5)
	for u := Meters; u <= Miles; u++ {
		v, err := d.In(u)
		require.NoError(t, err)
		back, err := NewDistance(u, v)
		require.NoError(t, err)
		assert.InDelta(t, d.Meters(), back.Meters(), 1e-9, "unit %v", u)
	}
}

func TestDistanceAccessors(t *testing.T) {
	d := FromMiles(2)
	assert.InDelta(t, 3218.688, d.Meters(), 1e-9)
	assert.InDelta(t, 3.218688, d.Kilometers(), 1e-9)
	assert.InDelta(t, 10560, d.Feet(), 1e-9)
	assert.InDelta(t, 3520, d.Yards(), 1e-9)
	assert.InDelta(t, 2, d.Miles(), 1e-12)
}

func TestDistanceUnrecognizedUnit(t *testing.T) {
	bad := DistanceUnit(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "DistanceUnit(42)", bad.String())

	_, err := NewDistance(bad, 1)
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
	_, err = FromMeters(1).In(bad)
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
	_, err = FromMeters(1).Format(bad, 2)
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
}

func TestDistanceUnitNames(t *testing.T) {
	assert.Equal(t, "km", Kilometers.Symbol())
	assert.Equal(t, "kilometers", Kilometers.Name())
	assert.Equal(t, "miles", Miles.String())

	u, err := ParseDistanceUnit("Foot")
	require.NoError(t, err)
	assert.Equal(t, Feet, u)

	_, err = ParseDistanceUnit("furlong")
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
}

func TestDistanceArithmetic(t *testing.T) {
	a, b := FromMeters(30), FromMeters(20)
	assert.Equal(t, FromMeters(50), a+b)
	assert.Equal(t, FromMeters(10), a-b)
	assert.True(t, a > b)
	assert.Equal(t, FromMeters(60), a.Scale(2))
	assert.Equal(t, FromMeters(15), a.Div(2))
	assert.InDelta(t, 1.5, a.Ratio(b), epsilon)
	assert.Equal(t, FromMeters(25), b.Lerp(a, 0.5))

	assert.True(t, FromMeters(0).IsZero())
	assert.True(t, a.IsPositive())
	assert.True(t, (b - a).IsNegative())
}

func TestDistanceClamp(t *testing.T) {
	got, err := FromMeters(50).Clamp(FromMeters(0), FromMeters(10))
	require.NoError(t, err)
	assert.Equal(t, FromMeters(10), got)

	_, err = FromMeters(5).Clamp(FromMeters(10), FromMeters(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "min should not exceed max")
}

func TestDistanceDimensionalIdentities(t *testing.T) {
	d := FromMeters(100)
	assert.InDelta(t, 20, d.DivTime(FromSeconds(5)).MetersPerSecond(), epsilon)
	assert.InDelta(t, 4, d.DivSpeed(FromMetersPerSecond(25)).TotalSeconds(), epsilon)
}

func TestDistanceFormat(t *testing.T) {
	assert.Equal(t, "50 m", FromMeters(50).String())

	s, err := FromMeters(1500).Format(Kilometers, 2)
	require.NoError(t, err)
	assert.Equal(t, "1.50 km", s)

	s, err = FromMiles(3).Format(Miles, 0)
	require.NoError(t, err)
	assert.Equal(t, "3 mi", s)
}
