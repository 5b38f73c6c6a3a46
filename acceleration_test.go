package measure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccelerationConversions(t *testing.T) {
	g := FromMetersPerSecondSquared(9.80665)
	assert.InDelta(t, 32.1740486, g.FeetPerSecondSquared(), 1e-6)
	assert.InDelta(t, g.FeetPerSecondSquared(), g.FPSS(), 0)
	assert.InDelta(t, 9.80665, g.MPSS(), 0)
	assert.InDelta(t, 3.048, FromFeetPerSecondSquared(10).MetersPerSecondSquared(), 1e-12)

	a, err := NewAcceleration(FeetPerSecondSquared, 10)
	require.NoError(t, err)
	v, err := a.In(FeetPerSecondSquared)
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-12)
}

func TestAccelerationUnits(t *testing.T) {
	assert.Equal(t, "m/s²", MetersPerSecondSquared.Symbol())
	assert.Equal(t, "ft/s²", FeetPerSecondSquared.Symbol())

	u, err := ParseAccelerationUnit("fps²")
	require.NoError(t, err)
	assert.Equal(t, FeetPerSecondSquared, u)

	_, err = NewAcceleration(AccelerationUnit(5), 1)
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
	assert.Equal(t, "AccelerationUnit(5)", AccelerationUnit(5).String())
}

func TestAccelerationArithmetic(t *testing.T) {
	a := FromMetersPerSecondSquared(10)
	assert.Equal(t, FromMetersPerSecondSquared(20), a.Scale(2))
	assert.InDelta(t, 2, a.Ratio(FromMetersPerSecondSquared(5)), epsilon)
	assert.InDelta(t, 50, a.MulTime(FromSeconds(5)).MetersPerSecond(), epsilon)
	assert.Equal(t, "10 m/s²", a.String())

	got, err := a.Clamp(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, FromMetersPerSecondSquared(1), got)
}
