package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweenDistanceReachesTarget(t *testing.T) {
	d := FromMeters(0)
	tw := TweenTo(&d, FromMeters(100), FromSeconds(1), ease.Linear)

	// Exact halves keep float32 time accumulation from drifting.
	got := tw.Update(0.5)
	assert.InDelta(t, 50, got.Meters(), 1e-4)
	assert.Equal(t, got, d)
	assert.False(t, tw.Done)

	tw.Update(0.5)
	require.True(t, tw.Done)
	assert.Equal(t, FromMeters(100), d, "lands exactly on target")

	tw.Update(1)
	assert.Equal(t, FromMeters(100), d, "finished tweens leave the field alone")
}

func TestTweenSpeedEased(t *testing.T) {
	s := FromKPH(0)
	tw := TweenTo(&s, FromKPH(100), FromSeconds(2), ease.InQuad)
	tw.Update(1)
	assert.InDelta(t, 25, s.KPH(), 1e-3)
}

func TestTweenReset(t *testing.T) {
	m := FromKilograms(10)
	tw := TweenTo(&m, FromKilograms(20), FromSeconds(1), ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)
	require.True(t, tw.Done)

	tw.Reset()
	assert.False(t, tw.Done)
	assert.Equal(t, FromKilograms(10), m)

	tw.Update(0.5)
	assert.InDelta(t, 15, m.Kilograms(), 1e-4)
}

func TestTweenZeroDurationFinishesImmediately(t *testing.T) {
	v := 1.0
	tw := TweenTo(&v, 5, 0, ease.Linear)
	tw.Update(0)
	assert.True(t, tw.Done)
	assert.Equal(t, 5.0, v)
}

func TestTweenAngleTakesShortArc(t *testing.T) {
	heading := Degrees(350)
	tw := TweenAngle(&heading, Degrees(10), FromSeconds(1), ease.Linear)

	tw.Update(0.5)
	assert.True(t, heading.Equal(North), "halfway heading = %v", heading)

	tw.Update(0.5)
	require.True(t, tw.Done)
	assert.True(t, heading.Equal(Degrees(10)))

	tw.Reset()
	assert.False(t, tw.Done)
	assert.Equal(t, 350.0, heading.RawDegrees())
}
