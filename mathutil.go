package measure

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// clamp limits v to [lo, hi]. Callers guarantee lo <= hi.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampChecked is clamp for caller-supplied bounds.
func clampChecked[T constraints.Ordered](v, lo, hi T) (T, error) {
	if lo > hi {
		return v, fmt.Errorf("%w: min should not exceed max (values were %v and %v respectively)",
			ErrInvalidArgument, lo, hi)
	}
	return clamp(v, lo, hi), nil
}

func clamp01(t float64) float64 {
	return clamp(t, 0, 1)
}

// lerp interpolates from a to b. t is not clamped.
func lerp[T constraints.Float](a, b T, t float64) T {
	return a + T(float64(b-a)*t)
}

// inverseLerp maps v onto the unit interval spanned by lo and hi.
// When clampT is false the result may fall outside [0, 1].
func inverseLerp[T constraints.Float](lo, hi, v T, clampT bool) float64 {
	t := float64(v-lo) / float64(hi-lo)
	if clampT {
		t = clamp01(t)
	}
	return t
}

// moveTowards steps a toward b by at most maxDelta without overshooting.
func moveTowards[T constraints.Float](a, b, maxDelta T) T {
	if a == b {
		return b
	}
	if a < b {
		a += maxDelta
		if a > b {
			return b
		}
		return a
	}
	a -= maxDelta
	if a < b {
		return b
	}
	return a
}

// repeat wraps t into [0, length).
func repeat(t, length float64) float64 {
	r := t - math.Floor(t/length)*length
	if r >= length {
		return 0
	}
	return r
}

// deltaAngle returns the shortest signed difference from current to target
// in degrees, in the range (-180, 180].
func deltaAngle(current, target float64) float64 {
	d := repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
