package measure

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// AngleRange is an immutable arc: every angle swept clockwise from Start
// through Size degrees. Unlike a FloatRange it accounts for wrapping past
// 360°, so an arc from 350° to 10° clamps 11° to 10° rather than to 350°.
//
// A size of 360 or more saturates to the full circle starting at 0°.
type AngleRange struct {
	start Angle
	size  float64
}

// FullCircle returns the arc covering every angle.
func FullCircle() AngleRange {
	return AngleRange{start: Angle{}, size: 360}
}

// NewAngleRange returns the arc starting at start and spanning size degrees
// clockwise. A negative size is an error; a size of 360 or more yields
// FullCircle.
func NewAngleRange(start Angle, size float64) (AngleRange, error) {
	if size < 0 || math.IsNaN(size) {
		return AngleRange{}, fmt.Errorf("%w: size cannot be negative (given %v)", ErrInvalidArgument, size)
	}
	if size >= 360 {
		return FullCircle(), nil
	}
	return AngleRange{start: start, size: size}, nil
}

// AngleRangeBetween returns the arc swept clockwise from start to end.
func AngleRangeBetween(start, end Angle) AngleRange {
	s := start.Degrees360()
	e := end.Degrees360()
	for e < s {
		e += 360
	}
	if e-s >= 360 {
		return FullCircle()
	}
	return AngleRange{start: start, size: e - s}
}

// Start returns the first angle of the arc.
func (r AngleRange) Start() Angle { return r.start }

// End returns the last angle of the arc.
func (r AngleRange) End() Angle { return r.start.Add(Degrees(r.size)) }

// Mid returns the angle halfway along the arc.
func (r AngleRange) Mid() Angle { return r.start.Add(Degrees(r.size / 2)) }

// Size returns the arc length in degrees, in [0, 360].
func (r AngleRange) Size() float64 { return r.size }

// IsFull reports whether the arc covers the whole circle.
func (r AngleRange) IsFull() bool { return r.size >= 360 }

// Clamp returns v if it lies on the arc, otherwise whichever end of the arc
// is nearer to v going around the circle. The point directly opposite the
// midpoint clamps to Start.
func (r AngleRange) Clamp(v Angle) Angle {
	if r.IsFull() {
		return v
	}
	half := r.size / 2
	mid := r.start.Degrees360() + half
	d := deltaAngle(v.Degrees360(), mid)
	if math.Abs(d) <= half {
		return v
	}
	if d < 0 {
		return r.End()
	}
	return r.start
}

// Contains reports whether v lies on the arc, ends included.
func (r AngleRange) Contains(v Angle) bool {
	return r.Clamp(v).Equal(v)
}

// Lerp returns the angle a fraction t of the way along the arc. t is not
// clamped, so values outside [0, 1] extrapolate past the ends.
func (r AngleRange) Lerp(t float64) Angle {
	return r.start.Add(Degrees(r.size * t))
}

// Ease is Lerp with t first shaped by an easing function.
func (r AngleRange) Ease(t float64, fn ease.TweenFunc) Angle {
	return r.Lerp(easeFraction(t, fn))
}

// Random returns a uniformly distributed angle on the arc.
func (r AngleRange) Random() Angle {
	return r.Lerp(rand.Float64())
}

// RandomFrom is Random drawing from rng.
func (r AngleRange) RandomFrom(rng *rand.Rand) Angle {
	return r.Lerp(rng.Float64())
}

// Equal reports whether both arcs start at the same angle and have the same
// size, within AngleEpsilon.
func (r AngleRange) Equal(o AngleRange) bool {
	return r.start.Equal(o.start) && math.Abs(r.size-o.size) <= AngleEpsilon
}

// String formats the arc as "(start-end)".
func (r AngleRange) String() string {
	if r.IsFull() {
		return "(0.0°-360.0°)"
	}
	return fmt.Sprintf("(%v-%v)", r.start, r.End())
}
