package measure

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
	"golang.org/x/exp/constraints"
)

// Range is an immutable closed interval [Min, Max] over a float quantity.
// It does not wrap; use AngleRange for arcs.
type Range[T constraints.Float] struct {
	min, max T
}

// Ranges over the quantities in this package.
type (
	FloatRange        = Range[float64]
	DistanceRange     = Range[Distance]
	SpeedRange        = Range[Speed]
	MassRange         = Range[Mass]
	AccelerationRange = Range[Acceleration]
	TimeSpanRange     = Range[TimeSpan]
)

// NewRange returns the range [lo, hi]. It is an error for hi to be less
// than lo.
func NewRange[T constraints.Float](lo, hi T) (Range[T], error) {
	if hi < lo || math.IsNaN(float64(lo)) || math.IsNaN(float64(hi)) {
		return Range[T]{}, fmt.Errorf("%w: max cannot be less than min (provided values: %v, %v)",
			ErrInvalidArgument, lo, hi)
	}
	return Range[T]{min: lo, max: hi}, nil
}

// NewFloatRange returns the float64 range [lo, hi].
func NewFloatRange(lo, hi float64) (FloatRange, error) {
	return NewRange(lo, hi)
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.max }

// Mid returns the midpoint between Min and Max.
func (r Range[T]) Mid() T { return (r.min + r.max) / 2 }

// Size returns Max - Min.
func (r Range[T]) Size() T { return r.max - r.min }

// Clamp limits v to [Min, Max].
func (r Range[T]) Clamp(v T) T {
	return clamp(v, r.min, r.max)
}

// Contains reports whether v lies in [Min, Max].
func (r Range[T]) Contains(v T) bool {
	return v >= r.min && v <= r.max
}

// Lerp returns Min + (Max-Min)*t. t is not clamped.
func (r Range[T]) Lerp(t float64) T {
	return lerp(r.min, r.max, t)
}

// Ease is Lerp with t first shaped by an easing function.
func (r Range[T]) Ease(t float64, fn ease.TweenFunc) T {
	return r.Lerp(easeFraction(t, fn))
}

// Normalize maps v to its fraction of the way from Min to Max. With
// clampT set the result is limited to [0, 1]; otherwise values outside the
// range give results below 0 or above 1.
func (r Range[T]) Normalize(v T, clampT bool) float64 {
	return inverseLerp(r.min, r.max, v, clampT)
}

// Random returns a uniformly distributed value in [Min, Max).
func (r Range[T]) Random() T {
	if r.min == r.max {
		return r.min
	}
	return r.min + T(rand.Float64()*float64(r.max-r.min))
}

// RandomFrom is Random drawing from rng.
func (r Range[T]) RandomFrom(rng *rand.Rand) T {
	if r.min == r.max {
		return r.min
	}
	return r.min + T(rng.Float64()*float64(r.max-r.min))
}

// Scale returns the range with both bounds multiplied by f. A negative f
// would invert the range and is an error.
func (r Range[T]) Scale(f float64) (Range[T], error) {
	return NewRange(T(float64(r.min)*f), T(float64(r.max)*f))
}

// Div returns the range with both bounds divided by f.
func (r Range[T]) Div(f float64) (Range[T], error) {
	if f == 0 {
		return Range[T]{}, fmt.Errorf("%w: cannot divide range by zero", ErrInvalidArgument)
	}
	return NewRange(T(float64(r.min)/f), T(float64(r.max)/f))
}

// Equal reports whether both bounds match exactly.
func (r Range[T]) Equal(o Range[T]) bool {
	return r.min == o.min && r.max == o.max
}

// String formats the range as "(min - max)".
func (r Range[T]) String() string {
	return fmt.Sprintf("(%v - %v)", r.min, r.max)
}
