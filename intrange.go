package measure

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// IntRange is an immutable closed interval [Min, Max] of integers.
type IntRange struct {
	min, max int
}

// NewIntRange returns the range [lo, hi]. It is an error for hi to be less
// than lo.
func NewIntRange(lo, hi int) (IntRange, error) {
	if hi < lo {
		return IntRange{}, fmt.Errorf("%w: max cannot be less than min (provided values: %d, %d)",
			ErrInvalidArgument, lo, hi)
	}
	return IntRange{min: lo, max: hi}, nil
}

// Min returns the lower bound.
func (r IntRange) Min() int { return r.min }

// Max returns the upper bound.
func (r IntRange) Max() int { return r.max }

// Mid returns the midpoint, truncated toward zero.
func (r IntRange) Mid() int { return (r.min + r.max) / 2 }

// Size returns Max - Min. It overflows for ranges wider than math.MaxInt;
// Random handles those.
func (r IntRange) Size() int { return r.max - r.min }

// Clamp limits v to [Min, Max].
func (r IntRange) Clamp(v int) int {
	return clamp(v, r.min, r.max)
}

// Contains reports whether v lies in [Min, Max].
func (r IntRange) Contains(v int) bool {
	return v >= r.min && v <= r.max
}

// ContainsFloat reports whether v lies in [Min, Max].
func (r IntRange) ContainsFloat(v float64) bool {
	return v >= float64(r.min) && v <= float64(r.max)
}

// Lerp returns Min + (Max-Min)*t. t is not clamped.
func (r IntRange) Lerp(t float64) float64 {
	return lerp(float64(r.min), float64(r.max), t)
}

// LerpRounded is Lerp rounded to the nearest integer, halves to even.
func (r IntRange) LerpRounded(t float64) int {
	return int(math.RoundToEven(r.Lerp(t)))
}

// Normalize maps v to its fraction of the way from Min to Max. With
// clampT set the result is limited to [0, 1].
func (r IntRange) Normalize(v float64, clampT bool) float64 {
	return inverseLerp(float64(r.min), float64(r.max), v, clampT)
}

// Random returns a uniformly distributed integer from the range. When
// inclusive is true Max can be returned; otherwise the draw is over
// [Min, Max), and a range with Min == Max returns Min.
func (r IntRange) Random(inclusive bool) int {
	return r.draw(inclusive, rand.Uint64, rand.Uint64N)
}

// RandomFrom is Random drawing from rng.
func (r IntRange) RandomFrom(rng *rand.Rand, inclusive bool) int {
	return r.draw(inclusive, rng.Uint64, rng.Uint64N)
}

// draw works on the width as a uint64 so ranges wider than math.MaxInt
// stay uniform. Offsets past MaxInt wrap back into range when added to min.
func (r IntRange) draw(inclusive bool, full func() uint64, below func(uint64) uint64) int {
	w := uint64(r.max) - uint64(r.min)
	if inclusive {
		w++
		if w == 0 {
			return int(full())
		}
	}
	if w == 0 {
		return r.min
	}
	return r.min + int(below(w))
}

// Scale returns the range with both bounds multiplied by f.
func (r IntRange) Scale(f int) (IntRange, error) {
	return NewIntRange(r.min*f, r.max*f)
}

// Div returns the range with both bounds divided by f, truncating.
func (r IntRange) Div(f int) (IntRange, error) {
	if f == 0 {
		return IntRange{}, fmt.Errorf("%w: cannot divide range by zero", ErrInvalidArgument)
	}
	return NewIntRange(r.min/f, r.max/f)
}

// Equal reports whether both bounds match.
func (r IntRange) Equal(o IntRange) bool {
	return r == o
}

// String formats the range as "(min - max)".
func (r IntRange) String() string {
	return fmt.Sprintf("(%d - %d)", r.min, r.max)
}
