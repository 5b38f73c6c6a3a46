package measure

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/exp/constraints"
)

// easeFraction shapes t in [0, 1] with fn.
func easeFraction(t float64, fn ease.TweenFunc) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// Tween animates a quantity field from its current value to a target over
// a TimeSpan. Call Update(dt) each frame; the field is written on every
// update and Done is set once the duration has elapsed. Nothing drives
// tweens automatically.
type Tween[T constraints.Float] struct {
	tween *gween.Tween
	from  T
	to    T
	field *T
	Done  bool
}

// TweenTo creates a Tween that moves *field to the value to over duration
// using the easing function.
func TweenTo[T constraints.Float](field *T, to T, duration TimeSpan, fn ease.TweenFunc) *Tween[T] {
	return &Tween[T]{
		tween: gween.New(0, 1, float32(duration), fn),
		from:  *field,
		to:    to,
		field: field,
	}
}

// Update advances the tween by dt and writes the interpolated value to the
// field. Interpolation runs in float64 between the endpoints, so the field
// lands exactly on the target when the tween finishes.
func (tw *Tween[T]) Update(dt TimeSpan) T {
	if tw.Done {
		return *tw.field
	}
	t, finished := tw.tween.Update(float32(dt))
	if finished {
		*tw.field = tw.to
		tw.Done = true
		return tw.to
	}
	*tw.field = lerp(tw.from, tw.to, float64(t))
	return *tw.field
}

// Reset rewinds the tween to its start and writes the start value back.
func (tw *Tween[T]) Reset() {
	tw.tween.Reset()
	tw.Done = false
	*tw.field = tw.from
}

// AngleTween animates an Angle field along the shorter arc to a target.
type AngleTween struct {
	tween *gween.Tween
	from  Angle
	delta float64
	field *Angle
	Done  bool
}

// TweenAngle creates an AngleTween that turns *field to face to over
// duration, rotating whichever way is shorter.
func TweenAngle(field *Angle, to Angle, duration TimeSpan, fn ease.TweenFunc) *AngleTween {
	return &AngleTween{
		tween: gween.New(0, 1, float32(duration), fn),
		from:  *field,
		delta: field.DeltaTo(to),
		field: field,
	}
}

// Update advances the tween by dt and writes the current heading.
func (tw *AngleTween) Update(dt TimeSpan) Angle {
	if tw.Done {
		return *tw.field
	}
	t, finished := tw.tween.Update(float32(dt))
	if finished {
		t = 1
		tw.Done = true
	}
	*tw.field = tw.from.Add(Degrees(tw.delta * float64(t)))
	return *tw.field
}

// Reset rewinds the tween to its start and writes the start heading back.
func (tw *AngleTween) Reset() {
	tw.tween.Reset()
	tw.Done = false
	*tw.field = tw.from
}
