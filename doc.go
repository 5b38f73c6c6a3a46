// Package measure provides unit-aware value types for [Ebitengine] games:
// angles and arcs, numeric ranges, and physical quantities (distance, speed,
// mass, acceleration and time spans).
//
// # Quick start
//
// Quantities are named float64 types stored in a canonical unit, so Go's
// own operators add, subtract and compare them:
//
//	trip := measure.FromKilometers(12) + measure.FromMiles(3)
//	fmt.Println(trip.Miles())
//
//	speed := measure.FromMPH(60)
//	eta := trip.DivSpeed(speed)     // TimeSpan
//	fmt.Println(eta)                // 00:10:27.39
//
// The canonical units are meters, meters per second, kilograms, meters per
// second squared and seconds. Conversions that mix quantities are named
// methods: [Speed.MulTime] gives a [Distance], [Distance.DivTime] gives a
// [Speed], [Acceleration.MulTime] gives a Speed, and so on.
//
// # Angles
//
// [Angle] keeps the raw degrees it was built with and normalizes only on
// read through [Angle.Degrees180] and [Angle.Degrees360]. Positive rotation
// is clockwise, matching screen space. Compare angles with [Angle.Equal],
// which treats 350° and -10° as the same heading.
//
// [AngleRange] is an arc swept clockwise from a start angle. Clamping into
// an arc picks whichever end is nearer going around the circle:
//
//	cone := measure.AngleRangeBetween(measure.Degrees(350), measure.Degrees(10))
//	cone.Clamp(measure.Degrees(15)) // 10°
//
// # Ranges
//
// [Range] is a closed interval over any float quantity, with aliases such
// as [FloatRange] and [SpeedRange]. [IntRange] covers integers. Both reject
// a max below the min at construction and support random draws, linear
// interpolation and easing with [gween] functions.
//
// # Tweens, YAML and ECS
//
// [TweenTo] and [TweenAngle] animate quantity fields over a [TimeSpan].
// Every type encodes to and decodes from YAML with gopkg.in/yaml.v3, so
// game data files can say "top_speed: 60 MPH". The measure/ecs module
// integrates motion with [Donburi].
//
// Errors wrap [ErrInvalidArgument] or [ErrUnrecognizedUnit]; test for them
// with errors.Is.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package measure
