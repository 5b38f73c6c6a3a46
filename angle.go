package measure

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// AngleEpsilon is the tolerance in degrees used by Angle.Equal and by every
// comparison built on it.
const AngleEpsilon = 1e-6

// Angle is an immutable angle in degrees. It keeps the raw value it was
// created with; normalization happens only in the accessors, so arithmetic
// never loses winding information.
//
// Positive rotation is clockwise, matching screen space where Y grows
// downward.
//
// Two angles that differ by a whole number of turns are equal under Equal.
// The == operator compares raw values and should not be used.
type Angle struct {
	raw float64
}

// Compass headings.
var (
	North = Angle{0}
	East  = Angle{90}
	South = Angle{180}
	West  = Angle{270}
)

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle {
	return Angle{raw: d}
}

// Radians returns an Angle of r radians.
func Radians(r float64) Angle {
	return Angle{raw: r * 180 / math.Pi}
}

// RawDegrees returns the value the angle was created with.
func (a Angle) RawDegrees() float64 {
	return a.raw
}

// RawRadians returns the raw value converted to radians.
func (a Angle) RawRadians() float64 {
	return a.raw * math.Pi / 180
}

// Degrees180 returns the angle normalized to [-180, 180).
func (a Angle) Degrees180() float64 {
	d := math.Mod(a.raw, 360)
	if d >= 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	if d == 0 {
		return 0 // no -0
	}
	return d
}

// Degrees360 returns the angle normalized to [0, 360). Whole turns map to 0.
func (a Angle) Degrees360() float64 {
	d := math.Mod(a.raw, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// Radians360 returns Degrees360 in radians, in [0, 2π).
func (a Angle) Radians360() float64 {
	return a.Degrees360() * math.Pi / 180
}

// Add returns a + b.
func (a Angle) Add(b Angle) Angle {
	return Angle{raw: a.raw + b.raw}
}

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle {
	return Angle{raw: a.raw - b.raw}
}

// Neg returns -a.
func (a Angle) Neg() Angle {
	return Angle{raw: -a.raw}
}

// Scale returns a multiplied by f.
func (a Angle) Scale(f float64) Angle {
	return Angle{raw: a.raw * f}
}

// DeltaTo returns the signed shortest rotation from a to b in degrees, in
// the range (-180, 180]. A positive result means b lies clockwise of a.
func (a Angle) DeltaTo(b Angle) float64 {
	return deltaAngle(a.raw, b.raw)
}

// IsClockwiseFrom reports whether the shortest rotation from b to a is
// clockwise. It is false when the angles are equal.
func (a Angle) IsClockwiseFrom(b Angle) bool {
	return b.DeltaTo(a) > 0
}

// IsCounterClockwiseFrom reports whether the shortest rotation from b to a is
// counter-clockwise. It is false when the angles are equal.
func (a Angle) IsCounterClockwiseFrom(b Angle) bool {
	return b.DeltaTo(a) < 0
}

// Equal reports whether a and b point the same way, within AngleEpsilon.
// 350° equals -10° and 720° equals 0°.
func (a Angle) Equal(b Angle) bool {
	return math.Abs(a.DeltaTo(b)) <= AngleEpsilon
}

// LerpTo interpolates from a toward b along the shorter arc. t is not clamped.
func (a Angle) LerpTo(b Angle, t float64) Angle {
	return a.Add(Degrees(a.DeltaTo(b) * t))
}

// Sincos returns the sine and cosine of the angle.
func (a Angle) Sincos() (sin, cos float64) {
	return math.Sincos(a.RawRadians())
}

// GeoM returns an ebiten geometry matrix that rotates by the angle.
func (a Angle) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Rotate(a.RawRadians())
	return g
}

// String formats the angle as Degrees360 with one decimal, e.g. "30.0°".
func (a Angle) String() string {
	return a.Format360(1)
}

// Format180 formats Degrees180 with prec decimals and a degree sign.
func (a Angle) Format180(prec int) string {
	return formatFloat(a.Degrees180(), prec) + "°"
}

// Format360 formats Degrees360 with prec decimals and a degree sign.
func (a Angle) Format360(prec int) string {
	return formatFloat(a.Degrees360(), prec) + "°"
}
