package measure

// AccelerationUnit selects a unit of acceleration.
type AccelerationUnit uint8

// Supported AccelerationUnit values.
const (
	MetersPerSecondSquared AccelerationUnit = iota
	FeetPerSecondSquared
)

var accelerationUnits = unitTable{
	kind: "acceleration",
	units: []unitDef{
		MetersPerSecondSquared: {factor: 1, symbol: "m/s²", name: "meters/second²", aliases: []string{"m/s^2", "mpss"}},
		FeetPerSecondSquared:   {factor: 0.3048, symbol: "ft/s²", name: "feet/second²", aliases: []string{"ft/s^2", "fps²", "fpss"}},
	},
}

// Valid reports whether u is a known unit.
func (u AccelerationUnit) Valid() bool { return accelerationUnits.valid(uint8(u)) }

// Symbol returns the short form, e.g. "m/s²". It is empty for unknown units.
func (u AccelerationUnit) Symbol() string { return accelerationUnits.symbol(uint8(u)) }

// Name returns the long form. It is empty for unknown units.
func (u AccelerationUnit) Name() string { return accelerationUnits.name(uint8(u)) }

// String returns the unit name, or AccelerationUnit(n) for unknown units.
func (u AccelerationUnit) String() string {
	return accelerationUnits.stringOf(uint8(u), "AccelerationUnit")
}

// ParseAccelerationUnit returns the unit written as s ("m/s²", "fpss", ...).
func ParseAccelerationUnit(s string) (AccelerationUnit, error) {
	u, err := accelerationUnits.parseUnit(s)
	return AccelerationUnit(u), err
}

// Acceleration is an acceleration stored in meters per second squared.
type Acceleration float64

// NewAcceleration returns v measured in unit.
func NewAcceleration(unit AccelerationUnit, v float64) (Acceleration, error) {
	mpss, err := accelerationUnits.toCanonical(uint8(unit), v)
	return Acceleration(mpss), err
}

// FromMetersPerSecondSquared returns an acceleration given in meters per second squared.
func FromMetersPerSecondSquared(v float64) Acceleration { return Acceleration(v) }

// FromFeetPerSecondSquared returns an acceleration given in feet per second squared.
func FromFeetPerSecondSquared(v float64) Acceleration {
	return Acceleration(v * accelerationUnits.units[FeetPerSecondSquared].factor)
}

// MetersPerSecondSquared returns the acceleration in meters per second squared.
func (a Acceleration) MetersPerSecondSquared() float64 { return float64(a) }

// FeetPerSecondSquared returns the acceleration in feet per second squared.
func (a Acceleration) FeetPerSecondSquared() float64 {
	return float64(a) / accelerationUnits.units[FeetPerSecondSquared].factor
}

// MPSS is shorthand for MetersPerSecondSquared.
func (a Acceleration) MPSS() float64 { return a.MetersPerSecondSquared() }

// FPSS is shorthand for FeetPerSecondSquared.
func (a Acceleration) FPSS() float64 { return a.FeetPerSecondSquared() }

// In returns the acceleration measured in unit.
func (a Acceleration) In(unit AccelerationUnit) (float64, error) {
	return accelerationUnits.fromCanonical(uint8(unit), float64(a))
}

// Format writes the acceleration in unit with prec decimals, followed by the
// unit symbol.
func (a Acceleration) Format(unit AccelerationUnit, prec int) (string, error) {
	return accelerationUnits.format(uint8(unit), float64(a), prec)
}

// String writes the acceleration in meters per second squared, e.g. "9.8 m/s²".
func (a Acceleration) String() string {
	s, _ := a.Format(MetersPerSecondSquared, -1)
	return s
}

// IsZero reports whether a is zero.
func (a Acceleration) IsZero() bool { return a == 0 }

// IsPositive reports whether a is greater than zero.
func (a Acceleration) IsPositive() bool { return a > 0 }

// IsNegative reports whether a is less than zero.
func (a Acceleration) IsNegative() bool { return a < 0 }

// Scale returns a multiplied by f.
func (a Acceleration) Scale(f float64) Acceleration { return Acceleration(float64(a) * f) }

// Div returns a divided by f.
func (a Acceleration) Div(f float64) Acceleration { return Acceleration(float64(a) / f) }

// Ratio returns a / o. The units cancel, leaving a plain number.
func (a Acceleration) Ratio(o Acceleration) float64 { return float64(a) / float64(o) }

// Lerp interpolates from a to b. The factor is not clamped.
func (a Acceleration) Lerp(b Acceleration, t float64) Acceleration { return lerp(a, b, t) }

// Clamp limits a to [lo, hi]. It is an error for lo to exceed hi.
func (a Acceleration) Clamp(lo, hi Acceleration) (Acceleration, error) {
	return clampChecked(a, lo, hi)
}

// MulTime returns the speed gained accelerating at a for t, e.g.
// 10 m/s² * 5 s = 50 m/s.
func (a Acceleration) MulTime(t TimeSpan) Speed {
	return Speed(float64(a) * float64(t))
}
