package measure

// SpeedUnit selects a unit of speed.
type SpeedUnit uint8

// Supported SpeedUnit values.
const (
	MetersPerSecond SpeedUnit = iota
	KilometersPerHour
	MilesPerHour
)

var speedUnits = unitTable{
	kind: "speed",
	units: []unitDef{
		// "m/s" rather than "ms" or "mps", which read as milliseconds or go unused.
		MetersPerSecond:   {factor: 1, symbol: "m/s", name: "meters/second", aliases: []string{"mps", "meters per second"}},
		KilometersPerHour: {factor: 1 / 3.6, symbol: "KPH", name: "kilometers/hour", aliases: []string{"km/h", "kmh", "kilometers per hour"}},
		MilesPerHour:      {factor: 0.44704, symbol: "MPH", name: "miles/hour", aliases: []string{"mi/h", "miles per hour"}},
	},
}

// Valid reports whether u is a known unit.
func (u SpeedUnit) Valid() bool { return speedUnits.valid(uint8(u)) }

// Symbol returns the short form, e.g. "KPH". It is empty for unknown units.
func (u SpeedUnit) Symbol() string { return speedUnits.symbol(uint8(u)) }

// Name returns the long form. It is empty for unknown units.
func (u SpeedUnit) Name() string { return speedUnits.name(uint8(u)) }

// String returns the unit name, or SpeedUnit(n) for unknown units.
func (u SpeedUnit) String() string { return speedUnits.stringOf(uint8(u), "SpeedUnit") }

// ParseSpeedUnit returns the unit written as s ("m/s", "KPH", "mph", ...).
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	u, err := speedUnits.parseUnit(s)
	return SpeedUnit(u), err
}

// Speed is a speed stored in meters per second.
type Speed float64

// NewSpeed returns v measured in unit.
func NewSpeed(unit SpeedUnit, v float64) (Speed, error) {
	mps, err := speedUnits.toCanonical(uint8(unit), v)
	return Speed(mps), err
}

// FromMetersPerSecond returns a speed given in meters per second.
func FromMetersPerSecond(v float64) Speed { return Speed(v) }

// FromKPH returns a speed given in kilometers per hour.
func FromKPH(v float64) Speed { return Speed(v * speedUnits.units[KilometersPerHour].factor) }

// FromMPH returns a speed given in miles per hour.
func FromMPH(v float64) Speed { return Speed(v * speedUnits.units[MilesPerHour].factor) }

// MetersPerSecond returns the speed in meters per second.
func (s Speed) MetersPerSecond() float64 { return float64(s) }

// KPH returns the speed in kilometers per hour.
func (s Speed) KPH() float64 { return float64(s) / speedUnits.units[KilometersPerHour].factor }

// MPH returns the speed in miles per hour.
func (s Speed) MPH() float64 { return float64(s) / speedUnits.units[MilesPerHour].factor }

// In returns the speed measured in unit.
func (s Speed) In(unit SpeedUnit) (float64, error) {
	return speedUnits.fromCanonical(uint8(unit), float64(s))
}

// Format writes the speed in unit with prec decimals, followed by the unit
// symbol.
func (s Speed) Format(unit SpeedUnit, prec int) (string, error) {
	return speedUnits.format(uint8(unit), float64(s), prec)
}

// String writes the speed in meters per second, e.g. "10 m/s".
func (s Speed) String() string {
	str, _ := s.Format(MetersPerSecond, -1)
	return str
}

// IsZero reports whether s is zero.
func (s Speed) IsZero() bool { return s == 0 }

// IsPositive reports whether s is greater than zero.
func (s Speed) IsPositive() bool { return s > 0 }

// IsNegative reports whether s is less than zero.
func (s Speed) IsNegative() bool { return s < 0 }

// Scale returns s multiplied by f.
func (s Speed) Scale(f float64) Speed { return Speed(float64(s) * f) }

// Div returns s divided by f.
func (s Speed) Div(f float64) Speed { return Speed(float64(s) / f) }

// Ratio returns s / o, e.g. 100 KPH / 50 KPH = 2.
func (s Speed) Ratio(o Speed) float64 { return float64(s) / float64(o) }

// Lerp interpolates from s to b. The factor is not clamped.
func (s Speed) Lerp(b Speed, t float64) Speed { return lerp(s, b, t) }

// Clamp limits s to [lo, hi]. It is an error for lo to exceed hi.
func (s Speed) Clamp(lo, hi Speed) (Speed, error) { return clampChecked(s, lo, hi) }

// MoveTowards steps s toward target by at most maxDelta, stopping at target.
func (s Speed) MoveTowards(target, maxDelta Speed) Speed {
	return moveTowards(s, target, maxDelta)
}

// MulTime returns the distance covered at s during t.
func (s Speed) MulTime(t TimeSpan) Distance {
	return Distance(float64(s) * float64(t))
}

// DivTime returns the acceleration that reaches s in t, e.g.
// (50 m/s) / (5 s) = 10 m/s².
func (s Speed) DivTime(t TimeSpan) Acceleration {
	return Acceleration(float64(s) / float64(t))
}

// DivAcceleration returns the time it takes to reach s at a, e.g.
// (50 m/s) / (10 m/s²) = 5 s.
func (s Speed) DivAcceleration(a Acceleration) TimeSpan {
	return TimeSpan(float64(s) / float64(a))
}
