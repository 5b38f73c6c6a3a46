package measure

// DistanceUnit selects a unit of length.
type DistanceUnit uint8

// Supported DistanceUnit values.
const (
	Meters DistanceUnit = iota
	Kilometers
	Feet
	Yards
	Miles
)

var distanceUnits = unitTable{
	kind: "distance",
	units: []unitDef{
		Meters:     {factor: 1, symbol: "m", name: "meters", aliases: []string{"meter", "metre", "metres"}},
		Kilometers: {factor: 1000, symbol: "km", name: "kilometers", aliases: []string{"kilometer", "kilometre", "kilometres"}},
		Feet:       {factor: 0.3048, symbol: "ft", name: "feet", aliases: []string{"foot"}},
		Yards:      {factor: 0.9144, symbol: "yd", name: "yards", aliases: []string{"yard"}},
		Miles:      {factor: 1609.344, symbol: "mi", name: "miles", aliases: []string{"mile"}},
	},
}

// Valid reports whether u is a known unit.
func (u DistanceUnit) Valid() bool { return distanceUnits.valid(uint8(u)) }

// Symbol returns the short form, e.g. "km". It is empty for unknown units.
func (u DistanceUnit) Symbol() string { return distanceUnits.symbol(uint8(u)) }

// Name returns the long form, e.g. "kilometers". It is empty for unknown units.
func (u DistanceUnit) Name() string { return distanceUnits.name(uint8(u)) }

// String returns the unit name, or DistanceUnit(n) for unknown units.
func (u DistanceUnit) String() string { return distanceUnits.stringOf(uint8(u), "DistanceUnit") }

// ParseDistanceUnit returns the unit written as s ("km", "miles", ...).
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	u, err := distanceUnits.parseUnit(s)
	return DistanceUnit(u), err
}

// Distance is a length stored in meters.
type Distance float64

// NewDistance returns v measured in unit.
func NewDistance(unit DistanceUnit, v float64) (Distance, error) {
	m, err := distanceUnits.toCanonical(uint8(unit), v)
	return Distance(m), err
}

// FromMeters returns a distance given in meters.
func FromMeters(v float64) Distance { return Distance(v) }

// FromKilometers returns a distance given in kilometers.
func FromKilometers(v float64) Distance { return Distance(v * distanceUnits.units[Kilometers].factor) }

// FromFeet returns a distance given in feet.
func FromFeet(v float64) Distance { return Distance(v * distanceUnits.units[Feet].factor) }

// FromYards returns a distance given in yards.
func FromYards(v float64) Distance { return Distance(v * distanceUnits.units[Yards].factor) }

// FromMiles returns a distance given in miles.
func FromMiles(v float64) Distance { return Distance(v * distanceUnits.units[Miles].factor) }

// Meters returns the distance in meters.
func (d Distance) Meters() float64 { return float64(d) }

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 { return float64(d) / distanceUnits.units[Kilometers].factor }

// Feet returns the distance in feet.
func (d Distance) Feet() float64 { return float64(d) / distanceUnits.units[Feet].factor }

// Yards returns the distance in yards.
func (d Distance) Yards() float64 { return float64(d) / distanceUnits.units[Yards].factor }

// Miles returns the distance in miles.
func (d Distance) Miles() float64 { return float64(d) / distanceUnits.units[Miles].factor }

// In returns the distance measured in unit.
func (d Distance) In(unit DistanceUnit) (float64, error) {
	return distanceUnits.fromCanonical(uint8(unit), float64(d))
}

// Format writes the distance in unit with prec decimals (-1 for the
// shortest exact form), followed by the unit symbol.
func (d Distance) Format(unit DistanceUnit, prec int) (string, error) {
	return distanceUnits.format(uint8(unit), float64(d), prec)
}

// String writes the distance in meters, e.g. "50 m".
func (d Distance) String() string {
	s, _ := d.Format(Meters, -1)
	return s
}

// IsZero reports whether d is zero.
func (d Distance) IsZero() bool { return d == 0 }

// IsPositive reports whether d is greater than zero.
func (d Distance) IsPositive() bool { return d > 0 }

// IsNegative reports whether d is less than zero.
func (d Distance) IsNegative() bool { return d < 0 }

// Scale returns d multiplied by f.
func (d Distance) Scale(f float64) Distance { return Distance(float64(d) * f) }

// Div returns d divided by f.
func (d Distance) Div(f float64) Distance { return Distance(float64(d) / f) }

// Ratio returns d / o. The units cancel, leaving a plain number.
func (d Distance) Ratio(o Distance) float64 { return float64(d) / float64(o) }

// Lerp interpolates from d to b. t is not clamped.
func (d Distance) Lerp(b Distance, t float64) Distance { return lerp(d, b, t) }

// Clamp limits d to [lo, hi]. It is an error for lo to exceed hi.
func (d Distance) Clamp(lo, hi Distance) (Distance, error) { return clampChecked(d, lo, hi) }

// DivTime returns the speed that covers d in t.
func (d Distance) DivTime(t TimeSpan) Speed {
	return Speed(float64(d) / float64(t))
}

// DivSpeed returns the time it takes to cover d at s.
func (d Distance) DivSpeed(s Speed) TimeSpan {
	return TimeSpan(float64(d) / float64(s))
}
