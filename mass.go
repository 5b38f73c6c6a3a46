package measure

// MassUnit selects a unit of mass.
type MassUnit uint8

// Supported MassUnit values.
const (
	Kilograms MassUnit = iota
	Pounds
	ShortTons
	LongTons
	MetricTons
)

var massUnits = unitTable{
	kind: "mass",
	units: []unitDef{
		Kilograms:  {factor: 1, symbol: "kg", name: "kilograms", aliases: []string{"kilogram", "kgs"}},
		Pounds:     {factor: 0.45359237, symbol: "lbs", name: "pounds", aliases: []string{"lb", "pound"}},
		ShortTons:  {factor: 907.18474, symbol: "tn", name: "short tons", aliases: []string{"short ton", "sh tn"}},
		LongTons:   {factor: 1016.0469088, symbol: "LT", name: "long tons", aliases: []string{"long ton", "long tn"}},
		MetricTons: {factor: 1000, symbol: "t", name: "metric tons", aliases: []string{"metric ton", "tonne", "tonnes"}},
	},
}

// Valid reports whether u is a known unit.
func (u MassUnit) Valid() bool { return massUnits.valid(uint8(u)) }

// Symbol returns the short form, e.g. "lbs". It is empty for unknown units.
func (u MassUnit) Symbol() string { return massUnits.symbol(uint8(u)) }

// Name returns the long form. It is empty for unknown units.
func (u MassUnit) Name() string { return massUnits.name(uint8(u)) }

// String returns the unit name, or MassUnit(n) for unknown units.
func (u MassUnit) String() string { return massUnits.stringOf(uint8(u), "MassUnit") }

// ParseMassUnit returns the unit written as s ("kg", "lbs", "tonnes", ...).
func ParseMassUnit(s string) (MassUnit, error) {
	u, err := massUnits.parseUnit(s)
	return MassUnit(u), err
}

// Mass is a mass stored in kilograms.
type Mass float64

// NewMass returns v measured in unit.
func NewMass(unit MassUnit, v float64) (Mass, error) {
	kg, err := massUnits.toCanonical(uint8(unit), v)
	return Mass(kg), err
}

// FromGrams returns a mass given in grams.
func FromGrams(v float64) Mass { return Mass(v / 1000) }

// FromKilograms returns a mass given in kilograms.
func FromKilograms(v float64) Mass { return Mass(v) }

// FromPounds returns a mass given in pounds.
func FromPounds(v float64) Mass { return Mass(v * massUnits.units[Pounds].factor) }

// FromShortTons returns a mass given in short tons.
func FromShortTons(v float64) Mass { return Mass(v * massUnits.units[ShortTons].factor) }

// FromLongTons returns a mass given in long tons.
func FromLongTons(v float64) Mass { return Mass(v * massUnits.units[LongTons].factor) }

// FromMetricTons returns a mass given in metric tons.
func FromMetricTons(v float64) Mass { return Mass(v * massUnits.units[MetricTons].factor) }

// Grams returns the mass in grams.
func (m Mass) Grams() float64 { return float64(m) * 1000 }

// Kilograms returns the mass in kilograms.
func (m Mass) Kilograms() float64 { return float64(m) }

// Pounds returns the mass in pounds.
func (m Mass) Pounds() float64 { return float64(m) / massUnits.units[Pounds].factor }

// ShortTons returns the mass in short tons.
func (m Mass) ShortTons() float64 { return float64(m) / massUnits.units[ShortTons].factor }

// LongTons returns the mass in long tons.
func (m Mass) LongTons() float64 { return float64(m) / massUnits.units[LongTons].factor }

// MetricTons returns the mass in metric tons.
func (m Mass) MetricTons() float64 { return float64(m) / massUnits.units[MetricTons].factor }

// In returns the mass measured in unit.
func (m Mass) In(unit MassUnit) (float64, error) {
	return massUnits.fromCanonical(uint8(unit), float64(m))
}

// Format writes the mass in unit with prec decimals, followed by the unit
// symbol.
func (m Mass) Format(unit MassUnit, prec int) (string, error) {
	return massUnits.format(uint8(unit), float64(m), prec)
}

// String writes the mass in kilograms, e.g. "2 kg".
func (m Mass) String() string {
	s, _ := m.Format(Kilograms, -1)
	return s
}

// IsZero reports whether m is zero.
func (m Mass) IsZero() bool { return m == 0 }

// IsPositive reports whether m is greater than zero.
func (m Mass) IsPositive() bool { return m > 0 }

// IsNegative reports whether m is less than zero.
func (m Mass) IsNegative() bool { return m < 0 }

// Scale returns m multiplied by f.
func (m Mass) Scale(f float64) Mass { return Mass(float64(m) * f) }

// Div returns m divided by f.
func (m Mass) Div(f float64) Mass { return Mass(float64(m) / f) }

// Ratio returns m / o, e.g. 100 kg / 50 kg = 2.
func (m Mass) Ratio(o Mass) float64 { return float64(m) / float64(o) }

// Lerp interpolates from m to b. The factor is not clamped.
func (m Mass) Lerp(b Mass, t float64) Mass { return lerp(m, b, t) }

// Clamp limits m to [lo, hi]. It is an error for lo to exceed hi.
func (m Mass) Clamp(lo, hi Mass) (Mass, error) { return clampChecked(m, lo, hi) }
