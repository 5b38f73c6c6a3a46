package measure

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// unitDef describes one unit of a quantity: how many canonical units one of
// it is worth and the names it is written and parsed as.
type unitDef struct {
	factor  float64
	symbol  string
	name    string
	aliases []string
}

// unitTable is the ordered set of units of one quantity, indexed by the
// quantity's unit enum.
type unitTable struct {
	kind  string
	units []unitDef
}

func (t unitTable) lookup(u uint8) (unitDef, error) {
	if int(u) >= len(t.units) {
		return unitDef{}, fmt.Errorf("%w: %s unit %d", ErrUnrecognizedUnit, t.kind, u)
	}
	return t.units[u], nil
}

func (t unitTable) valid(u uint8) bool {
	return int(u) < len(t.units)
}

func (t unitTable) symbol(u uint8) string {
	if !t.valid(u) {
		return ""
	}
	return t.units[u].symbol
}

func (t unitTable) name(u uint8) string {
	if !t.valid(u) {
		return ""
	}
	return t.units[u].name
}

func (t unitTable) stringOf(u uint8, typeName string) string {
	if !t.valid(u) {
		return typeName + "(" + strconv.Itoa(int(u)) + ")"
	}
	return t.units[u].name
}

// toCanonical converts v, measured in unit u, to the canonical unit.
func (t unitTable) toCanonical(u uint8, v float64) (float64, error) {
	def, err := t.lookup(u)
	if err != nil {
		return 0, err
	}
	return v * def.factor, nil
}

// fromCanonical converts a canonical value to unit u.
func (t unitTable) fromCanonical(u uint8, v float64) (float64, error) {
	def, err := t.lookup(u)
	if err != nil {
		return 0, err
	}
	return v / def.factor, nil
}

func (t unitTable) format(u uint8, v float64, prec int) (string, error) {
	def, err := t.lookup(u)
	if err != nil {
		return "", err
	}
	return formatFloat(v/def.factor, prec) + " " + def.symbol, nil
}

// parseUnit finds the unit written as s. Symbols, long names and aliases are
// matched without regard to case.
func (t unitTable) parseUnit(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	for i, def := range t.units {
		if strings.EqualFold(s, def.symbol) || strings.EqualFold(s, def.name) {
			return uint8(i), nil
		}
		for _, a := range def.aliases {
			if strings.EqualFold(s, a) {
				return uint8(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s unit %q", ErrUnrecognizedUnit, t.kind, s)
}

// parse reads "<number> <unit>" and returns the value in canonical units.
// The space is optional and a bare number is taken as canonical.
func (t unitTable) parse(s string) (float64, error) {
	num, unit := splitQuantity(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidArgument, t.kind, s, err)
	}
	if unit == "" {
		return v, nil
	}
	u, err := t.parseUnit(unit)
	if err != nil {
		return 0, err
	}
	return v * t.units[u].factor, nil
}

// splitQuantity splits "12.5km" or "12.5 km" into number and unit text.
func splitQuantity(s string) (num, unit string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return !(unicode.IsDigit(r) || strings.ContainsRune("+-.eE", r))
	})
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
