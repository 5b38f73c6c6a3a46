package measure

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Quantities encode as "<value> <symbol>" in their canonical unit and decode
// from any string ParseDistance, ParseSpeed and friends accept. Ranges
// encode as {min, max} mappings and are validated on decode.

func scalarValue(n *yaml.Node, kind string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: %s must be a scalar (line %d)", ErrInvalidArgument, kind, n.Line)
	}
	return n.Value, nil
}

func (d Distance) MarshalYAML() (any, error) { return d.String(), nil }

func (d *Distance) UnmarshalYAML(n *yaml.Node) error {
	s, err := scalarValue(n, "distance")
	if err != nil {
		return err
	}
	v, err := ParseDistance(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (s Speed) MarshalYAML() (any, error) { return s.String(), nil }

func (s *Speed) UnmarshalYAML(n *yaml.Node) error {
	str, err := scalarValue(n, "speed")
	if err != nil {
		return err
	}
	v, err := ParseSpeed(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (m Mass) MarshalYAML() (any, error) { return m.String(), nil }

func (m *Mass) UnmarshalYAML(n *yaml.Node) error {
	s, err := scalarValue(n, "mass")
	if err != nil {
		return err
	}
	v, err := ParseMass(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (a Acceleration) MarshalYAML() (any, error) { return a.String(), nil }

func (a *Acceleration) UnmarshalYAML(n *yaml.Node) error {
	s, err := scalarValue(n, "acceleration")
	if err != nil {
		return err
	}
	v, err := ParseAcceleration(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML writes the span as seconds ("90.5s") so it decodes without
// loss. ParseTimeSpan also reads clock notation on the way in.
func (t TimeSpan) MarshalYAML() (any, error) {
	return strconv.FormatFloat(float64(t), 'f', -1, 64) + "s", nil
}

func (t *TimeSpan) UnmarshalYAML(n *yaml.Node) error {
	s, err := scalarValue(n, "time span")
	if err != nil {
		return err
	}
	v, err := ParseTimeSpan(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML writes the raw degrees, keeping any winding.
func (a Angle) MarshalYAML() (any, error) {
	return strconv.FormatFloat(a.raw, 'f', -1, 64) + "°", nil
}

func (a *Angle) UnmarshalYAML(n *yaml.Node) error {
	s, err := scalarValue(n, "angle")
	if err != nil {
		return err
	}
	v, err := ParseAngle(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

type rangeYAML[T constraints.Float] struct {
	Min T `yaml:"min"`
	Max T `yaml:"max"`
}

func (r Range[T]) MarshalYAML() (any, error) {
	return rangeYAML[T]{Min: r.min, Max: r.max}, nil
}

func (r *Range[T]) UnmarshalYAML(n *yaml.Node) error {
	var raw rangeYAML[T]
	if err := n.Decode(&raw); err != nil {
		return err
	}
	v, err := NewRange(raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

type intRangeYAML struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) MarshalYAML() (any, error) {
	return intRangeYAML{Min: r.min, Max: r.max}, nil
}

func (r *IntRange) UnmarshalYAML(n *yaml.Node) error {
	var raw intRangeYAML
	if err := n.Decode(&raw); err != nil {
		return err
	}
	v, err := NewIntRange(raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// angleRangeYAML accepts either a size or an end, never both.
type angleRangeYAML struct {
	Start Angle    `yaml:"start"`
	Size  *float64 `yaml:"size,omitempty"`
	End   *Angle   `yaml:"end,omitempty"`
}

func (r AngleRange) MarshalYAML() (any, error) {
	size := r.size
	return angleRangeYAML{Start: r.start, Size: &size}, nil
}

func (r *AngleRange) UnmarshalYAML(n *yaml.Node) error {
	var raw angleRangeYAML
	if err := n.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Size != nil && raw.End != nil:
		return fmt.Errorf("%w: angle range sets both size and end (line %d)", ErrInvalidArgument, n.Line)
	case raw.End != nil:
		*r = AngleRangeBetween(raw.Start, *raw.End)
		return nil
	case raw.Size != nil:
		v, err := NewAngleRange(raw.Start, *raw.Size)
		if err != nil {
			return err
		}
		*r = v
		return nil
	}
	return fmt.Errorf("%w: angle range needs a size or an end (line %d)", ErrInvalidArgument, n.Line)
}

// Units encode as their symbol and decode from any spelling the Parse*Unit
// functions accept.

func (u DistanceUnit) MarshalYAML() (any, error) { return unitSymbol(distanceUnits, uint8(u)) }

func (u *DistanceUnit) UnmarshalYAML(n *yaml.Node) error {
	return decodeUnit(n, distanceUnits, (*uint8)(u))
}

func (u SpeedUnit) MarshalYAML() (any, error) { return unitSymbol(speedUnits, uint8(u)) }

func (u *SpeedUnit) UnmarshalYAML(n *yaml.Node) error {
	return decodeUnit(n, speedUnits, (*uint8)(u))
}

func (u MassUnit) MarshalYAML() (any, error) { return unitSymbol(massUnits, uint8(u)) }

func (u *MassUnit) UnmarshalYAML(n *yaml.Node) error {
	return decodeUnit(n, massUnits, (*uint8)(u))
}

func (u AccelerationUnit) MarshalYAML() (any, error) {
	return unitSymbol(accelerationUnits, uint8(u))
}

func (u *AccelerationUnit) UnmarshalYAML(n *yaml.Node) error {
	return decodeUnit(n, accelerationUnits, (*uint8)(u))
}

func unitSymbol(t unitTable, u uint8) (any, error) {
	def, err := t.lookup(u)
	if err != nil {
		return nil, err
	}
	return def.symbol, nil
}

func decodeUnit(n *yaml.Node, t unitTable, dst *uint8) error {
	s, err := scalarValue(n, t.kind+" unit")
	if err != nil {
		return err
	}
	u, err := t.parseUnit(s)
	if err != nil {
		return err
	}
	*dst = u
	return nil
}
