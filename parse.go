package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDistance reads a distance such as "12.5 km" or "300ft". A bare
// number is taken as meters.
func ParseDistance(s string) (Distance, error) {
	v, err := distanceUnits.parse(s)
	return Distance(v), err
}

// ParseSpeed reads a speed such as "30 MPH" or "10 m/s". A bare number is
// taken as meters per second.
func ParseSpeed(s string) (Speed, error) {
	v, err := speedUnits.parse(s)
	return Speed(v), err
}

// ParseMass reads a mass such as "2 lbs" or "1.5 t". A bare number is taken
// as kilograms.
func ParseMass(s string) (Mass, error) {
	v, err := massUnits.parse(s)
	return Mass(v), err
}

// ParseAcceleration reads an acceleration such as "9.81 m/s²". A bare
// number is taken as meters per second squared.
func ParseAcceleration(s string) (Acceleration, error) {
	v, err := accelerationUnits.parse(s)
	return Acceleration(v), err
}

// ParseAngle reads an angle in degrees ("90", "90°", "90deg") or radians
// ("1.57rad"). The raw value is kept as written.
func ParseAngle(s string) (Angle, error) {
	num, unit := splitQuantity(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Angle{}, fmt.Errorf("%w: angle %q: %v", ErrInvalidArgument, s, err)
	}
	switch strings.ToLower(unit) {
	case "", "°", "deg", "degrees":
		return Degrees(v), nil
	case "rad", "radians":
		return Radians(v), nil
	}
	return Angle{}, fmt.Errorf("%w: angle unit %q", ErrUnrecognizedUnit, unit)
}

// ParseTimeSpan reads a span written as "HH:MM:SS[.ff]", "MM:SS", a bare
// number of seconds, or a Go duration such as "1h30m". NaN and infinite
// values are rejected.
func ParseTimeSpan(s string) (TimeSpan, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return parseClock(s)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && isFinite(v) {
		return TimeSpan(v), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: time span %q: %v", ErrInvalidArgument, s, err)
	}
	return FromDuration(d), nil
}

func parseClock(s string) (TimeSpan, error) {
	neg := strings.HasPrefix(s, "-")
	parts := strings.Split(strings.TrimPrefix(s, "-"), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: time span %q: too many fields", ErrInvalidArgument, s)
	}
	var total float64
	for i, p := range parts {
		last := i == len(parts)-1
		var v float64
		var err error
		if last {
			v, err = strconv.ParseFloat(p, 64)
		} else {
			var n int
			n, err = strconv.Atoi(p)
			v = float64(n)
		}
		if err != nil || v < 0 || !isFinite(v) {
			return 0, fmt.Errorf("%w: time span %q: bad field %q", ErrInvalidArgument, s, p)
		}
		total = total*60 + v
	}
	if neg {
		total = -total
	}
	return TimeSpan(total), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
