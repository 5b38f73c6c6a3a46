package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/phanxgames/measure"
	"github.com/phanxgames/measure/internal/config"
)

var errUsage = errors.New("bad arguments")

// runConvert converts a quantity to the named unit. The unit decides which
// kind of quantity the first argument is parsed as.
func runConvert(cfg config.Config, args []string) ([]string, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: want <quantity> <unit>", errUsage)
	}
	qty, unit := args[0], args[1]
	prec := cfg.Precision

	if u, err := measure.ParseDistanceUnit(unit); err == nil {
		d, err := measure.ParseDistance(qty)
		if err != nil {
			return nil, err
		}
		s, err := d.Format(u, prec)
		return []string{s}, err
	}
	if u, err := measure.ParseSpeedUnit(unit); err == nil {
		v, err := measure.ParseSpeed(qty)
		if err != nil {
			return nil, err
		}
		s, err := v.Format(u, prec)
		return []string{s}, err
	}
	if u, err := measure.ParseMassUnit(unit); err == nil {
		m, err := measure.ParseMass(qty)
		if err != nil {
			return nil, err
		}
		s, err := m.Format(u, prec)
		return []string{s}, err
	}
	if u, err := measure.ParseAccelerationUnit(unit); err == nil {
		a, err := measure.ParseAcceleration(qty)
		if err != nil {
			return nil, err
		}
		s, err := a.Format(u, prec)
		return []string{s}, err
	}
	return nil, fmt.Errorf("%w: %q", measure.ErrUnrecognizedUnit, unit)
}

func runAngle(cfg config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want at least one angle", errUsage)
	}
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		a, err := measure.ParseAngle(arg)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%s: %s  %s  %.4f rad",
			arg, a.Format180(cfg.Precision), a.Format360(cfg.Precision), a.Radians360()))
	}
	return lines, nil
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runArc(cfg config.Config, args []string) ([]string, error) {
	fs := newFlagSet("arc")
	start := fs.String("start", "0", "arc start angle")
	size := fs.Float64("size", -1, "arc size in degrees")
	end := fs.String("end", "", "arc end angle, instead of -size")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	s, err := measure.ParseAngle(*start)
	if err != nil {
		return nil, err
	}
	var arc measure.AngleRange
	switch {
	case *end != "" && *size >= 0:
		return nil, fmt.Errorf("%w: give -size or -end, not both", errUsage)
	case *end != "":
		e, err := measure.ParseAngle(*end)
		if err != nil {
			return nil, err
		}
		arc = measure.AngleRangeBetween(s, e)
	case *size < 0:
		return nil, fmt.Errorf("%w: -size or -end is required", errUsage)
	default:
		if arc, err = measure.NewAngleRange(s, *size); err != nil {
			return nil, err
		}
	}
	slog.Debug("arc", "range", arc.String(), "size", arc.Size())

	lines := []string{"arc " + arc.String()}
	for _, arg := range fs.Args() {
		a, err := measure.ParseAngle(arg)
		if err != nil {
			return nil, err
		}
		c := arc.Clamp(a)
		lines = append(lines, fmt.Sprintf("%s: contains=%t clamp=%s",
			arg, arc.Contains(a), c.Format360(cfg.Precision)))
	}
	return lines, nil
}

// runTravel reports the distance covered from an initial speed under
// constant acceleration, and the final speed.
func runTravel(cfg config.Config, args []string) ([]string, error) {
	fs := newFlagSet("travel")
	speedArg := fs.String("speed", "0", "initial speed")
	timeArg := fs.String("time", "", "time spent travelling")
	accelArg := fs.String("accel", "0", "constant acceleration")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *timeArg == "" {
		return nil, fmt.Errorf("%w: -time is required", errUsage)
	}

	v0, err := measure.ParseSpeed(*speedArg)
	if err != nil {
		return nil, err
	}
	t, err := measure.ParseTimeSpan(*timeArg)
	if err != nil {
		return nil, err
	}
	a, err := measure.ParseAcceleration(*accelArg)
	if err != nil {
		return nil, err
	}

	gained := a.MulTime(t)
	v1 := v0 + gained
	avg := v0 + gained.Div(2)
	d := avg.MulTime(t)

	ds, err := d.Format(cfg.DistanceUnit, cfg.Precision)
	if err != nil {
		return nil, err
	}
	vs, err := v1.Format(cfg.SpeedUnit, cfg.Precision)
	if err != nil {
		return nil, err
	}
	return []string{
		"time:        " + t.String(),
		"distance:    " + ds,
		"final speed: " + vs,
	}, nil
}

func runSpan(args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: want <time>", errUsage)
	}
	t, err := measure.ParseTimeSpan(args[0])
	if err != nil {
		return nil, err
	}
	return []string{t.String()}, nil
}
