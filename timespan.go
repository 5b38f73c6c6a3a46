package measure

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// TimeSpan is a length of time stored as float64 seconds. It is meant for
// gameplay timing, not for sub-millisecond accuracy; use time.Duration for
// that.
type TimeSpan float64

// NewTimeSpan returns hours + minutes + seconds. Components need not be
// normalized: NewTimeSpan(1, 120, 75) is 3h 1m 15s.
func NewTimeSpan(hours, minutes int, seconds float64) TimeSpan {
	return TimeSpan(secondsPerHour*float64(hours) + secondsPerMinute*float64(minutes) + seconds)
}

// FromSeconds returns a span given in seconds.
func FromSeconds(s float64) TimeSpan { return TimeSpan(s) }

// FromMinutes returns a span given in minutes.
func FromMinutes(m float64) TimeSpan { return TimeSpan(m * secondsPerMinute) }

// FromHours returns a span given in hours.
func FromHours(h float64) TimeSpan { return TimeSpan(h * secondsPerHour) }

// FromDuration converts a time.Duration. Precision below float64 seconds
// is lost.
func FromDuration(d time.Duration) TimeSpan {
	return TimeSpan(d.Seconds())
}

// FromTicks returns the time taken by n game ticks at the current
// ebiten.TPS.
func FromTicks(n int) TimeSpan {
	return TimeSpan(float64(n) / float64(ticksPerSecond()))
}

func ticksPerSecond() int {
	tps := ebiten.TPS()
	if tps <= 0 {
		return ebiten.DefaultTPS
	}
	return tps
}

// Duration converts t to a time.Duration, rounded to the nearest
// nanosecond.
func (t TimeSpan) Duration() time.Duration {
	return time.Duration(math.Round(float64(t) * float64(time.Second)))
}

// Ticks returns t in game ticks at the current ebiten.TPS, rounded.
func (t TimeSpan) Ticks() int {
	return int(math.Round(float64(t) * float64(ticksPerSecond())))
}

// Hours returns the whole hours in t.
func (t TimeSpan) Hours() int { return int(float64(t) / secondsPerHour) }

// Minutes returns the whole minutes in t past the last whole hour.
func (t TimeSpan) Minutes() int { return int(math.Mod(float64(t)/secondsPerMinute, 60)) }

// Seconds returns the seconds in t past the last whole minute, fraction
// included.
func (t TimeSpan) Seconds() float64 { return math.Mod(float64(t), 60) }

// TotalSeconds returns the whole span in seconds, fraction included.
func (t TimeSpan) TotalSeconds() float64 { return float64(t) }

// TotalMinutes returns the whole span in minutes, fraction included.
func (t TimeSpan) TotalMinutes() float64 { return float64(t) / secondsPerMinute }

// TotalHours returns the whole span in hours, fraction included.
func (t TimeSpan) TotalHours() float64 { return float64(t) / secondsPerHour }

// IsZero reports whether t is zero.
func (t TimeSpan) IsZero() bool { return t == 0 }

// IsPositive reports whether t is greater than zero.
func (t TimeSpan) IsPositive() bool { return t > 0 }

// IsNegative reports whether t is less than zero.
func (t TimeSpan) IsNegative() bool { return t < 0 }

// Scale returns t multiplied by f.
func (t TimeSpan) Scale(f float64) TimeSpan { return TimeSpan(float64(t) * f) }

// Div returns t divided by f.
func (t TimeSpan) Div(f float64) TimeSpan { return TimeSpan(float64(t) / f) }

// Ratio returns t / o, e.g. 60 s / 10 s = 6.
func (t TimeSpan) Ratio(o TimeSpan) float64 { return float64(t) / float64(o) }

// Lerp interpolates from t to b. The factor is not clamped.
func (t TimeSpan) Lerp(b TimeSpan, f float64) TimeSpan { return lerp(t, b, f) }

// Clamp limits t to [lo, hi]. It is an error for lo to exceed hi.
func (t TimeSpan) Clamp(lo, hi TimeSpan) (TimeSpan, error) { return clampChecked(t, lo, hi) }

// MulSpeed returns the distance covered at s during t.
func (t TimeSpan) MulSpeed(s Speed) Distance { return s.MulTime(t) }

// MulAcceleration returns the speed gained accelerating at a for t.
func (t TimeSpan) MulAcceleration(a Acceleration) Speed { return a.MulTime(t) }

// String formats t as "HH:MM:SS", adding ".cc" hundredths when t is not a
// whole number of seconds after rounding.
func (t TimeSpan) String() string {
	sign := ""
	cs := int64(math.Round(float64(t) * 100))
	if cs < 0 {
		sign = "-"
		cs = -cs
	}
	frac := cs % 100
	secs := cs / 100
	h, m, s := secs/secondsPerHour, secs/secondsPerMinute%60, secs%60
	if frac == 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%02d", sign, h, m, s, frac)
}
