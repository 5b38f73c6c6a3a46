package measure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vehicleData struct {
	Range    Distance      `yaml:"range"`
	TopSpeed Speed         `yaml:"top_speed"`
	Cargo    Mass          `yaml:"cargo"`
	Gravity  Acceleration  `yaml:"gravity"`
	Cooldown TimeSpan      `yaml:"cooldown"`
	Heading  Angle         `yaml:"heading"`
	Patrol   DistanceRange `yaml:"patrol"`
	Spawn    IntRange      `yaml:"spawn"`
	Cone     AngleRange    `yaml:"cone"`
}

const vehicleYAML = `
range: 10 km
top_speed: 60 MPH
cargo: 2 t
gravity: 9.8
cooldown: "00:01:30"
heading: 45deg
patrol: {min: 1 km, max: 2 mi}
spawn: {min: 1, max: 4}
cone: {start: 350, end: 10}
`

func TestDecodeQuantities(t *testing.T) {
	var v vehicleData
	require.NoError(t, yaml.Unmarshal([]byte(vehicleYAML), &v))

	assert.Equal(t, FromKilometers(10), v.Range)
	assert.InDelta(t, 60, v.TopSpeed.MPH(), 1e-9)
	assert.Equal(t, FromMetricTons(2), v.Cargo)
	assert.Equal(t, FromMetersPerSecondSquared(9.8), v.Gravity)
	assert.Equal(t, FromSeconds(90), v.Cooldown)
	assert.InDelta(t, 45, v.Heading.RawDegrees(), epsilon)
	assert.Equal(t, FromKilometers(1), v.Patrol.Min())
	assert.InDelta(t, 2, v.Patrol.Max().Miles(), 1e-12)
	assert.Equal(t, 4, v.Spawn.Max())
	assert.InDelta(t, 20, v.Cone.Size(), epsilon)
}

func TestEncodeDecodeQuantities(t *testing.T) {
	patrol, err := NewRange(FromMeters(5), FromMeters(50))
	require.NoError(t, err)
	spawn, err := NewIntRange(2, 3)
	require.NoError(t, err)
	cone, err := NewAngleRange(Degrees(-30), 60)
	require.NoError(t, err)

	in := vehicleData{
		Range:    FromMeters(1234.5),
		TopSpeed: FromKPH(90),
		Cargo:    FromPounds(300),
		Gravity:  FromFeetPerSecondSquared(32),
		Cooldown: FromSeconds(2.125),
		Heading:  Degrees(-400),
		Patrol:   patrol,
		Spawn:    spawn,
		Cone:     cone,
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "range: 1234.5 m")
	assert.Contains(t, string(data), "cooldown: 2.125s")

	var out vehicleData
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in.Range, out.Range)
	assert.Equal(t, in.TopSpeed, out.TopSpeed)
	assert.Equal(t, in.Cargo, out.Cargo)
	assert.Equal(t, in.Gravity, out.Gravity)
	assert.Equal(t, in.Cooldown, out.Cooldown)
	assert.Equal(t, in.Heading.RawDegrees(), out.Heading.RawDegrees())
	assert.True(t, in.Patrol.Equal(out.Patrol))
	assert.True(t, in.Spawn.Equal(out.Spawn))
	assert.True(t, in.Cone.Equal(out.Cone))
}

func TestDecodeValidatesRanges(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"inverted range", "patrol: {min: 5 km, max: 1 km}", ErrInvalidArgument},
		{"inverted int range", "spawn: {min: 3, max: 1}", ErrInvalidArgument},
		{"negative arc", "cone: {start: 0, size: -5}", ErrInvalidArgument},
		{"size and end", "cone: {start: 0, size: 5, end: 10}", ErrInvalidArgument},
		{"empty arc", "cone: {start: 0}", ErrInvalidArgument},
		{"unknown unit", "range: 3 leagues", ErrUnrecognizedUnit},
		{"non-scalar", "range: [1, 2]", ErrInvalidArgument},
		{"nan cooldown", "cooldown: NaN", ErrInvalidArgument},
		{"infinite cooldown", "cooldown: 00:00:Inf", ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v vehicleData
			err := yaml.Unmarshal([]byte(tt.doc), &v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestUnitYAML(t *testing.T) {
	type prefs struct {
		Distance DistanceUnit     `yaml:"distance"`
		Speed    SpeedUnit        `yaml:"speed"`
		Mass     MassUnit         `yaml:"mass"`
		Accel    AccelerationUnit `yaml:"accel"`
	}
	var p prefs
	require.NoError(t, yaml.Unmarshal([]byte("{distance: Miles, speed: km/h, mass: tonne, accel: fpss}"), &p))
	assert.Equal(t, prefs{Miles, KilometersPerHour, MetricTons, FeetPerSecondSquared}, p)

	data, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "distance: mi")
	assert.Contains(t, string(data), "speed: KPH")

	_, err = yaml.Marshal(prefs{Distance: DistanceUnit(99)})
	assert.True(t, errors.Is(err, ErrUnrecognizedUnit))
}
