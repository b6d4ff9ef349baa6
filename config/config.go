package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridworld/parameter"
)

// ErrInvalidConfig wraps every validation failure so callers can treat
// any startup parameter problem as fatal without string matching
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	World     WorldConfig     `toml:"world"`
	Evolution EvolutionConfig `toml:"evolution"`
	Build     BuildConfig     `toml:"build"`
	Particles ParticleConfig  `toml:"particles"`
	Camera    CameraConfig    `toml:"camera"`
	Logging   LoggingConfig   `toml:"logging"`
}

type WorldConfig struct {
	// Bound is the half-extent of the cubic world volume
	Bound float64 `toml:"bound"`

	// Seed drives the single random stream; a fixed seed replays a
	// session exactly. Zero means seed from the wall clock at startup
	Seed uint64 `toml:"seed"`

	// FourDWeight folds the W coordinate into camera depth; zero
	// degrades the projection to plain 3D
	FourDWeight float64 `toml:"fourd_weight"`
}

type EvolutionConfig struct {
	// Rate is the base evolution gain per second
	Rate float64 `toml:"rate"`

	// DecayFactor is the field strength retention per tick (0..1)
	DecayFactor float64 `toml:"decay_factor"`

	// FrequencyHz is the base oscillator frequency
	FrequencyHz float64 `toml:"frequency_hz"`
}

type BuildConfig struct {
	IntervalMin   float64 `toml:"interval_min"`
	IntervalMax   float64 `toml:"interval_max"`
	MinSeparation float64 `toml:"min_separation"`
}

type ParticleConfig struct {
	Capacity int `toml:"capacity"`
}

type CameraConfig struct {
	FOVMin         float64 `toml:"fov_min"`
	FOVMax         float64 `toml:"fov_max"`
	PitchLimit     float64 `toml:"pitch_limit"`
	OrbitRadiusMin float64 `toml:"orbit_radius_min"`
	OrbitRadiusMax float64 `toml:"orbit_radius_max"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads TOML over defaults and validates the result
// A missing path returns pure defaults; a broken file is fatal
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			Bound:       parameter.WorldBoundDefault,
			Seed:        0,
			FourDWeight: parameter.FourDWeightDefault,
		},
		Evolution: EvolutionConfig{
			Rate:        parameter.EvolutionRateDefault,
			DecayFactor: parameter.FieldDecayFactor,
			FrequencyHz: parameter.FieldFrequencyHz,
		},
		Build: BuildConfig{
			IntervalMin:   parameter.BuildIntervalMin,
			IntervalMax:   parameter.BuildIntervalMax,
			MinSeparation: parameter.MinSeparationDefault,
		},
		Particles: ParticleConfig{
			Capacity: parameter.ParticleCapacityDefault,
		},
		Camera: CameraConfig{
			FOVMin:         parameter.FOVMin,
			FOVMax:         parameter.FOVMax,
			PitchLimit:     parameter.FirstPersonPitchLimit,
			OrbitRadiusMin: parameter.OrbitRadiusMin,
			OrbitRadiusMax: parameter.OrbitRadiusMax,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects out-of-range or contradictory values at load time;
// nothing inside the tick re-checks these
func (c *Config) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.World.Bound <= 0 {
		return fail("world.bound must be positive, got %v", c.World.Bound)
	}
	if c.World.FourDWeight < 0 {
		return fail("world.fourd_weight must not be negative, got %v", c.World.FourDWeight)
	}
	if c.Evolution.Rate <= 0 {
		return fail("evolution.rate must be positive, got %v", c.Evolution.Rate)
	}
	if c.Evolution.DecayFactor < 0 || c.Evolution.DecayFactor >= 1 {
		return fail("evolution.decay_factor must be in [0,1), got %v", c.Evolution.DecayFactor)
	}
	if c.Evolution.FrequencyHz <= 0 {
		return fail("evolution.frequency_hz must be positive, got %v", c.Evolution.FrequencyHz)
	}
	if c.Build.IntervalMin <= 0 || c.Build.IntervalMax < c.Build.IntervalMin {
		return fail("build interval window [%v,%v] is not a positive range",
			c.Build.IntervalMin, c.Build.IntervalMax)
	}
	if c.Build.MinSeparation <= 0 {
		return fail("build.min_separation must be positive, got %v", c.Build.MinSeparation)
	}
	if c.Particles.Capacity <= 0 {
		return fail("particles.capacity must be positive, got %d", c.Particles.Capacity)
	}
	if c.Camera.FOVMin <= 0 || c.Camera.FOVMax <= c.Camera.FOVMin {
		return fail("camera FOV range [%v,%v] is not a positive range",
			c.Camera.FOVMin, c.Camera.FOVMax)
	}
	if c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit >= 90 {
		return fail("camera.pitch_limit must be in (0,90), got %v", c.Camera.PitchLimit)
	}
	if c.Camera.OrbitRadiusMin <= 0 || c.Camera.OrbitRadiusMax <= c.Camera.OrbitRadiusMin {
		return fail("camera orbit radius range [%v,%v] is not a positive range",
			c.Camera.OrbitRadiusMin, c.Camera.OrbitRadiusMax)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fail("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
