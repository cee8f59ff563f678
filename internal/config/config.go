// Package config loads the optional YAML file that picks a creature preset and
// overrides individual parameters.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"procsnake/internal/creature"
)

// Environment variables consulted by FromEnv.
const (
	EnvConfig   = "PROCSNAKE_CONFIG"
	EnvPreset   = "PROCSNAKE_PRESET"
	EnvLogLevel = "PROCSNAKE_LOG_LEVEL"
)

type Config struct {
	Preset   string         `yaml:"preset"`
	Creature CreatureConfig `yaml:"creature"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CreatureConfig overrides preset values; nil fields keep the preset's value.
type CreatureConfig struct {
	HeadRadius   *float64  `yaml:"head_radius"`
	HeadVelocity *float64  `yaml:"head_velocity"`
	BodyDistance *float64  `yaml:"body_distance"`
	MaxBendDeg   *float64  `yaml:"max_bend_deg"`
	Radii        []float64 `yaml:"radii"`
	Taper        *Taper    `yaml:"taper"`
	HeadDots     *int      `yaml:"head_dots"`
	TailDots     *int      `yaml:"tail_dots"`
	EyeInset     *float64  `yaml:"eye_inset"`
	Contour      *bool     `yaml:"contour"`
	StartX       *float64  `yaml:"start_x"`
	StartY       *float64  `yaml:"start_y"`
}

// Taper generates radii instead of listing them.
type Taper struct {
	Segments int     `yaml:"segments"`
	From     float64 `yaml:"from"`
	Floor    float64 `yaml:"floor"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Preset:  creature.PresetOutline,
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by PROCSNAKE_CONFIG (if any) and applies the
// preset and log level environment overrides. An explicit path wins over the
// environment.
func FromEnv(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if p := os.Getenv(EnvPreset); p != "" {
		cfg.Preset = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.Logging.Level = l
	}
	return cfg, nil
}

// Resolve builds the validated creature configuration.
func (c *Config) Resolve() (creature.Config, error) {
	name := c.Preset
	if name == "" {
		name = creature.PresetOutline
	}
	cc, ok := creature.Preset(name)
	if !ok {
		return creature.Config{}, fmt.Errorf("unknown preset %q (have %v)", name, creature.PresetNames())
	}

	o := c.Creature
	setF(&cc.HeadRadius, o.HeadRadius)
	setF(&cc.HeadVelocity, o.HeadVelocity)
	setF(&cc.BodyDistance, o.BodyDistance)
	setF(&cc.EyeInset, o.EyeInset)
	setF(&cc.Start.X, o.StartX)
	setF(&cc.Start.Y, o.StartY)
	if o.MaxBendDeg != nil {
		cc.MaxBend = *o.MaxBendDeg * math.Pi / 180
	}
	if o.HeadDots != nil {
		cc.HeadDots = *o.HeadDots
	}
	if o.TailDots != nil {
		cc.TailDots = *o.TailDots
	}
	if o.Contour != nil {
		cc.Contour = *o.Contour
	}
	switch {
	case len(o.Radii) > 0:
		cc.Radii = append([]float64(nil), o.Radii...)
	case o.Taper != nil:
		if o.Taper.Segments <= 0 {
			return creature.Config{}, fmt.Errorf("%w: taper needs a positive segment count, got %d", creature.ErrInvalidConfig, o.Taper.Segments)
		}
		if !(o.Taper.From > 0) || math.IsInf(o.Taper.From, 0) {
			return creature.Config{}, fmt.Errorf("%w: taper radius %v must be positive", creature.ErrInvalidConfig, o.Taper.From)
		}
		cc.Radii = creature.TaperedRadii(o.Taper.From, o.Taper.Segments, o.Taper.Floor)
	}

	if err := cc.Validate(); err != nil {
		return creature.Config{}, fmt.Errorf("preset %s: %w", name, err)
	}
	return cc, nil
}

func setF(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
