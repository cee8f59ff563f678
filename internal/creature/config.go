package creature

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"procsnake/internal/geom"
)

// ErrInvalidConfig is wrapped by every validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("invalid creature config")

// DefaultEyeInset is how far inside the head outline the eyes sit.
const DefaultEyeInset = 12.0

// Config is fixed at construction and never mutated by the solver.
type Config struct {
	HeadRadius   float64 `yaml:"head_radius"`
	HeadVelocity float64 `yaml:"head_velocity"`
	BodyDistance float64 `yaml:"body_distance"`

	// MaxBend caps the turn at each joint in radians. Zero disables the limiter.
	MaxBend float64 `yaml:"max_bend"`

	// Radii holds one radius per segment, index 0 nearest the head.
	Radii []float64 `yaml:"radii"`

	HeadDots int     `yaml:"head_dots"`
	TailDots int     `yaml:"tail_dots"`
	EyeInset float64 `yaml:"eye_inset"`

	// Contour turns side point, tail fan and head ring derivation on.
	Contour bool `yaml:"contour"`

	// Start is where the head and every segment sit before the first target arrives.
	Start geom.Point `yaml:"-"`
}

// Segments returns the chain length.
func (c Config) Segments() int { return len(c.Radii) }

// Validate reports the first problem found, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.HeadRadius, c.HeadVelocity, c.BodyDistance, c.MaxBend, c.EyeInset):
		return fmt.Errorf("%w: head radius, velocity, body distance, max bend and eye inset must be finite", ErrInvalidConfig)
	case c.HeadRadius <= 0:
		return fmt.Errorf("%w: head radius %v must be positive", ErrInvalidConfig, c.HeadRadius)
	case c.HeadVelocity <= 0:
		return fmt.Errorf("%w: head velocity %v must be positive", ErrInvalidConfig, c.HeadVelocity)
	case c.BodyDistance <= 0:
		return fmt.Errorf("%w: body distance %v must be positive", ErrInvalidConfig, c.BodyDistance)
	case c.MaxBend < 0 || c.MaxBend > math.Pi:
		return fmt.Errorf("%w: max bend %v outside [0, pi]", ErrInvalidConfig, c.MaxBend)
	case len(c.Radii) == 0:
		return fmt.Errorf("%w: chain needs at least one segment", ErrInvalidConfig)
	case c.HeadDots < 0 || c.TailDots < 0:
		return fmt.Errorf("%w: dot counts must not be negative", ErrInvalidConfig)
	case c.EyeInset < 0:
		return fmt.Errorf("%w: eye inset %v must not be negative", ErrInvalidConfig, c.EyeInset)
	}
	for i, r := range c.Radii {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: segment %d radius %v must be positive", ErrInvalidConfig, i, r)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TaperedRadii shrinks linearly from headRadius toward the tail, never below floor.
func TaperedRadii(headRadius float64, n int, floor float64) []float64 {
	radii := make([]float64, n)
	for i := range radii {
		r := headRadius - float64(i)*headRadius/float64(n)
		if r < floor {
			r = floor
		}
		radii[i] = r
	}
	return radii
}

// Preset names.
const (
	PresetBasic   = "basic"
	PresetOutline = "outline"
	PresetRibbon  = "ribbon"
)

var sentinel = geom.Pt(-150, -150)

var presets = map[string]func() Config{
	// Thirteen circles on a rod, no bend stiffness and no outline.
	PresetBasic: func() Config {
		return Config{
			HeadRadius:   34,
			HeadVelocity: 5,
			BodyDistance: 40,
			Radii:        []float64{42, 43, 42, 41, 38, 32, 30, 25, 19, 17, 16, 9, 7},
			EyeInset:     DefaultEyeInset,
			Start:        sentinel,
		}
	},
	// Stroked outline with a tail cap and a stiff spine.
	PresetOutline: func() Config {
		return Config{
			HeadRadius:   37,
			HeadVelocity: 5,
			BodyDistance: 30,
			MaxBend:      math.Pi / 6,
			Radii:        []float64{42, 43.5, 42.5, 41.5, 38.5, 32, 30, 25.5, 18, 17, 16, 9.5, 15},
			HeadDots:     12,
			TailDots:     8,
			EyeInset:     DefaultEyeInset,
			Contour:      true,
			Start:        sentinel,
		}
	},
	// Long filled ribbon: 200 tightly spaced segments tapering from the head.
	PresetRibbon: func() Config {
		return Config{
			HeadRadius:   30,
			HeadVelocity: 5,
			BodyDistance: 2,
			MaxBend:      math.Pi / 6,
			Radii:        TaperedRadii(30, 200, 5),
			HeadDots:     12,
			TailDots:     10,
			EyeInset:     DefaultEyeInset,
			Contour:      true,
			Start:        sentinel,
		}
	},
}

// Preset returns a fresh copy of a named configuration.
func Preset(name string) (Config, bool) {
	mk, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return mk(), true
}

// PresetNames lists the known presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
