package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsnake/internal/creature"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procsnake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			content: `preset: ribbon
creature:
  head_velocity: 7.5
  max_bend_deg: 45
  tail_dots: 4
  contour: true
logging:
  level: debug
  format: json
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ribbon", cfg.Preset)
				require.NotNil(t, cfg.Creature.HeadVelocity)
				assert.Equal(t, 7.5, *cfg.Creature.HeadVelocity)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "empty file keeps defaults",
			content: "",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, creature.PresetOutline, cfg.Preset)
				assert.Equal(t, "console", cfg.Logging.Format)
			},
		},
		{
			name:    "malformed yaml",
			content: "preset: [unterminated",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestResolveOverrides(t *testing.T) {
	cfg, err := Load(writeFile(t, `preset: outline
creature:
  body_distance: 25
  max_bend_deg: 45
  head_dots: 16
  start_x: 10
  start_y: -20
  taper:
    segments: 20
    from: 40
    floor: 8
`))
	require.NoError(t, err)

	cc, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 25.0, cc.BodyDistance)
	assert.InDelta(t, math.Pi/4, cc.MaxBend, 1e-12)
	assert.Equal(t, 16, cc.HeadDots)
	assert.Equal(t, 8, cc.TailDots, "untouched fields keep the preset value")
	assert.Equal(t, 10.0, cc.Start.X)
	assert.Equal(t, -20.0, cc.Start.Y)
	require.Len(t, cc.Radii, 20)
	assert.Equal(t, 40.0, cc.Radii[0])
	assert.Equal(t, 8.0, cc.Radii[19])
}

func TestResolveErrors(t *testing.T) {
	_, err := (&Config{Preset: "hydra"}).Resolve()
	assert.ErrorContains(t, err, "unknown preset")

	bad := -3.0
	_, err = (&Config{Preset: creature.PresetBasic, Creature: CreatureConfig{HeadVelocity: &bad}}).Resolve()
	assert.ErrorIs(t, err, creature.ErrInvalidConfig)
}

func TestResolveRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative taper segments", "creature:\n  taper:\n    segments: -3\n    from: 20\n"},
		{"zero taper segments", "creature:\n  taper:\n    from: 20\n"},
		{"zero taper radius", "creature:\n  taper:\n    segments: 10\n"},
		{"nan taper radius", "creature:\n  taper:\n    segments: 10\n    from: .nan\n"},
		{"nan velocity", "creature:\n  head_velocity: .nan\n"},
		{"infinite body distance", "creature:\n  body_distance: .inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.content))
			require.NoError(t, err)
			assert.NotPanics(t, func() {
				_, err = cfg.Resolve()
			})
			assert.ErrorIs(t, err, creature.ErrInvalidConfig)
		})
	}
}

func TestFromEnv(t *testing.T) {
	path := writeFile(t, "preset: basic\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvPreset, "ribbon")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := FromEnv("")
	require.NoError(t, err)
	assert.Equal(t, "ribbon", cfg.Preset, "environment preset wins over the file")
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = FromEnv("")
	assert.Error(t, err)

	t.Setenv(EnvPreset, "")
	cfg, err = FromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", cfg.Preset, "explicit path ignores PROCSNAKE_CONFIG")
}
