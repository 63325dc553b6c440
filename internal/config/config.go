package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/smartpack/internal/animation"
	"github.com/llehouerou/smartpack/internal/layout"
)

// ReduceMotionEnv overrides animation.reduce_motion when set to a boolean.
const ReduceMotionEnv = "SMARTPACK_REDUCE_MOTION"

type Config struct {
	LogLevel    string `koanf:"log_level"`    // "debug", "info", "warn", "error" (default: "info")
	LogFile     string `koanf:"log_file"`     // default: $XDG_STATE_HOME/smartpack/smartpack.log
	StoragePath string `koanf:"storage_path"` // default: $XDG_DATA_HOME/smartpack/smartpack.db

	Layout    LayoutConfig    `koanf:"layout"`
	Animation AnimationConfig `koanf:"animation"`
	Haptics   HapticsConfig   `koanf:"haptics"`

	// paths that existed when the config was loaded, in load order
	sources []string
}

// LayoutConfig holds the column layout sizing.
type LayoutConfig struct {
	Breakpoints    layout.Breakpoints `koanf:"breakpoints"`
	MinColumnWidth float64            `koanf:"min_column_width"` // default: 275
	HandleWidth    float64            `koanf:"handle_width"`     // default: 8
	Padding        float64            `koanf:"padding"`          // default: 32
	CellWidth      float64            `koanf:"cell_width"`       // layout units per terminal column (default: 8)
	CellHeight     float64            `koanf:"cell_height"`      // layout units per terminal row (default: 16)
}

// AnimationConfig holds transition settings.
type AnimationConfig struct {
	ReduceMotion *bool `koanf:"reduce_motion"` // default: false
	DurationMS   int   `koanf:"duration_ms"`   // default: 500
}

// HapticsConfig controls the terminal bell used as haptic feedback.
type HapticsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	var sources []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
			sources = append(sources, path)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.sources = sources

	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.StoragePath = expandPath(cfg.StoragePath)

	return cfg, nil
}

// Sources returns the files the config was loaded from.
func (c *Config) Sources() []string {
	return c.sources
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/smartpack/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "smartpack", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLayoutConfig returns the layout configuration with defaults applied.
func (c *Config) GetLayoutConfig() LayoutConfig {
	cfg := c.Layout

	bp := layout.DefaultBreakpoints
	if cfg.Breakpoints.Mobile > 0 {
		bp.Mobile = cfg.Breakpoints.Mobile
	}
	if cfg.Breakpoints.Tablet > 0 {
		bp.Tablet = cfg.Breakpoints.Tablet
	}
	if cfg.Breakpoints.Desktop > 0 {
		bp.Desktop = cfg.Breakpoints.Desktop
	}
	if cfg.Breakpoints.MobilePortrait > 0 {
		bp.MobilePortrait = cfg.Breakpoints.MobilePortrait
	}
	if bp.Tablet < bp.Mobile {
		bp.Tablet = bp.Mobile
	}
	cfg.Breakpoints = bp

	if cfg.MinColumnWidth <= 0 {
		cfg.MinColumnWidth = layout.MinColumnWidth
	}
	if cfg.HandleWidth < 0 {
		cfg.HandleWidth = 0
	} else if cfg.HandleWidth == 0 {
		cfg.HandleWidth = layout.HandleWidth
	}
	if cfg.Padding < 0 {
		cfg.Padding = 0
	} else if cfg.Padding == 0 {
		cfg.Padding = layout.HorizontalPadding
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 8
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 16
	}

	return cfg
}

// Metrics returns the allocator constants.
func (c *Config) Metrics() layout.Metrics {
	lc := c.GetLayoutConfig()
	return layout.Metrics{
		MinColumnWidth: lc.MinColumnWidth,
		HandleWidth:    lc.HandleWidth,
		Padding:        lc.Padding,
	}
}

// ReduceMotion returns the motion preference. The environment variable wins
// over the file.
func (c *Config) ReduceMotion() bool {
	if v, ok := os.LookupEnv(ReduceMotionEnv); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if c.Animation.ReduceMotion != nil {
		return *c.Animation.ReduceMotion
	}
	return false
}

// AnimationDuration returns the transition length with defaults applied.
func (c *Config) AnimationDuration() time.Duration {
	if c.Animation.DurationMS <= 0 {
		return animation.DefaultDuration
	}
	return time.Duration(c.Animation.DurationMS) * time.Millisecond
}

// HapticsEnabled returns whether haptic feedback is on (default: true).
func (c *Config) HapticsEnabled() bool {
	if c.Haptics.Enabled != nil {
		return *c.Haptics.Enabled
	}
	return true
}

// GetLogLevel returns the configured log level (default: "info").
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}
