//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/smartpack/internal/layout"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/packs",
			expected: filepath.Join(home, "packs"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/packs/trips/summer",
			expected: filepath.Join(home, "packs", "trips", "summer"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/packs",
			expected: "/usr/local/packs",
		},
		{
			name:     "relative path unchanged",
			input:    "packs/summer",
			expected: "packs/summer",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/smartpack/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "smartpack", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_MissingFilesGiveDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Sources())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Equal(t, layout.DefaultMetrics(), cfg.Metrics())
	assert.Equal(t, layout.DefaultBreakpoints, cfg.GetLayoutConfig().Breakpoints)
	assert.Equal(t, 500*time.Millisecond, cfg.AnimationDuration())
	assert.True(t, cfg.HapticsEnabled())
}

func TestLoadFrom_ParsesSections(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
storage_path = "~/packs/state.db"

[layout]
min_column_width = 300
cell_width = 10

[layout.breakpoints]
mobile = 600
mobile_portrait = 500

[animation]
reduce_motion = true
duration_ms = 250

[haptics]
enabled = false
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, []string{path}, cfg.Sources())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, expandPath("~/packs/state.db"), cfg.StoragePath)

	lc := cfg.GetLayoutConfig()
	assert.InDelta(t, 300.0, lc.MinColumnWidth, 0)
	assert.InDelta(t, 10.0, lc.CellWidth, 0)
	assert.InDelta(t, 16.0, lc.CellHeight, 0)
	assert.InDelta(t, 600.0, lc.Breakpoints.Mobile, 0)
	assert.InDelta(t, 500.0, lc.Breakpoints.MobilePortrait, 0)
	assert.InDelta(t, layout.DefaultBreakpoints.Tablet, lc.Breakpoints.Tablet, 0)

	assert.Equal(t, 250*time.Millisecond, cfg.AnimationDuration())
	assert.False(t, cfg.HapticsEnabled())

	assert.True(t, *cfg.Animation.ReduceMotion)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, "log_level = \"warn\"\n[animation]\nduration_ms = 100\n")
	second := writeConfig(t, "log_level = \"error\"\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.GetLogLevel())
	assert.Equal(t, 100*time.Millisecond, cfg.AnimationDuration())
	assert.Equal(t, []string{first, second}, cfg.Sources())
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "log_level = [unterminated")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestGetLayoutConfig_InvalidValues(t *testing.T) {
	cfg := Config{
		Layout: LayoutConfig{
			Breakpoints:    layout.Breakpoints{Mobile: 900, Tablet: 700},
			MinColumnWidth: -10,
			HandleWidth:    -1,
			Padding:        -5,
			CellWidth:      0,
			CellHeight:     -2,
		},
	}

	lc := cfg.GetLayoutConfig()

	assert.InDelta(t, layout.MinColumnWidth, lc.MinColumnWidth, 0)
	assert.InDelta(t, 0.0, lc.HandleWidth, 0)
	assert.InDelta(t, 0.0, lc.Padding, 0)
	assert.InDelta(t, 8.0, lc.CellWidth, 0)
	assert.InDelta(t, 16.0, lc.CellHeight, 0)
	assert.InDelta(t, 900.0, lc.Breakpoints.Tablet, 0, "tablet breakpoint never below mobile")
}

func TestReduceMotion(t *testing.T) {
	tests := []struct {
		name     string
		file     *bool
		env      string
		expected bool
	}{
		{name: "default", expected: false},
		{name: "file enables", file: boolPtr(true), expected: true},
		{name: "env overrides file", file: boolPtr(true), env: "false", expected: false},
		{name: "env enables", env: "1", expected: true},
		{name: "invalid env falls back to file", file: boolPtr(true), env: "maybe", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ReduceMotionEnv, tt.env)
			if tt.env == "" {
				os.Unsetenv(ReduceMotionEnv)
			}
			cfg := Config{Animation: AnimationConfig{ReduceMotion: tt.file}}
			assert.Equal(t, tt.expected, cfg.ReduceMotion())
		})
	}
}

func TestWatch_NoSources(t *testing.T) {
	w, err := Watch(&Config{}, func(*Config) {}, nil)
	require.NoError(t, err)
	assert.Nil(t, w)
	w.Close()
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	t.Setenv(ReduceMotionEnv, "")
	os.Unsetenv(ReduceMotionEnv)
	path := writeConfig(t, "[animation]\nreduce_motion = false\n")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	reloaded := make(chan *Config, 4)
	w, err := Watch(cfg, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[animation]\nreduce_motion = true\n"), 0o600))

	// a truncate can be observed before the write lands
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if c.ReduceMotion() {
				return
			}
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}
