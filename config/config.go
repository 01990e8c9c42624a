// Package config provides configuration parsing for widget.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the widget configuration.
type Config struct {
	// Surface holds the requested surface geometry.
	Surface SurfaceConfig `yaml:"surface"`

	// Render holds cadence and appearance settings.
	Render RenderConfig `yaml:"render"`

	// Telemetry selects which host counters are tracked.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Output configures the headless presentation target.
	Output OutputConfig `yaml:"output"`

	// LogFile is an optional path for log output; empty logs to stderr.
	LogFile string `yaml:"log_file"`
}

// SurfaceConfig holds the requested surface geometry. The presentation side
// remains the authority; these are the dimensions asked for at startup.
type SurfaceConfig struct {
	// Width and Height are logical dimensions in surface units.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Scale is the device scale factor; 0 lets the presentation side decide.
	Scale int `yaml:"scale"`
	// Anchor is the screen edge hint (e.g. "top-left") forwarded to the
	// shell-layer glue that positions the surface; nothing inside the
	// frame pipeline reads it.
	Anchor string `yaml:"anchor"`
}

// RenderConfig holds cadence and appearance settings.
type RenderConfig struct {
	// PacingInterval is a duration string (e.g. "1s", "500ms") enforced
	// between the starts of successive render cycles.
	PacingInterval string `yaml:"pacing_interval"`
	// HistoryCapacity is the number of samples each metric series retains.
	HistoryCapacity int `yaml:"history_capacity"`
	// Theme holds "#RRGGBB" overrides; empty fields keep the default palette.
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds hex color overrides for the dashboard palette.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Warn       string `yaml:"warn"`
	Danger     string `yaml:"danger"`
	Text       string `yaml:"text"`
}

// TelemetryConfig selects which host counters are tracked.
type TelemetryConfig struct {
	// Mounts lists the mount points shown as usage bars.
	Mounts []string `yaml:"mounts"`
	// DiskDevices restricts throughput counters to the named block devices;
	// empty sums every device.
	DiskDevices []string `yaml:"disk_devices"`
}

// OutputConfig configures the headless presentation target.
type OutputConfig struct {
	// Dir is the directory committed frames are written to.
	Dir string `yaml:"dir"`
	// Keep is the number of recent frames retained on disk.
	Keep int `yaml:"keep"`
	// PreviewScale divides frame dimensions before encoding; 1 keeps full size.
	PreviewScale int `yaml:"preview_scale"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
			Anchor: "top-left",
		},
		Render: RenderConfig{
			PacingInterval:  "1s",
			HistoryCapacity: 150,
		},
		Telemetry: TelemetryConfig{
			Mounts: []string{"/"},
		},
		Output: OutputConfig{
			Dir:          "frames",
			Keep:         10,
			PreviewScale: 1,
		},
	}
}

// Load reads the configuration at path, applied over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface.width and surface.height must be positive")
	}
	if c.Surface.Scale < 0 {
		return fmt.Errorf("surface.scale must not be negative")
	}
	if c.Render.HistoryCapacity <= 0 {
		return fmt.Errorf("render.history_capacity must be positive")
	}
	if _, err := time.ParseDuration(c.Render.PacingInterval); err != nil {
		return fmt.Errorf("render.pacing_interval: %w", err)
	}
	if len(c.Telemetry.Mounts) == 0 {
		return fmt.Errorf("telemetry.mounts must list at least one mount point")
	}
	if c.Output.Keep < 0 || c.Output.PreviewScale < 0 {
		return fmt.Errorf("output.keep and output.preview_scale must not be negative")
	}
	return nil
}

// PacingInterval returns the parsed render cadence, falling back to one
// second on a malformed duration string.
func (c *Config) PacingInterval() time.Duration {
	d, err := time.ParseDuration(c.Render.PacingInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}
