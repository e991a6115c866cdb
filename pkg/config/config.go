// Package config loads the visualizer configuration from TOML with XDG
// search paths, environment overrides, and validated defaults.
package config

import (
	"fmt"
	"math"
	"time"
)

// Config is the root configuration document.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Simulation SimulationConfig `toml:"simulation"`
}

// GeneralConfig covers logging and theme discovery.
type GeneralConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // debug|info|warn|error
	ThemeDir string `toml:"theme_dir"` // extra themes loaded at startup
}

// DisplayConfig covers presentation choices.
type DisplayConfig struct {
	Theme      string  `toml:"theme"`
	Units      string  `toml:"units"`       // natural|si
	HalfExtent float64 `toml:"half_extent"` // diagram half-width in natural units
}

// SimulationConfig covers the initial physics state and animation pacing.
type SimulationConfig struct {
	Velocity     float64  `toml:"velocity"`      // initial v as a fraction of c
	Frame        string   `toml:"frame"`         // stationary|moving
	VelocityStep float64  `toml:"velocity_step"` // slider nudge per keypress
	TickInterval Duration `toml:"tick_interval"` // clock animation cadence
	Scenario     string   `toml:"scenario"`      // optional preset to load
}

// MaxVelocity is the slider bound enforced on input; the kernel tolerates
// more but the UI never asks for it.
const MaxVelocity = 0.999

// Validate checks field ranges. It normalizes nothing; loading applies
// defaults before validation runs.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.General.LogLevel)
	}
	switch c.Display.Units {
	case "natural", "si":
	default:
		return fmt.Errorf("invalid units %q (want natural or si)", c.Display.Units)
	}
	if math.IsNaN(c.Simulation.Velocity) || math.Abs(c.Simulation.Velocity) > MaxVelocity {
		return fmt.Errorf("velocity %v outside [-%v, %v]", c.Simulation.Velocity, MaxVelocity, MaxVelocity)
	}
	switch c.Simulation.Frame {
	case "stationary", "moving":
	default:
		return fmt.Errorf("invalid frame %q", c.Simulation.Frame)
	}
	if c.Simulation.VelocityStep <= 0 || c.Simulation.VelocityStep > 0.5 {
		return fmt.Errorf("velocity_step %v outside (0, 0.5]", c.Simulation.VelocityStep)
	}
	if c.Display.HalfExtent <= 0 {
		return fmt.Errorf("half_extent must be positive, got %v", c.Display.HalfExtent)
	}
	if c.Simulation.TickInterval.Duration < 50*time.Millisecond {
		return fmt.Errorf("tick_interval %v below 50ms floor", c.Simulation.TickInterval.Duration)
	}
	return nil
}
