package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const appDir = "relativity-visualizer"

// Load reads configuration from the standard path. Search order:
//
//  1. $XDG_CONFIG_HOME/relativity-visualizer/config.toml
//  2. ~/.config/relativity-visualizer/config.toml
//
// If no file exists, the defaults are returned.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file. A missing file
// yields the defaults rather than an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML over the defaults and applies environment
// overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogFile:  filepath.Join(xdgStateHome(home), appDir, "visualizer.log"),
			LogLevel: "info",
			ThemeDir: filepath.Join(xdgConfigHome(home), appDir, "themes"),
		},
		Display: DisplayConfig{
			Theme:      "default",
			Units:      "natural",
			HalfExtent: 5.5,
		},
		Simulation: SimulationConfig{
			Velocity:     0,
			Frame:        "stationary",
			VelocityStep: 0.01,
			TickInterval: Duration{250 * time.Millisecond},
		},
	}
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RELVIS_THEME"); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv("RELVIS_UNITS"); v != "" {
		cfg.Display.Units = v
	}
	if v := os.Getenv("RELVIS_VELOCITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.Velocity = f
		}
	}
	if v := os.Getenv("RELVIS_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

func searchPaths() []string {
	home, _ := os.UserHomeDir()
	xdg := xdgConfigHome(home)
	paths := []string{filepath.Join(xdg, appDir, "config.toml")}

	fallback := filepath.Join(home, ".config")
	if xdg != fallback {
		paths = append(paths, filepath.Join(fallback, appDir, "config.toml"))
	}
	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
