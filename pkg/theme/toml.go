package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the on-disk form of a theme. Every field is optional;
// unset colors inherit from the base theme named by Inherit (default:
// "default").
type tomlTheme struct {
	Name    string `toml:"name"`
	Inherit string `toml:"inherit"`

	Background  string `toml:"background"`
	Foreground  string `toml:"foreground"`
	Dim         string `toml:"dim"`
	Accent      string `toml:"accent"`
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
	HelpKey     string `toml:"help_key"`
	HelpDesc    string `toml:"help_desc"`

	LightCone      string `toml:"light_cone"`
	ConeFill       string `toml:"cone_fill"`
	Axis           string `toml:"axis"`
	Grid           string `toml:"grid"`
	ShearAxis      string `toml:"shear_axis"`
	Simultaneity   string `toml:"simultaneity"`
	ConstPosition  string `toml:"const_position"`
	Worldline      string `toml:"worldline"`
	RestWorldline  string `toml:"rest_worldline"`
	EventColor     string `toml:"event"`
	EventLine      string `toml:"event_line"`
	StationaryText string `toml:"stationary_text"`
	MovingText     string `toml:"moving_text"`

	SliderFill  string `toml:"slider_fill"`
	SliderThumb string `toml:"slider_thumb"`
	ClockProper string `toml:"clock_proper"`
	ClockCoord  string `toml:"clock_coord"`
	RulerColor  string `toml:"ruler"`
	Blueshift   string `toml:"blueshift"`
	Redshift    string `toml:"redshift"`
}

// LoadFile parses a theme TOML file and registers the result. The
// returned theme is also usable directly.
func LoadFile(path string) (Theme, error) {
	var tt tomlTheme
	if _, err := toml.DecodeFile(path, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	t := tt.apply()
	Register(t)
	return t, nil
}

// LoadDir registers every *.toml theme in dir. Missing directories are
// not an error; a theme that fails to parse is skipped and reported.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var firstErr error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		if _, err := LoadFile(filepath.Join(dir, e.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// apply overlays the file's set fields onto the inherited base.
func (tt tomlTheme) apply() Theme {
	base := "default"
	if tt.Inherit != "" {
		base = tt.Inherit
	}
	t := Get(base)
	t.Name = tt.Name

	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&t.Background, tt.Background)
	pick(&t.Foreground, tt.Foreground)
	pick(&t.Dim, tt.Dim)
	pick(&t.Accent, tt.Accent)
	pick(&t.Border, tt.Border)
	pick(&t.BorderFocus, tt.BorderFocus)
	pick(&t.Title, tt.Title)
	pick(&t.HelpKey, tt.HelpKey)
	pick(&t.HelpDesc, tt.HelpDesc)
	pick(&t.LightCone, tt.LightCone)
	pick(&t.ConeFill, tt.ConeFill)
	pick(&t.Axis, tt.Axis)
	pick(&t.Grid, tt.Grid)
	pick(&t.ShearAxis, tt.ShearAxis)
	pick(&t.Simultaneity, tt.Simultaneity)
	pick(&t.ConstPosition, tt.ConstPosition)
	pick(&t.Worldline, tt.Worldline)
	pick(&t.RestWorldline, tt.RestWorldline)
	pick(&t.EventColor, tt.EventColor)
	pick(&t.EventLine, tt.EventLine)
	pick(&t.StationaryText, tt.StationaryText)
	pick(&t.MovingText, tt.MovingText)
	pick(&t.SliderFill, tt.SliderFill)
	pick(&t.SliderThumb, tt.SliderThumb)
	pick(&t.ClockProper, tt.ClockProper)
	pick(&t.ClockCoord, tt.ClockCoord)
	pick(&t.RulerColor, tt.RulerColor)
	pick(&t.Blueshift, tt.Blueshift)
	pick(&t.Redshift, tt.Redshift)
	return t
}
