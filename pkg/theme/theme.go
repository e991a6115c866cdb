// Package theme defines the color palettes of the visualizer. Themes are
// kept in a registry keyed by lowercase name; builtins register at init
// and TOML files can add or override entries. Lookups always fall back to
// the default theme so a bad name never leaves the UI uncolored.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is the complete palette for the dashboard and the spacetime
// diagram.
type Theme struct {
	Name string

	// Chrome
	Background  string
	Foreground  string
	Dim         string
	Accent      string
	Border      string
	BorderFocus string
	Title       string
	HelpKey     string
	HelpDesc    string

	// Diagram roles
	LightCone      string // the |x| = ct diagonals
	ConeFill       string // shaded cone interior
	Axis           string // orthogonal (active frame) axes
	Grid           string // unit grid of the active frame
	ShearAxis      string // sheared (non-active frame) axes
	Simultaneity   string // constant-time family of the sheared frame
	ConstPosition  string // constant-position family of the sheared frame
	Worldline      string // the moving observer's highlighted worldline
	RestWorldline  string // object at rest at x = 1
	EventColor     string
	EventLine      string
	StationaryText string // stationary-frame axis captions
	MovingText     string // moving-frame axis captions

	// Panel accents
	SliderFill  string
	SliderThumb string
	ClockProper string
	ClockCoord  string
	RulerColor  string
	Blueshift   string
	Redshift    string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}

	// Current holds the active theme; SetCurrent swaps it.
	Current Theme
)

func init() {
	registerBuiltins()
	Current = Get("default")
}

// Get returns the named theme, falling back to default when unknown.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all registered theme names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent activates the named theme.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds or replaces a theme under its lowercase name.
func Register(t Theme) {
	if t.Name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
