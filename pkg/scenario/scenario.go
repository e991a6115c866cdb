// Package scenario provides loadable demonstration presets: a velocity,
// an active frame, a unit mode, and a set of pre-placed spacetime events.
// Builtins cover the classic teaching setups; YAML files add more. Names
// resolve builtin-first, then as a file path, so `-scenario twins` and
// `-scenario ./my-demo.yaml` both work.
package scenario

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jajohns1/relativity-visualizer/pkg/frame"
)

// Event mirrors frame.Event for YAML decoding.
type Event struct {
	X  float64 `yaml:"x"`
	CT float64 `yaml:"ct"`
}

// Scenario is a named preset of visualizer state.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Velocity    float64 `yaml:"velocity"`
	Frame       string  `yaml:"frame"`
	Units       string  `yaml:"units"`
	Events      []Event `yaml:"events"`
}

// Validate checks the scenario's physics ranges.
func (s *Scenario) Validate() error {
	if math.IsNaN(s.Velocity) || math.Abs(s.Velocity) > 0.999 {
		return fmt.Errorf("scenario %q: velocity %v outside [-0.999, 0.999]", s.Name, s.Velocity)
	}
	if _, err := frame.ParseFrame(s.Frame); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	switch s.Units {
	case "", "natural", "si":
	default:
		return fmt.Errorf("scenario %q: invalid units %q", s.Name, s.Units)
	}
	return nil
}

// Apply loads the scenario into a frame model, replacing its events.
func (s *Scenario) Apply(m *frame.Model) {
	m.SetVelocity(s.Velocity)
	f, _ := frame.ParseFrame(s.Frame)
	m.SetActiveFrame(f)
	m.ClearEvents()
	for _, ev := range s.Events {
		m.AddEvent(ev.X, ev.CT)
	}
}

// Resolve finds a scenario by builtin name first, then by file path.
func Resolve(name string) (*Scenario, error) {
	if s, ok := builtins[name]; ok {
		cp := s
		return &cp, nil
	}
	if _, err := os.Stat(name); err == nil {
		return LoadFile(name)
	}
	return nil, fmt.Errorf("unknown scenario %q (builtins: %v)", name, Names())
}

// LoadFile parses a YAML scenario file and validates it.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Names lists the builtin scenario names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var builtins = map[string]Scenario{
	"train-platform": {
		Name:        "train-platform",
		Description: "Einstein's train: two lightning strikes simultaneous on the platform but not on the train",
		Velocity:    0.6,
		Frame:       "stationary",
		Events: []Event{
			{X: -2, CT: 1},
			{X: 2, CT: 1},
		},
	},
	"light-clock": {
		Name:        "light-clock",
		Description: "Ticks of a clock carried by the moving observer, one unit of proper time apart",
		Velocity:    0.5,
		Frame:       "stationary",
		Events: []Event{
			{X: 0, CT: 0},
			{X: 0.57735, CT: 1.1547}, // gamma(0.5) ≈ 1.1547, along x = v·ct
			{X: 1.1547, CT: 2.3094},
		},
	},
	"twins": {
		Name:        "twins",
		Description: "Outbound leg of the twin paradox at 0.8c with the turnaround event marked",
		Velocity:    0.8,
		Frame:       "stationary",
		Events: []Event{
			{X: 4, CT: 5}, // turnaround: 4 ly out after 5 coordinate years
		},
	},
}
