package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// distanceStep is the per-keypress adjustment of the trip distance.
const distanceStep = 0.5

// TwinParadoxWidget compares the two twins' elapsed time for a round trip
// at the shared velocity: the stay-at-home twin ages in coordinate time,
// the traveler in proper time. The trip distance is a local control.
type TwinParadoxWidget struct {
	v        float64
	distance float64 // one-way, light-years
	units    components.UnitMode
}

// NewTwinParadox builds the widget with a 4 light-year trip, the classic
// textbook Alpha Centauri setup.
func NewTwinParadox() *TwinParadoxWidget {
	return &TwinParadoxWidget{distance: 4}
}

// ID implements app.Widget.
func (w *TwinParadoxWidget) ID() string { return IDTwinParadox }

// Title implements app.Widget.
func (w *TwinParadoxWidget) Title() string { return "Twin Paradox" }

// MinSize implements app.Widget.
func (w *TwinParadoxWidget) MinSize() (int, int) { return 26, 4 }

// Update tracks the shared velocity and unit mode.
func (w *TwinParadoxWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.VelocityChangedEvent:
		w.v = msg.V
	case app.UnitModeChangedEvent:
		w.units = msg.Mode
	}
	return nil
}

// HandleKey adjusts the trip distance with [ and ] while focused.
func (w *TwinParadoxWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "]":
		w.distance = clampF(w.distance+distanceStep, 0.5, 40)
	case "[":
		w.distance = clampF(w.distance-distanceStep, 0.5, 40)
	}
	return nil
}

// Distance returns the one-way trip distance in light-years.
func (w *TwinParadoxWidget) Distance() float64 { return w.distance }

// View renders the trip parameters and both twins' elapsed years. At
// v = 0 the trip never completes and both readouts show the infinity
// glyph.
func (w *TwinParadoxWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	earth, traveler := relativity.TwinElapsed(w.distance, w.v)

	lines := []string{
		components.Readout("trip [/]", components.FormatQuantity(w.distance, "ly", w.units), th.Accent) +
			"  " + components.Readout("v", components.FormatVelocity(w.v, w.units), th.Accent),
		components.Readout("earth twin", components.FormatQuantity(earth, "yr", w.units), th.ClockCoord),
		components.Readout("traveler", components.FormatQuantity(traveler, "yr", w.units), th.ClockProper),
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = components.Truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
