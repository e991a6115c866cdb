package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// properLength is the rest length of the demonstration rod, in natural
// units.
const properLength = 1.0

// LengthContractionWidget draws a rod at rest above the same rod as
// measured from the lab while it moves at the shared velocity. The second
// ruler shrinks by 1/γ with sub-cell resolution.
type LengthContractionWidget struct {
	v     float64
	gamma float64
	units components.UnitMode
}

// NewLengthContraction builds the widget at rest.
func NewLengthContraction() *LengthContractionWidget {
	return &LengthContractionWidget{gamma: 1}
}

// ID implements app.Widget.
func (w *LengthContractionWidget) ID() string { return IDLengthContraction }

// Title implements app.Widget.
func (w *LengthContractionWidget) Title() string { return "Length Contraction" }

// MinSize implements app.Widget.
func (w *LengthContractionWidget) MinSize() (int, int) { return 24, 4 }

// Update tracks γ and the unit mode.
func (w *LengthContractionWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.VelocityChangedEvent:
		w.v = msg.V
		w.gamma = msg.Gamma
	case app.UnitModeChangedEvent:
		w.units = msg.Mode
	}
	return nil
}

// HandleKey implements app.Widget; the rod has no local controls.
func (w *LengthContractionWidget) HandleKey(tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders the rest ruler, the contracted ruler, and the measured
// length readout.
func (w *LengthContractionWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	cells := width - 8
	if cells < 4 {
		cells = 4
	}
	measured := relativity.LengthContraction(properLength, w.v)

	lines := []string{
		"rest    " + components.Ruler(cells, 1, th.Dim),
		"moving  " + components.Ruler(cells, w.gamma, th.RulerColor),
		components.Readout("L", components.FormatQuantity(measured, "lu", w.units), th.Accent) +
			"  " + components.Readout("L₀", components.FormatQuantity(properLength, "lu", w.units), th.Dim),
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = components.Truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
