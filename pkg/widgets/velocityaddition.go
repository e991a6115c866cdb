package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// projectileStep is the per-keypress adjustment of the local projectile
// velocity u.
const projectileStep = 0.05

// VelocityAdditionWidget demonstrates relativistic velocity composition:
// a projectile launched at u inside the moving frame, observed from the
// lab. The Galilean sum is shown next to the relativistic one so the
// divergence is visible, and the composed value never leaves (-1, 1).
type VelocityAdditionWidget struct {
	v     float64 // shared frame velocity
	u     float64 // local projectile velocity, adjusted with [ and ]
	units components.UnitMode
}

// NewVelocityAddition builds the widget with a projectile at u = 0.5c.
func NewVelocityAddition() *VelocityAdditionWidget {
	return &VelocityAdditionWidget{u: 0.5}
}

// ID implements app.Widget.
func (w *VelocityAdditionWidget) ID() string { return IDVelocityAddition }

// Title implements app.Widget.
func (w *VelocityAdditionWidget) Title() string { return "Velocity Addition" }

// MinSize implements app.Widget.
func (w *VelocityAdditionWidget) MinSize() (int, int) { return 26, 4 }

// Update tracks the shared velocity and unit mode.
func (w *VelocityAdditionWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.VelocityChangedEvent:
		w.v = msg.V
	case app.UnitModeChangedEvent:
		w.units = msg.Mode
	}
	return nil
}

// HandleKey adjusts the projectile velocity with [ and ] while focused.
func (w *VelocityAdditionWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "]":
		w.u = clampF(w.u+projectileStep, -0.95, 0.95)
	case "[":
		w.u = clampF(w.u-projectileStep, -0.95, 0.95)
	}
	return nil
}

// Projectile returns the local projectile velocity u.
func (w *VelocityAdditionWidget) Projectile() float64 { return w.u }

// View renders the inputs, their slider tracks when there is room, and
// the two sums.
func (w *VelocityAdditionWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	naive := w.v + w.u
	composed := relativity.AddVelocities(w.v, w.u)

	lines := []string{
		components.Readout("frame v", components.FormatVelocity(w.v, w.units), th.Accent) +
			"  " + components.Readout("u [/]", components.FormatVelocity(w.u, w.units), th.Accent),
	}
	if height >= 5 {
		style := components.DefaultSliderStyle()
		style.FillColor = th.SliderFill
		style.ThumbColor = th.SliderThumb
		s := components.NewSlider(style)
		lines = append(lines, s.Render(w.v, width), s.Render(w.u, width))
	}
	lines = append(lines,
		components.Readout("galilean", components.FormatVelocity(naive, w.units), th.Dim),
		components.Readout("einstein", components.FormatVelocity(composed, w.units), th.Accent),
	)
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = components.Truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
