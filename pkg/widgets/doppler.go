package widgets

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// wireframeSteps is the sample count for each drawn ellipse.
const wireframeSteps = 180

// DopplerWidget renders a wireframe sphere flying at the shared velocity:
// contracted along the motion axis by 1/γ and tinted by the relativistic
// Doppler factor. Positive velocity means the sphere approaches the
// observer, so its light blueshifts; negative velocity redshifts it.
type DopplerWidget struct {
	v     float64
	gamma float64
	units components.UnitMode
}

// NewDoppler builds the widget at rest.
func NewDoppler() *DopplerWidget {
	return &DopplerWidget{gamma: 1}
}

// ID implements app.Widget.
func (w *DopplerWidget) ID() string { return IDDoppler }

// Title implements app.Widget.
func (w *DopplerWidget) Title() string { return "Doppler / 3D" }

// MinSize implements app.Widget.
func (w *DopplerWidget) MinSize() (int, int) { return 24, 6 }

// Update tracks the shared velocity and unit mode.
func (w *DopplerWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.VelocityChangedEvent:
		w.v = msg.V
		w.gamma = msg.Gamma
	case app.UnitModeChangedEvent:
		w.units = msg.Mode
	}
	return nil
}

// HandleKey implements app.Widget; the sphere has no local controls.
func (w *DopplerWidget) HandleKey(tea.KeyMsg) tea.Cmd {
	return nil
}

// shiftColor picks the tint from the sign of the frequency shift.
func (w *DopplerWidget) shiftColor(th theme.Theme) string {
	switch {
	case w.v > 0:
		return th.Blueshift
	case w.v < 0:
		return th.Redshift
	}
	return th.Dim
}

// View renders the Doppler readout above the contracted sphere.
func (w *DopplerWidget) View(width, height int) string {
	if width <= 0 || height <= 1 {
		return ""
	}
	th := theme.Current
	d := relativity.DopplerFactor(w.v)

	header := fmt.Sprintf("%s  %s",
		components.Readout("f/f₀", components.FormatGamma(d, w.units), w.shiftColor(th)),
		components.Readout("shift", shiftLabel(w.v), w.shiftColor(th)),
	)
	header = components.Truncate(header, width)

	cv := canvas.New(width, height-1)
	w.drawSphere(cv, th)
	return header + "\n" + cv.Render()
}

// drawSphere draws the wireframe: the outline ellipse, two meridians, and
// two latitude chords, all contracted by 1/γ along x. At saturated
// velocity 1/γ is zero and the sphere collapses to a vertical line, the
// correct pancake limit.
func (w *DopplerWidget) drawSphere(cv *canvas.Canvas, th theme.Theme) {
	dw, dh := cv.DotSize()
	if dw == 0 || dh == 0 {
		return
	}
	cx := float64(dw-1) / 2
	cy := float64(dh-1) / 2
	r := 0.9 * math.Min(cx, cy)
	if r < 1 {
		return
	}
	contract := 1 / w.gamma
	if math.IsNaN(contract) {
		contract = 0
	}
	color := w.shiftColor(th)

	// Outline and meridians are the same ellipse at different widths: a
	// meridian at longitude φ projects to semi-axis a·sin(φ).
	for _, f := range []float64{1, 0.66, 0.33} {
		drawEllipse(cv, cx, cy, r*contract*f, r, color)
	}
	// Latitude circles project to horizontal chords.
	for _, f := range []float64{-0.5, 0, 0.5} {
		y := cy + f*r
		half := r * contract * math.Sqrt(1-f*f)
		cv.Line(int(math.Round(cx-half)), int(math.Round(y)),
			int(math.Round(cx+half)), int(math.Round(y)), color)
	}
}

// drawEllipse plots a full parametric ellipse centered on (cx, cy).
func drawEllipse(cv *canvas.Canvas, cx, cy, a, b float64, color string) {
	for i := 0; i < wireframeSteps; i++ {
		t := 2 * math.Pi * float64(i) / wireframeSteps
		x := cx + a*math.Cos(t)
		y := cy + b*math.Sin(t)
		cv.SetDot(int(math.Round(x)), int(math.Round(y)), color)
	}
}

// shiftLabel names the direction of the frequency shift.
func shiftLabel(v float64) string {
	switch {
	case v > 0:
		return "blue"
	case v < 0:
		return "red"
	}
	return "none"
}
