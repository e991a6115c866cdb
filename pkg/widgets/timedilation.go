package widgets

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// gammaHistoryLen caps the sparkline backing buffer.
const gammaHistoryLen = 64

// TimeDilationWidget animates a pair of clocks: the lab clock advances in
// coordinate time while the traveling clock advances in proper time, so
// the gap between them grows at rate 1 - 1/γ.
type TimeDilationWidget struct {
	gamma   float64
	history []float64

	lastTick time.Time
	coordSec float64
	proper   float64
}

// NewTimeDilation builds the widget with both clocks at zero and γ = 1.
func NewTimeDilation() *TimeDilationWidget {
	return &TimeDilationWidget{gamma: 1, history: []float64{1}}
}

// ID implements app.Widget.
func (w *TimeDilationWidget) ID() string { return IDTimeDilation }

// Title implements app.Widget.
func (w *TimeDilationWidget) Title() string { return "Time Dilation" }

// MinSize implements app.Widget.
func (w *TimeDilationWidget) MinSize() (int, int) { return 24, 5 }

// Update advances the clocks on ticks and tracks γ across velocity
// changes.
func (w *TimeDilationWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		w.advance(msg.Time)

	case app.VelocityChangedEvent:
		w.gamma = msg.Gamma
		w.history = append(w.history, sparkGamma(msg.Gamma))
		if len(w.history) > gammaHistoryLen {
			w.history = w.history[len(w.history)-gammaHistoryLen:]
		}
	}
	return nil
}

// advance accumulates wall time into the coordinate clock and wall/γ into
// the proper clock. At saturated velocity γ is +Inf and the proper clock
// freezes, which is the correct limit.
func (w *TimeDilationWidget) advance(now time.Time) {
	if !w.lastTick.IsZero() {
		dt := now.Sub(w.lastTick).Seconds()
		if dt > 0 {
			w.coordSec += dt
			if ratio := 1 / w.gamma; !math.IsNaN(ratio) {
				w.proper += dt * ratio
			}
		}
	}
	w.lastTick = now
}

// HandleKey resets both clocks on 'r'.
func (w *TimeDilationWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "r" {
		w.coordSec = 0
		w.proper = 0
	}
	return nil
}

// CoordSeconds returns the lab clock reading.
func (w *TimeDilationWidget) CoordSeconds() float64 { return w.coordSec }

// ProperSeconds returns the traveling clock reading.
func (w *TimeDilationWidget) ProperSeconds() float64 { return w.proper }

// View renders the two clock readouts, the dilation ratio, a γ sparkline,
// and, given enough room, a pair of Braille clock faces whose hands sweep
// one revolution per minute of their respective clocks.
func (w *TimeDilationWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	lines := []string{
		components.Readout("lab clock", fmt.Sprintf("%7.1f s", w.coordSec), th.ClockCoord),
		components.Readout("ship clock", fmt.Sprintf("%7.1f s", w.proper), th.ClockProper),
		components.Readout("Δτ/Δt", ratioString(w.gamma), th.Accent),
	}
	if height > 3 {
		lines = append(lines, components.Sparkline(w.history, width, 1, th.Accent))
	}
	if rows := height - len(lines); rows >= 4 && width >= 14 {
		lines = append(lines, strings.Split(w.drawClockFaces(width, rows, th), "\n")...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = components.Truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// drawClockFaces renders the lab and ship clocks as analog faces side by
// side. The ship hand lags by the accumulated dilation.
func (w *TimeDilationWidget) drawClockFaces(width, rows int, th theme.Theme) string {
	cv := canvas.New(width, rows)
	dw, dh := cv.DotSize()
	r := math.Min(float64(dh)/2-1, float64(dw)/4-1)
	if r < 2 {
		return cv.Render()
	}
	cy := float64(dh-1) / 2
	faces := []struct {
		cx      float64
		seconds float64
		color   string
	}{
		{float64(dw) / 4, w.coordSec, th.ClockCoord},
		{3 * float64(dw) / 4, w.proper, th.ClockProper},
	}
	for _, f := range faces {
		drawEllipse(cv, f.cx, cy, r, r, f.color)
		angle := 2*math.Pi*math.Mod(f.seconds, 60)/60 - math.Pi/2
		cv.Line(int(math.Round(f.cx)), int(math.Round(cy)),
			int(math.Round(f.cx+0.8*r*math.Cos(angle))),
			int(math.Round(cy+0.8*r*math.Sin(angle))), f.color)
	}
	return cv.Render()
}

// ratioString formats 1/γ, reading "0" at the saturated limit.
func ratioString(gamma float64) string {
	r := 1 / gamma
	if math.IsNaN(r) {
		r = 0
	}
	return fmt.Sprintf("%.3f", r)
}

// sparkGamma bounds γ for plotting so a saturated velocity does not
// flatten the rest of the history.
func sparkGamma(g float64) float64 {
	if math.IsInf(g, 1) || math.IsNaN(g) || g > 100 {
		return 100
	}
	return g
}
