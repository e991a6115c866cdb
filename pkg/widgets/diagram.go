package widgets

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/diagram"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// Mouse zones inside the diagram panel.
const (
	canvasZone = "diagram/canvas"
	sliderZone = "diagram/slider"
)

// DiagramWidget hosts the Minkowski spacetime diagram. It renders the
// shared frame model through the compose/rasterize pipeline and turns
// clicks on the canvas into placed events.
type DiagramWidget struct {
	model      *frame.Model
	zones      *zone.Manager
	units      components.UnitMode
	halfExtent float64

	// Render state of the most recent View; clicks resolve against it.
	// Zero until the first View.
	vp      canvas.Viewport
	slider  *components.Slider
	sliderW int
}

// NewDiagram builds the diagram widget. halfExtent <= 0 selects the
// default visible range.
func NewDiagram(model *frame.Model, zones *zone.Manager, halfExtent float64) *DiagramWidget {
	if halfExtent <= 0 {
		halfExtent = canvas.DefaultHalfExtent
	}
	return &DiagramWidget{model: model, zones: zones, halfExtent: halfExtent}
}

// ID implements app.Widget.
func (w *DiagramWidget) ID() string { return IDDiagram }

// Title implements app.Widget.
func (w *DiagramWidget) Title() string { return "Spacetime Diagram" }

// MinSize implements app.Widget.
func (w *DiagramWidget) MinSize() (int, int) { return 31, 15 }

// Update reacts to unit toggles and canvas clicks. Velocity, frame, and
// event changes need no bookkeeping here: View always renders from the
// live model.
func (w *DiagramWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.UnitModeChangedEvent:
		w.units = msg.Mode

	case tea.MouseMsg:
		return w.handleMouse(msg)
	}
	return nil
}

// HandleKey implements app.Widget. The diagram has no local key handling;
// every diagram control is global.
func (w *DiagramWidget) HandleKey(tea.KeyMsg) tea.Cmd {
	return nil
}

// handleMouse resolves a left-click against the slider and canvas zones.
// Clicks elsewhere in the panel (header, border) do nothing.
func (w *DiagramWidget) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if z := w.zones.Get(sliderZone); z != nil && z.InBounds(msg) {
		return w.dragSliderTo(msg.X - z.StartX)
	}
	z := w.zones.Get(canvasZone)
	if z == nil || !z.InBounds(msg) {
		return nil
	}
	return w.placeEventAt(msg.X-z.StartX, msg.Y-z.StartY)
}

// dragSliderTo sets the shared velocity from a click at the given track
// cell of the last rendered slider and announces the change.
func (w *DiagramWidget) dragSliderTo(cell int) tea.Cmd {
	if w.slider == nil || w.sliderW <= 1 {
		return nil
	}
	v := w.slider.ValueAt(cell, w.sliderW)
	if v == w.model.Velocity() {
		return nil
	}
	w.model.SetVelocity(v)
	return func() tea.Msg {
		return app.VelocityChangedEvent{V: v, Gamma: relativity.LorentzFactor(v)}
	}
}

// placeEventAt adds an event at the canvas cell (cx, cy) of the last
// render and announces the new count. Out-of-canvas cells are ignored.
func (w *DiagramWidget) placeEventAt(cx, cy int) tea.Cmd {
	if !w.vp.Contains(cx, cy) {
		return nil
	}
	x, ct := w.vp.UnprojectCell(cx, cy)
	w.model.AddEvent(x, ct)
	count := w.model.EventCount()
	return func() tea.Msg {
		return app.EventsChangedEvent{Count: count}
	}
}

// View renders a readout header and the shared velocity slider above the
// diagram canvas.
func (w *DiagramWidget) View(width, height int) string {
	if width <= 0 || height <= 2 {
		return ""
	}
	th := theme.Current
	v := w.model.Velocity()
	gamma := relativity.LorentzFactor(v)

	header := fmt.Sprintf("%s  %s  %s  %s",
		components.Readout("v", components.FormatVelocity(v, w.units), th.Accent),
		components.Readout("γ", components.FormatGamma(gamma, w.units), th.Accent),
		components.Readout("view", w.model.ActiveFrame().String(), th.Accent),
		components.Readout("events", fmt.Sprintf("%d", w.model.EventCount()), th.Accent),
	)
	header = components.Truncate(header, width)

	style := components.DefaultSliderStyle()
	style.FillColor = th.SliderFill
	style.ThumbColor = th.SliderThumb
	w.slider = components.NewSlider(style)
	w.sliderW = width
	track := w.zones.Mark(sliderZone, w.slider.Render(v, width))

	cv := canvas.New(width, height-2)
	w.vp = canvas.NewViewport(width, height-2, w.halfExtent)
	sc := diagram.Compose(diagram.Snap(w.model), w.halfExtent)
	diagram.Rasterize(sc, w.vp, cv, PaletteFromTheme(th))

	return header + "\n" + track + "\n" + w.zones.Mark(canvasZone, cv.Render())
}
