package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// Config carries the interaction tunables of the root model.
type Config struct {
	// VelocityStep is the per-keypress velocity increment, in units of c.
	VelocityStep float64
	// MaxVelocity bounds |v|; the kernel stays finite below this.
	MaxVelocity float64
	// TickInterval paces the clock animation.
	TickInterval time.Duration
	// Units selects the initial display unit mode.
	Units components.UnitMode
}

// DefaultConfig returns the standard interaction settings.
func DefaultConfig() Config {
	return Config{
		VelocityStep: 0.01,
		MaxVelocity:  0.999,
		TickInterval: 250 * time.Millisecond,
		Units:        components.Natural,
	}
}

// AppModel is the root bubbletea model. It owns the shared frame model,
// routes input, and broadcasts change events to the registered widgets.
type AppModel struct {
	cfg   Config
	model *frame.Model
	units components.UnitMode

	keys  KeyMap
	help  help.Model
	zones *zone.Manager

	widgets        map[string]Widget
	widgetOrder    []string
	focusedWidget  string
	expandedWidget string

	width    int
	height   int
	quitting bool
}

// NewAppModel builds the root model. The first widget registered takes the
// wide left column of the layout and initial focus; the rest stack in the
// right column in registration order.
func NewAppModel(cfg Config, model *frame.Model, zones *zone.Manager, widgets ...Widget) AppModel {
	m := AppModel{
		cfg:     cfg,
		model:   model,
		units:   cfg.Units,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		zones:   zones,
		widgets: make(map[string]Widget, len(widgets)),
	}
	for _, w := range widgets {
		m.widgets[w.ID()] = w
		m.widgetOrder = append(m.widgetOrder, w.ID())
	}
	if len(m.widgetOrder) > 0 {
		m.focusedWidget = m.widgetOrder[0]
	}
	return m
}

// Init pushes the initial shared state to every widget, so a scenario or
// config preset is visible before the first input, then schedules the
// first animation tick.
func (m AppModel) Init() tea.Cmd {
	v := m.model.Velocity()
	return tea.Batch(
		m.broadcast(VelocityChangedEvent{V: v, Gamma: relativity.LorentzFactor(v)}),
		m.broadcast(FrameChangedEvent{Frame: m.model.ActiveFrame()}),
		m.broadcast(UnitModeChangedEvent{Mode: m.units}),
		m.broadcast(EventsChangedEvent{Count: m.model.EventCount()}),
		TickCmd(m.cfg.TickInterval),
	)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickEvent:
		cmd := m.broadcast(msg)
		return m, tea.Batch(cmd, TickCmd(m.cfg.TickInterval))

	default:
		// Widget-originated change events (for example an event added by
		// a diagram click) arrive here and fan out to every widget.
		return m, m.broadcast(msg)
	}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextPanel):
		m.CycleFocusForward()
		return m, nil

	case key.Matches(msg, m.keys.PrevPanel):
		m.CycleFocusBackward()
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		m.ToggleExpand()
		return m, nil

	case msg.Type == tea.KeyEscape:
		m.expandedWidget = ""
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		return m, m.nudgeVelocity(m.cfg.VelocityStep)

	case key.Matches(msg, m.keys.Slower):
		return m, m.nudgeVelocity(-m.cfg.VelocityStep)

	case key.Matches(msg, m.keys.FasterBig):
		return m, m.nudgeVelocity(10 * m.cfg.VelocityStep)

	case key.Matches(msg, m.keys.SlowerBig):
		return m, m.nudgeVelocity(-10 * m.cfg.VelocityStep)

	case key.Matches(msg, m.keys.ZeroV):
		return m, m.setVelocity(0)

	case key.Matches(msg, m.keys.Stationary):
		return m, m.setFrame(frame.Stationary)

	case key.Matches(msg, m.keys.Moving):
		return m, m.setFrame(frame.Moving)

	case key.Matches(msg, m.keys.Units):
		m.units = m.units.Toggle()
		return m, m.broadcast(UnitModeChangedEvent{Mode: m.units})

	case key.Matches(msg, m.keys.Clear):
		m.model.ClearEvents()
		return m, m.broadcast(EventsChangedEvent{Count: 0})
	}

	// Anything unbound goes to the focused widget only.
	if w, ok := m.widgets[m.focusedWidget]; ok {
		return m, w.HandleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for _, id := range m.widgetOrder {
			if z := m.zones.Get("panel/" + id); z != nil && z.InBounds(msg) {
				m.FocusWidget(id)
				break
			}
		}
	}
	// Widgets see every mouse message; the diagram resolves canvas clicks
	// against its own zone.
	return m, m.broadcast(msg)
}

// nudgeVelocity shifts the shared velocity by dv, clamped to the
// configured bound, and announces the change.
func (m *AppModel) nudgeVelocity(dv float64) tea.Cmd {
	return m.setVelocity(m.model.Velocity() + dv)
}

func (m *AppModel) setVelocity(v float64) tea.Cmd {
	if v > m.cfg.MaxVelocity {
		v = m.cfg.MaxVelocity
	}
	if v < -m.cfg.MaxVelocity {
		v = -m.cfg.MaxVelocity
	}
	if v == m.model.Velocity() {
		return nil
	}
	m.model.SetVelocity(v)
	return m.broadcast(VelocityChangedEvent{V: v, Gamma: relativity.LorentzFactor(v)})
}

func (m *AppModel) setFrame(f frame.Frame) tea.Cmd {
	if f == m.model.ActiveFrame() {
		return nil
	}
	m.model.SetActiveFrame(f)
	return m.broadcast(FrameChangedEvent{Frame: f})
}

// broadcast delivers msg to every widget in order and batches any commands
// they return.
func (m AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.widgetOrder {
		if cmd := m.widgets[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// CycleFocusForward moves focus to the next widget, wrapping after the last.
func (m *AppModel) CycleFocusForward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	m.focusedWidget = m.widgetOrder[(m.focusedIndex()+1)%len(m.widgetOrder)]
}

// CycleFocusBackward moves focus to the previous widget, wrapping before
// the first.
func (m *AppModel) CycleFocusBackward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	n := len(m.widgetOrder)
	m.focusedWidget = m.widgetOrder[(m.focusedIndex()-1+n)%n]
}

// FocusWidget sets focus by ID; unknown IDs leave focus unchanged.
func (m *AppModel) FocusWidget(id string) {
	if _, ok := m.widgets[id]; ok {
		m.focusedWidget = id
	}
}

// ToggleExpand switches the focused widget between the shared layout and
// fullscreen. Expanding while another widget is fullscreen transfers the
// expansion.
func (m *AppModel) ToggleExpand() {
	if m.focusedWidget == "" {
		return
	}
	if m.expandedWidget == m.focusedWidget {
		m.expandedWidget = ""
	} else {
		m.expandedWidget = m.focusedWidget
	}
}

func (m *AppModel) focusedIndex() int {
	for i, id := range m.widgetOrder {
		if id == m.focusedWidget {
			return i
		}
	}
	return 0
}

// Width returns the last known terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the last known terminal height.
func (m AppModel) Height() int { return m.height }

// FocusedWidgetID returns the ID of the widget receiving key input.
func (m AppModel) FocusedWidgetID() string { return m.focusedWidget }

// ExpandedWidgetID returns the fullscreen widget's ID, or "" if none.
func (m AppModel) ExpandedWidgetID() string { return m.expandedWidget }

// Quitting reports whether a quit key was pressed.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the expanded help footer is showing.
func (m AppModel) HelpVisible() bool { return m.help.ShowAll }

// Units returns the current display unit mode.
func (m AppModel) Units() components.UnitMode { return m.units }

// View implements tea.Model. The output is passed through the zone
// manager's scan so mouse zones track the final character positions.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	footer := m.help.View(m.keys)
	footerH := strings.Count(footer, "\n") + 1
	bodyH := m.height - 1 - footerH // one line for the status bar
	if bodyH < 4 {
		bodyH = 4
	}

	var body string
	if w, ok := m.widgets[m.expandedWidget]; ok {
		body = m.renderPanel(w, m.width, bodyH)
	} else {
		body = m.renderGrid(bodyH)
	}

	out := m.statusBar() + "\n" + body + "\n" + footer
	return m.zones.Scan(out)
}

// renderGrid lays the first widget in a wide left column and stacks the
// rest on the right, splitting the right column height evenly.
func (m AppModel) renderGrid(bodyH int) string {
	if len(m.widgetOrder) == 0 {
		return ""
	}
	first := m.widgets[m.widgetOrder[0]]
	rest := m.widgetOrder[1:]
	if len(rest) == 0 {
		return m.renderPanel(first, m.width, bodyH)
	}

	leftW := m.width * 3 / 5
	rightW := m.width - leftW
	left := m.renderPanel(first, leftW, bodyH)

	share := bodyH / len(rest)
	if share < 3 {
		share = 3
	}
	panels := make([]string, 0, len(rest))
	used := 0
	for i, id := range rest {
		h := share
		if i == len(rest)-1 && used+share < bodyH {
			h = bodyH - used // last panel absorbs the remainder
		}
		if used+h > bodyH {
			break
		}
		panels = append(panels, m.renderPanel(m.widgets[id], rightW, h))
		used += h
	}
	right := strings.Join(panels, "\n")

	return joinColumns(left, right, leftW)
}

// renderPanel draws one widget inside a titled border and marks its mouse
// zone. Focus shows as a heavy border in the theme's focus color.
func (m AppModel) renderPanel(w Widget, width, height int) string {
	th := theme.Current
	style := components.BoxStyle{
		Border: components.BorderRounded,
		Title:  w.Title(),
		FG:     th.Border,
	}
	if w.ID() == m.focusedWidget {
		style.Border = components.BorderHeavy
		style.FG = th.BorderFocus
	}
	box := components.RenderBox(w.View(width-2, height-2), width, height, style)
	return m.zones.Mark("panel/"+w.ID(), box)
}

func (m AppModel) statusBar() string {
	th := theme.Current
	v := m.model.Velocity()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(th.Title)).
		Render("relativity")
	parts := []string{
		title,
		components.Readout("v", components.FormatVelocity(v, m.units), th.Accent),
		components.Readout("γ", components.FormatGamma(relativity.LorentzFactor(v), m.units), th.Accent),
		components.Readout("frame", m.model.ActiveFrame().String(), th.Accent),
		components.Readout("units", m.units.String(), th.Accent),
		components.Readout("events", fmt.Sprintf("%d", m.model.EventCount()), th.Accent),
	}
	return components.Truncate(strings.Join(parts, "  "), m.width)
}

// ParseVelocity converts textual velocity input to a usable value:
// unparseable or NaN input falls back to 0, anything else clamps to
// [-max, max]. Bad input must never reach the kernel as NaN.
func ParseVelocity(s string, max float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != v {
		return 0
	}
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}

// joinColumns pastes two multi-line blocks side by side. The left block is
// padded to leftW so the right column starts at a fixed offset.
func joinColumns(left, right string, leftW int) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	n := len(ll)
	if len(rl) > n {
		n = len(rl)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(ll) {
			l = ll[i]
		}
		if i < len(rl) {
			r = rl[i]
		}
		b.WriteString(components.PadRight(l, leftW))
		b.WriteString(r)
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
