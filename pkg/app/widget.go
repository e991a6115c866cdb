package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget is a dashboard panel. Widgets receive broadcast events through
// Update, focused key input through HandleKey, and render into the
// dimensions the layout hands them.
type Widget interface {
	// ID returns the stable identifier used for focus and mouse zones.
	ID() string

	// Title returns the display name shown in the panel border.
	Title() string

	// MinSize returns the smallest usable interior dimensions.
	MinSize() (w, h int)

	// Update processes a broadcast message and may return a command.
	Update(msg tea.Msg) tea.Cmd

	// HandleKey processes key input while this widget has focus.
	HandleKey(msg tea.KeyMsg) tea.Cmd

	// View renders the widget interior at exactly the given size.
	View(width, height int) string
}

// TickCmd returns a command that delivers a TickEvent after d, driving
// the clock animation cycle.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}
