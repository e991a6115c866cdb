// Package app provides the bubbletea application skeleton for the
// relativity visualizer: the widget interface, the root model, the event
// types, and the keyboard/mouse controller that funnels every state
// mutation through the shared frame model.
//
// All interaction follows one path: input -> mutate frame model ->
// broadcast a change event to the widgets -> bubbletea re-renders. No
// widget reads input devices directly and no widget mutates shared state,
// which keeps redraws idempotent.
package app

import (
	"time"

	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
)

// VelocityChangedEvent is broadcast after the shared velocity changes.
// Gamma rides along so widgets never recompute it inconsistently.
type VelocityChangedEvent struct {
	V     float64
	Gamma float64
}

// FrameChangedEvent is broadcast after the active diagram frame switches.
type FrameChangedEvent struct {
	Frame frame.Frame
}

// EventsChangedEvent is broadcast after events are added or cleared.
type EventsChangedEvent struct {
	Count int
}

// UnitModeChangedEvent is broadcast after the display unit system toggles.
type UnitModeChangedEvent struct {
	Mode components.UnitMode
}

// TickEvent drives the time-dilation clock animation. Nothing else in the
// visualizer is clocked; all other redraws are on-demand.
type TickEvent struct {
	Time time.Time
}
