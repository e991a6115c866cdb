// Package frame holds the shared mutable state of the visualizer: the
// common velocity, the active reference frame of the spacetime diagram, and
// the user-placed events. All mutation funnels through Model so the
// renderer can treat it as a read-only snapshot source.
//
// The model is deliberately unsynchronized: the bubbletea update loop is
// the single writer and the view pass is the single reader, and a view
// always follows the mutation that scheduled it.
package frame

import (
	"fmt"
	"strings"
)

// Frame identifies one of the two reference frames of the diagram.
type Frame int

const (
	// Stationary is the lab frame; its axes are drawn orthogonal when active.
	Stationary Frame = iota
	// Moving is the frame of the observer traveling at the shared velocity.
	Moving
)

// String returns the lowercase frame name used in config and scenarios.
func (f Frame) String() string {
	if f == Moving {
		return "moving"
	}
	return "stationary"
}

// Other returns the opposite frame.
func (f Frame) Other() Frame {
	if f == Moving {
		return Stationary
	}
	return Moving
}

// ParseFrame maps "stationary" or "moving" (any case) to a Frame.
func ParseFrame(s string) (Frame, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stationary", "":
		return Stationary, nil
	case "moving":
		return Moving, nil
	}
	return Stationary, fmt.Errorf("unknown frame %q (want stationary or moving)", s)
}

// Event is a user-placed point in spacetime. Coordinates are always stored
// in the stationary frame's natural units (x, ct) and never change after
// creation; only the rendering of an event depends on the current velocity
// and active frame.
type Event struct {
	X  float64
	CT float64
}

// Model is the single source of truth for velocity, active frame, and
// events. The zero value is usable: v=0, stationary frame active, no
// events.
type Model struct {
	velocity float64
	active   Frame
	events   []Event
}

// New returns a Model at rest in the stationary frame.
func New() *Model {
	return &Model{}
}

// SetVelocity stores v as given. Range policy belongs to the caller: the
// slider clamps to [-0.999, 0.999] before calling, and the kernel's
// saturation handles anything beyond that if another caller is looser.
func (m *Model) SetVelocity(v float64) {
	m.velocity = v
}

// Velocity returns the shared velocity as a fraction of c.
func (m *Model) Velocity() float64 {
	return m.velocity
}

// SetActiveFrame selects which frame is drawn with orthogonal axes on the
// next render.
func (m *Model) SetActiveFrame(f Frame) {
	m.active = f
}

// ActiveFrame returns the frame currently drawn orthogonal.
func (m *Model) ActiveFrame() Frame {
	return m.active
}

// ToggleFrame flips the active frame and returns the new value.
func (m *Model) ToggleFrame() Frame {
	m.active = m.active.Other()
	return m.active
}

// AddEvent appends an event in stationary-frame units. Events are
// append-only until ClearEvents: no dedup, no capacity limit.
func (m *Model) AddEvent(x, ct float64) {
	m.events = append(m.events, Event{X: x, CT: ct})
}

// ClearEvents empties the event collection.
func (m *Model) ClearEvents() {
	m.events = m.events[:0]
}

// Events returns a copy of the event sequence in insertion order.
// Iterating the result never observes later mutation of the model.
func (m *Model) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// EventCount returns the number of stored events.
func (m *Model) EventCount() int {
	return len(m.events)
}
