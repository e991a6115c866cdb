// Package diagram composes the Minkowski spacetime diagram: axes, grids,
// the light cone, worldlines, simultaneity and constant-position line
// families, user events, and axis labels.
//
// Composition is a pure projection from a frame snapshot to a Scene of
// world-unit primitives; rasterization then maps the scene onto a Braille
// canvas through a viewport. The split keeps the geometry testable without
// a drawing surface and makes redraws idempotent by construction.
package diagram

import (
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
)

// Role tags a primitive with its visual meaning so the rasterizer can
// color it from the active theme without the composer knowing colors.
type Role int

const (
	RoleLightCone Role = iota
	RoleConeFill
	RoleAxis
	RoleGrid
	RoleShearAxis
	RoleSimultaneity
	RoleConstPosition
	RoleWorldline
	RoleRestWorldline
	RoleEvent
	RoleEventLine
	RoleLabelStationary
	RoleLabelMoving
)

// Line is a world-unit line segment in the (x, ct) plane.
type Line struct {
	X0, CT0 float64
	X1, CT1 float64
	Role    Role
	Thick   bool
}

// Triangle is a filled world-unit triangle, used for the light-cone
// interior shading.
type Triangle struct {
	X  [3]float64
	CT [3]float64
	Role Role
}

// Point is a world-unit event marker.
type Point struct {
	X, CT float64
	Role  Role
}

// Label is an axis caption anchored at a world-unit position. Angle is the
// axis inclination in radians; the cell rasterizer cannot rotate glyphs,
// so it uses the angle only to keep the caption clear of the axis line.
type Label struct {
	X, CT float64
	Text  string
	Angle float64
	Role  Role
}

// Scene is an ordered list of primitives, back-to-front. Rasterizing the
// same scene any number of times produces the same drawing.
type Scene struct {
	Triangles []Triangle
	Lines     []Line
	Points    []Point
	Labels    []Label
}

// Snapshot captures the frame-model state a single draw depends on.
// Taking a snapshot decouples composition from the live model.
type Snapshot struct {
	V      float64
	Active frame.Frame
	Events []frame.Event
}

// Snap reads a snapshot from a frame model.
func Snap(m *frame.Model) Snapshot {
	return Snapshot{
		V:      m.Velocity(),
		Active: m.ActiveFrame(),
		Events: m.Events(),
	}
}

func (s *Scene) line(x0, ct0, x1, ct1 float64, role Role) {
	s.Lines = append(s.Lines, Line{X0: x0, CT0: ct0, X1: x1, CT1: ct1, Role: role})
}

func (s *Scene) thickLine(x0, ct0, x1, ct1 float64, role Role) {
	s.Lines = append(s.Lines, Line{X0: x0, CT0: ct0, X1: x1, CT1: ct1, Role: role, Thick: true})
}
