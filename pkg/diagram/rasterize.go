package diagram

import (
	"math"

	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
)

// Palette maps primitive roles to hex colors. It is normally built from
// the active theme; tests can use a flat palette.
type Palette struct {
	LightCone       string
	ConeFill        string
	Axis            string
	Grid            string
	ShearAxis       string
	Simultaneity    string
	ConstPosition   string
	Worldline       string
	RestWorldline   string
	Event           string
	EventLine       string
	LabelStationary string
	LabelMoving     string
}

// Color returns the palette color for a role.
func (p Palette) Color(r Role) string {
	switch r {
	case RoleLightCone:
		return p.LightCone
	case RoleConeFill:
		return p.ConeFill
	case RoleAxis:
		return p.Axis
	case RoleGrid:
		return p.Grid
	case RoleShearAxis:
		return p.ShearAxis
	case RoleSimultaneity:
		return p.Simultaneity
	case RoleConstPosition:
		return p.ConstPosition
	case RoleWorldline:
		return p.Worldline
	case RoleRestWorldline:
		return p.RestWorldline
	case RoleEvent:
		return p.Event
	case RoleEventLine:
		return p.EventLine
	case RoleLabelStationary:
		return p.LabelStationary
	case RoleLabelMoving:
		return p.LabelMoving
	}
	return ""
}

// Rasterize draws a scene onto a canvas through the given viewport,
// honoring the scene's back-to-front order. It never fails: primitives
// outside the viewport clip silently.
func Rasterize(sc Scene, vp canvas.Viewport, c *canvas.Canvas, p Palette) {
	for _, t := range sc.Triangles {
		x0, y0 := vp.Project(t.X[0], t.CT[0])
		x1, y1 := vp.Project(t.X[1], t.CT[1])
		x2, y2 := vp.Project(t.X[2], t.CT[2])
		c.FillTriangle(x0, y0, x1, y1, x2, y2, p.Color(t.Role))
	}

	for _, l := range sc.Lines {
		if !finiteLine(l) {
			continue
		}
		x0, y0 := vp.Project(l.X0, l.CT0)
		x1, y1 := vp.Project(l.X1, l.CT1)
		if l.Thick {
			c.ThickLine(x0, y0, x1, y1, p.Color(l.Role))
		} else {
			c.Line(x0, y0, x1, y1, p.Color(l.Role))
		}
	}

	for _, pt := range sc.Points {
		dx, dy := vp.Project(pt.X, pt.CT)
		c.Marker(dx, dy, p.Color(pt.Role))
	}

	for _, lb := range sc.Labels {
		dx, dy := vp.Project(lb.X, lb.CT)
		cx := dx / canvas.DotsPerCellX
		cy := dy / canvas.DotsPerCellY
		// Cell glyphs cannot rotate; use the axis angle to push the
		// caption off the line it names so both stay legible.
		if math.Abs(lb.Angle) < math.Pi/4 {
			cy--
		} else {
			cx++
		}
		c.Text(cx, cy, lb.Text, p.Color(lb.Role))
	}
}

// finiteLine rejects segments with non-finite endpoints. Saturated
// velocities can push intercepts to infinity; dropping the segment beats
// corrupting the drawing.
func finiteLine(l Line) bool {
	for _, f := range []float64{l.X0, l.CT0, l.X1, l.CT1} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
