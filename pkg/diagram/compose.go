package diagram

import (
	"math"

	"github.com/jajohns1/relativity-visualizer/pkg/frame"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
)

// gridLines is the number of unit grid lines per axis (n = -4..4).
const gridLines = 9

// extendFactor over-extends sheared lines beyond the visible half-extent
// so clipping at the canvas border looks correct at any inclination.
const extendFactor = 2.0

// Compose builds the diagram scene for one snapshot. halfExtent is the
// visible half-width in natural units; primitives may extend past it and
// rely on the rasterizer's clipping.
//
// The drawing convention follows the diagram's later, self-consistent
// variant: the canvas plane always carries stationary-frame coordinates
// for events, the active frame's axes are the orthogonal pair, and the
// non-active frame's axis and line families are sheared. Time-type lines
// are parameterized by ct (x = v·ct) rather than by slope 1/v, which
// removes every division by v and makes v = 0 degenerate to literal
// vertical lines with no special case at the call sites.
func Compose(snap Snapshot, halfExtent float64) Scene {
	if halfExtent <= 0 {
		halfExtent = 1
	}

	v := snap.V
	gamma := relativity.LorentzFactor(v)
	ext := halfExtent * extendFactor

	// Sheared-axis slope sign flips with the active frame: the stationary
	// observer sees the moving axes tilted by +v, and from the moving
	// frame the stationary axes tilt the other way.
	shear := v
	if snap.Active == frame.Moving {
		shear = -v
	}

	var sc Scene

	// 1. Light cone, frame-independent: |x| = ct diagonals plus shaded
	// future and past cones bounded to the visible area.
	sc.Triangles = append(sc.Triangles,
		Triangle{X: [3]float64{0, -halfExtent, halfExtent}, CT: [3]float64{0, halfExtent, halfExtent}, Role: RoleConeFill},
		Triangle{X: [3]float64{0, -halfExtent, halfExtent}, CT: [3]float64{0, -halfExtent, -halfExtent}, Role: RoleConeFill},
	)
	sc.line(-ext, -ext, ext, ext, RoleLightCone)
	sc.line(-ext, ext, ext, -ext, RoleLightCone)

	// 2. Orthogonal grid of the active frame, then its axes on top.
	half := float64(gridLines-1) / 2 // unit steps n = -4..4
	for n := -half; n <= half; n++ {
		if n == 0 {
			continue
		}
		sc.line(-halfExtent, n, halfExtent, n, RoleGrid)
		sc.line(n, -halfExtent, n, halfExtent, RoleGrid)
	}
	sc.line(-ext, 0, ext, 0, RoleAxis)
	sc.line(0, -ext, 0, ext, RoleAxis)

	// 3. Sheared axes of the non-active frame. The space axis is ct =
	// shear·x; the time axis is x = shear·ct, vertical when v = 0.
	sc.line(-ext, -ext*shear, ext, ext*shear, RoleShearAxis)
	sc.line(-ext*shear, -ext, ext*shear, ext, RoleShearAxis)

	// 4. The moving observer's worldline is always the moving frame's own
	// time axis, highlighted regardless of which frame is active. With the
	// moving frame active that axis is the orthogonal vertical.
	if snap.Active == frame.Moving {
		sc.thickLine(0, -ext, 0, ext, RoleWorldline)
	} else {
		sc.thickLine(-v*ext, -ext, v*ext, ext, RoleWorldline)
	}

	// 5. Worldline of an object at rest at x = 1 in the stationary frame.
	// Stationary active: a vertical line at x = 1. Moving active: the
	// object drifts at -v and crosses ct' = 0 at the contracted x = 1/γ.
	if snap.Active == frame.Moving {
		x0 := 1 / gamma
		sc.line(x0+v*ext, -ext, x0-v*ext, ext, RoleRestWorldline)
	} else {
		sc.line(1, -ext, 1, ext, RoleRestWorldline)
	}

	// 6. Simultaneity family of the non-active frame: constant-time lines
	// at unit steps of that frame's clock, ct = shear·x + n/γ.
	for n := -half; n <= half; n++ {
		if n == 0 {
			continue
		}
		k := n / gamma
		sc.line(-ext, shear*-ext+k, ext, shear*ext+k, RoleSimultaneity)
	}

	// 7. Constant-position family of the non-active frame: x = shear·ct +
	// n/γ, parameterized by ct so v = 0 degenerates to vertical lines.
	for n := -half; n <= half; n++ {
		if n == 0 {
			continue
		}
		k := n / gamma
		sc.line(shear*-ext+k, -ext, shear*ext+k, ext, RoleConstPosition)
	}

	// 8. User events: markers at their stationary-frame canvas positions
	// plus one simultaneity line each for the active frame. Stationary
	// active: a horizontal line through the event. Moving active: the
	// moving frame's constant-t' line through the event, slope v with the
	// ct-axis intercept t'/γ taken from the transformed time coordinate.
	for _, ev := range snap.Events {
		sc.Points = append(sc.Points, Point{X: ev.X, CT: ev.CT, Role: RoleEvent})
		if snap.Active == frame.Moving {
			tp, _ := relativity.LorentzTransform(ev.CT, ev.X, v)
			k := tp / gamma
			sc.line(-ext, v*-ext+k, ext, v*ext+k, RoleEventLine)
		} else {
			sc.line(-ext, ev.CT, ext, ev.CT, RoleEventLine)
		}
	}

	// 9. Axis labels at a fixed radial offset from the origin, rotated to
	// each axis's inclination. Primed labels always mark the moving frame.
	sc.Labels = append(sc.Labels, composeLabels(snap.Active, shear, halfExtent)...)

	return sc
}

// composeLabels positions the four axis captions. The active frame's
// captions sit on the orthogonal axes; the other frame's follow the
// sheared directions.
func composeLabels(active frame.Frame, shear, halfExtent float64) []Label {
	r := halfExtent * 0.8

	orthoRole, shearRole := RoleLabelStationary, RoleLabelMoving
	orthoSpace, orthoTime := "x", "ct"
	shearSpace, shearTime := "x′", "ct′"
	if active == frame.Moving {
		orthoRole, shearRole = RoleLabelMoving, RoleLabelStationary
		orthoSpace, orthoTime = "x′", "ct′"
		shearSpace, shearTime = "x", "ct"
	}

	// Space-type direction (1, shear), time-type direction (shear, 1),
	// both normalized so every caption sits at the same radius.
	norm := math.Hypot(1, shear)
	sx, sct := r/norm, r*shear/norm
	tx, tct := r*shear/norm, r/norm

	return []Label{
		{X: r, CT: 0, Text: orthoSpace, Angle: 0, Role: orthoRole},
		{X: 0, CT: r, Text: orthoTime, Angle: math.Pi / 2, Role: orthoRole},
		{X: sx, CT: sct, Text: shearSpace, Angle: math.Atan(shear), Role: shearRole},
		{X: tx, CT: tct, Text: shearTime, Angle: math.Pi/2 - math.Atan(shear), Role: shearRole},
	}
}
