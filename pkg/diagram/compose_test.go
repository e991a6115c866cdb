package diagram

import (
	"math"
	"reflect"
	"testing"

	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
)

const testExtent = 5.5

func linesByRole(sc Scene, role Role) []Line {
	var out []Line
	for _, l := range sc.Lines {
		if l.Role == role {
			out = append(out, l)
		}
	}
	return out
}

// slope returns dct/dx for a line, or ±Inf for vertical lines.
func slope(l Line) float64 {
	return (l.CT1 - l.CT0) / (l.X1 - l.X0)
}

func isVertical(l Line) bool {
	return l.X0 == l.X1
}

func isHorizontal(l Line) bool {
	return l.CT0 == l.CT1
}

func TestLightConeSlopesAreUnity(t *testing.T) {
	for _, v := range []float64{0, 0.5, -0.9, 0.999} {
		for _, active := range []frame.Frame{frame.Stationary, frame.Moving} {
			sc := Compose(Snapshot{V: v, Active: active}, testExtent)
			cone := linesByRole(sc, RoleLightCone)
			if len(cone) != 2 {
				t.Fatalf("v=%v active=%v: %d light-cone lines, want 2", v, active, len(cone))
			}
			s0, s1 := slope(cone[0]), slope(cone[1])
			if math.Abs(math.Abs(s0)-1) > 1e-12 || math.Abs(math.Abs(s1)-1) > 1e-12 {
				t.Errorf("v=%v: light-cone slopes %v, %v; want ±1", v, s0, s1)
			}
			if s0*s1 >= 0 {
				t.Errorf("v=%v: light-cone slopes %v, %v should have opposite signs", v, s0, s1)
			}
		}
	}
}

func TestZeroVelocityDegeneratesToOrthogonal(t *testing.T) {
	sc := Compose(Snapshot{V: 0, Active: frame.Stationary}, testExtent)

	for _, l := range linesByRole(sc, RoleShearAxis) {
		if !isVertical(l) && !isHorizontal(l) {
			t.Errorf("v=0 sheared axis not axis-aligned: %+v", l)
		}
	}
	for _, l := range linesByRole(sc, RoleSimultaneity) {
		if !isHorizontal(l) {
			t.Errorf("v=0 simultaneity line not horizontal: %+v", l)
		}
	}
	for _, l := range linesByRole(sc, RoleConstPosition) {
		if !isVertical(l) {
			t.Errorf("v=0 constant-position line not vertical: %+v", l)
		}
	}
	wl := linesByRole(sc, RoleWorldline)
	if len(wl) != 1 || !isVertical(wl[0]) {
		t.Errorf("v=0 moving worldline should be vertical: %+v", wl)
	}
}

func TestShearedAxisSlopeSignFollowsActiveFrame(t *testing.T) {
	const v = 0.5

	// Stationary active: space axis slope +v, time axis x = v·ct.
	sc := Compose(Snapshot{V: v, Active: frame.Stationary}, testExtent)
	axes := linesByRole(sc, RoleShearAxis)
	if len(axes) != 2 {
		t.Fatalf("%d sheared axes, want 2", len(axes))
	}
	space, timeAxis := axes[0], axes[1]
	if got := slope(space); math.Abs(got-v) > 1e-12 {
		t.Errorf("stationary-active space axis slope = %v, want %v", got, v)
	}
	if got := slope(timeAxis); math.Abs(got-1/v) > 1e-12 {
		t.Errorf("stationary-active time axis slope = %v, want %v", got, 1/v)
	}

	// Moving active: signs flip.
	sc = Compose(Snapshot{V: v, Active: frame.Moving}, testExtent)
	axes = linesByRole(sc, RoleShearAxis)
	if got := slope(axes[0]); math.Abs(got+v) > 1e-12 {
		t.Errorf("moving-active space axis slope = %v, want %v", got, -v)
	}
	if got := slope(axes[1]); math.Abs(got+1/v) > 1e-12 {
		t.Errorf("moving-active time axis slope = %v, want %v", got, -1/v)
	}
}

func TestFrameToggleIsInvolutive(t *testing.T) {
	snap := Snapshot{V: 0.73, Active: frame.Stationary,
		Events: []frame.Event{{X: 1, CT: 2}, {X: -0.5, CT: 0.25}}}

	before := Compose(snap, testExtent)
	snap.Active = snap.Active.Other().Other()
	after := Compose(snap, testExtent)

	if !reflect.DeepEqual(before, after) {
		t.Error("composing after a double frame toggle changed the scene")
	}
}

func TestMovingWorldlineHighlightedInBothFrames(t *testing.T) {
	const v = 0.6

	sc := Compose(Snapshot{V: v, Active: frame.Stationary}, testExtent)
	wl := linesByRole(sc, RoleWorldline)
	if len(wl) != 1 || !wl[0].Thick {
		t.Fatalf("stationary-active worldline = %+v, want one thick line", wl)
	}
	// x = v·ct, so dct/dx = 1/v.
	if got := slope(wl[0]); math.Abs(got-1/v) > 1e-12 {
		t.Errorf("worldline slope = %v, want %v", got, 1/v)
	}

	sc = Compose(Snapshot{V: v, Active: frame.Moving}, testExtent)
	wl = linesByRole(sc, RoleWorldline)
	if len(wl) != 1 || !wl[0].Thick || !isVertical(wl[0]) {
		t.Errorf("moving-active worldline = %+v, want the orthogonal vertical", wl)
	}
}

func TestRestObjectWorldline(t *testing.T) {
	const v = 0.8
	gamma := 1 / math.Sqrt(1-v*v)

	sc := Compose(Snapshot{V: v, Active: frame.Stationary}, testExtent)
	rest := linesByRole(sc, RoleRestWorldline)
	if len(rest) != 1 || !isVertical(rest[0]) || rest[0].X0 != 1 {
		t.Errorf("stationary-active rest worldline = %+v, want vertical at x=1", rest)
	}

	sc = Compose(Snapshot{V: v, Active: frame.Moving}, testExtent)
	rest = linesByRole(sc, RoleRestWorldline)
	if len(rest) != 1 {
		t.Fatalf("%d rest worldlines, want 1", len(rest))
	}
	// The line crosses ct' = 0 at the contracted position x = 1/γ.
	l := rest[0]
	frac := (0 - l.CT0) / (l.CT1 - l.CT0)
	xAtZero := l.X0 + frac*(l.X1-l.X0)
	if math.Abs(xAtZero-1/gamma) > 1e-12 {
		t.Errorf("rest worldline crosses ct'=0 at %v, want %v", xAtZero, 1/gamma)
	}
}

func TestSimultaneityFamilyIntercepts(t *testing.T) {
	const v = 0.6
	gamma := 1 / math.Sqrt(1-v*v)

	sc := Compose(Snapshot{V: v, Active: frame.Stationary}, testExtent)
	fam := linesByRole(sc, RoleSimultaneity)
	if len(fam) != gridLines-1 {
		t.Fatalf("%d simultaneity lines, want %d", len(fam), gridLines-1)
	}
	// Every line has slope v; the ct-axis intercepts step by 1/γ.
	seen := map[float64]bool{}
	for _, l := range fam {
		if got := slope(l); math.Abs(got-v) > 1e-12 {
			t.Errorf("simultaneity slope = %v, want %v", got, v)
		}
		frac := (0 - l.X0) / (l.X1 - l.X0)
		k := l.CT0 + frac*(l.CT1-l.CT0)
		seen[math.Round(k*gamma)] = true
	}
	for n := -4.0; n <= 4; n++ {
		if n == 0 {
			continue
		}
		if !seen[n] {
			t.Errorf("missing simultaneity line for n=%v", n)
		}
	}
}

func TestConstantPositionFamily(t *testing.T) {
	const v = 0.6
	gamma := 1 / math.Sqrt(1-v*v)

	sc := Compose(Snapshot{V: v, Active: frame.Stationary}, testExtent)
	fam := linesByRole(sc, RoleConstPosition)
	if len(fam) != gridLines-1 {
		t.Fatalf("%d constant-position lines, want %d", len(fam), gridLines-1)
	}
	for _, l := range fam {
		// dx/dct = v for lines of constant moving-frame position.
		got := (l.X1 - l.X0) / (l.CT1 - l.CT0)
		if math.Abs(got-v) > 1e-12 {
			t.Errorf("constant-position inverse slope = %v, want %v", got, v)
		}
		// x at ct = 0 is n/γ for some nonzero integer n.
		frac := (0 - l.CT0) / (l.CT1 - l.CT0)
		x := l.X0 + frac*(l.X1-l.X0)
		n := math.Round(x * gamma)
		if n == 0 || math.Abs(x-n/gamma) > 1e-9 {
			t.Errorf("constant-position intercept %v is not n/γ", x)
		}
	}
}

func TestEventSimultaneityLines(t *testing.T) {
	const v = 0.6
	ev := frame.Event{X: 1.5, CT: 0.5}

	// Stationary active: horizontal line through the event.
	sc := Compose(Snapshot{V: v, Active: frame.Stationary, Events: []frame.Event{ev}}, testExtent)
	evl := linesByRole(sc, RoleEventLine)
	if len(evl) != 1 || !isHorizontal(evl[0]) || evl[0].CT0 != ev.CT {
		t.Errorf("stationary-active event line = %+v, want horizontal through ct=%v", evl, ev.CT)
	}
	if len(sc.Points) != 1 || sc.Points[0].X != ev.X || sc.Points[0].CT != ev.CT {
		t.Errorf("event marker = %+v, want at (%v,%v)", sc.Points, ev.X, ev.CT)
	}

	// Moving active: slope v, passing through the event's canvas position
	// via the transformed time intercept.
	sc = Compose(Snapshot{V: v, Active: frame.Moving, Events: []frame.Event{ev}}, testExtent)
	evl = linesByRole(sc, RoleEventLine)
	if len(evl) != 1 {
		t.Fatalf("%d event lines, want 1", len(evl))
	}
	l := evl[0]
	if got := slope(l); math.Abs(got-v) > 1e-12 {
		t.Errorf("moving-active event line slope = %v, want %v", got, v)
	}
	frac := (ev.X - l.X0) / (l.X1 - l.X0)
	ctAtEvent := l.CT0 + frac*(l.CT1-l.CT0)
	if math.Abs(ctAtEvent-ev.CT) > 1e-9 {
		t.Errorf("moving-active event line passes ct=%v at the event, want %v", ctAtEvent, ev.CT)
	}
}

func TestComposeStaysFiniteNearLightSpeed(t *testing.T) {
	for _, v := range []float64{0.999, -0.999} {
		sc := Compose(Snapshot{V: v, Active: frame.Stationary,
			Events: []frame.Event{{X: 1, CT: 1}}}, testExtent)
		for _, l := range sc.Lines {
			for _, f := range []float64{l.X0, l.CT0, l.X1, l.CT1} {
				if math.IsNaN(f) || math.IsInf(f, 0) {
					t.Fatalf("v=%v produced non-finite line %+v", v, l)
				}
			}
		}
	}
}

func TestComposeSentinelVelocityDoesNotPanic(t *testing.T) {
	// γ = +Inf; intercepts n/γ collapse to 0 and nothing blows up.
	sc := Compose(Snapshot{V: 1, Active: frame.Stationary}, testExtent)
	for _, l := range linesByRole(sc, RoleSimultaneity) {
		frac := (0 - l.X0) / (l.X1 - l.X0)
		k := l.CT0 + frac*(l.CT1-l.CT0)
		if math.Abs(k) > 1e-9 {
			t.Errorf("sentinel-velocity simultaneity intercept = %v, want 0", k)
		}
	}
}

func TestAxisLabels(t *testing.T) {
	sc := Compose(Snapshot{V: 0.5, Active: frame.Stationary}, testExtent)
	if len(sc.Labels) != 4 {
		t.Fatalf("%d labels, want 4", len(sc.Labels))
	}
	moving := 0
	for _, lb := range sc.Labels {
		if lb.Role == RoleLabelMoving {
			moving++
		}
	}
	if moving != 2 {
		t.Errorf("%d moving-frame labels, want 2", moving)
	}
	// Sheared labels carry the axis inclination.
	for _, lb := range sc.Labels {
		if lb.Text == "x′" {
			if math.Abs(lb.Angle-math.Atan(0.5)) > 1e-12 {
				t.Errorf("x′ label angle = %v, want atan(0.5)", lb.Angle)
			}
		}
	}
}

func TestRasterizeIsIdempotent(t *testing.T) {
	snap := Snapshot{V: 0.6, Active: frame.Stationary,
		Events: []frame.Event{{X: 1, CT: 1}}}
	sc := Compose(snap, testExtent)
	vp := canvas.NewViewport(41, 21, 0)
	p := Palette{Axis: "#ffffff", Grid: "#333333", LightCone: "#ffd700"}

	c1 := canvas.New(41, 21)
	c2 := canvas.New(41, 21)
	Rasterize(sc, vp, c1, p)
	Rasterize(sc, vp, c2, p)
	if c1.Render() != c2.Render() {
		t.Error("rasterizing the same scene twice produced different drawings")
	}
	if c1.DotCount() == 0 {
		t.Error("rasterized scene set no dots")
	}
}
