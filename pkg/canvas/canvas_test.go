package canvas

import (
	"strings"
	"testing"
)

func TestSetDotAndDotAt(t *testing.T) {
	c := New(4, 4)
	c.SetDot(3, 5, "#ffffff")
	if !c.DotAt(3, 5) {
		t.Error("dot (3,5) not set")
	}
	if c.DotAt(2, 5) || c.DotAt(3, 4) {
		t.Error("neighboring dots unexpectedly set")
	}
	if c.DotCount() != 1 {
		t.Errorf("DotCount() = %d, want 1", c.DotCount())
	}
}

func TestSetDotClipsSilently(t *testing.T) {
	c := New(2, 2)
	c.SetDot(-1, 0, "#ffffff")
	c.SetDot(0, -4, "#ffffff")
	c.SetDot(100, 100, "#ffffff")
	if c.DotCount() != 0 {
		t.Errorf("out-of-range SetDot wrote %d dots", c.DotCount())
	}
}

func TestLineHorizontalVertical(t *testing.T) {
	c := New(5, 5)
	c.Line(0, 2, 9, 2, "#ffffff")
	for x := 0; x <= 9; x++ {
		if !c.DotAt(x, 2) {
			t.Errorf("horizontal line missing dot at x=%d", x)
		}
	}

	c2 := New(5, 5)
	c2.Line(4, 0, 4, 19, "#ffffff")
	for y := 0; y <= 19; y++ {
		if !c2.DotAt(4, y) {
			t.Errorf("vertical line missing dot at y=%d", y)
		}
	}
}

func TestLineDiagonalAndOverExtended(t *testing.T) {
	c := New(5, 5)
	// 45-degree line through the dot grid.
	c.Line(0, 0, 9, 9, "#ffffff")
	for i := 0; i <= 9; i++ {
		if !c.DotAt(i, i) {
			t.Errorf("diagonal missing dot at (%d,%d)", i, i)
		}
	}

	// Endpoints far outside the canvas must still paint the visible span
	// and must terminate.
	c3 := New(5, 5)
	c3.Line(-100, -100, 120, 120, "#ffffff")
	if !c3.DotAt(5, 5) {
		t.Error("over-extended diagonal did not cross the canvas")
	}
}

func TestRenderBrailleComposition(t *testing.T) {
	c := New(1, 1)
	// All 8 dots of the single cell: U+28FF.
	for dx := 0; dx < DotsPerCellX; dx++ {
		for dy := 0; dy < DotsPerCellY; dy++ {
			c.SetDot(dx, dy, "")
		}
	}
	out := c.Render()
	if !strings.Contains(out, "⣿") {
		t.Errorf("Render() = %q, want full Braille cell U+28FF", out)
	}
}

func TestRenderColorsAndTrimsTrailingSpace(t *testing.T) {
	c := New(4, 1)
	c.SetDot(0, 0, "#ff0000")
	out := c.Render()
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("Render() missing color escape: %q", out)
	}
	if strings.HasSuffix(out, " ") {
		t.Errorf("Render() has trailing whitespace: %q", out)
	}
}

func TestTextOverlayReplacesBraille(t *testing.T) {
	c := New(6, 2)
	c.SetDot(0, 4, "#ffffff") // cell (0,1)
	c.Text(0, 1, "ct", "#00ff00")
	out := c.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "ct") {
		t.Errorf("label not rendered: %q", lines[1])
	}
}

func TestMarkerSetsBlock(t *testing.T) {
	c := New(3, 3)
	c.Marker(2, 4, "#ffffff")
	for _, d := range [][2]int{{2, 4}, {3, 4}, {2, 5}, {3, 5}} {
		if !c.DotAt(d[0], d[1]) {
			t.Errorf("marker missing dot (%d,%d)", d[0], d[1])
		}
	}
}

func TestFillTriangleStaysInBounds(t *testing.T) {
	c := New(5, 5)
	c.FillTriangle(0, 0, 9, 0, 5, 19, "#333333")
	if c.DotCount() == 0 {
		t.Error("FillTriangle set no dots")
	}
	// Checkerboard shading: strictly fewer dots than a solid fill would set.
	if c.DotCount() > 100 {
		t.Errorf("FillTriangle set %d dots, expected sparse shading", c.DotCount())
	}
}

func TestViewportCenterCellUnprojectsToOrigin(t *testing.T) {
	vp := NewViewport(41, 21, 0)
	x, ct := vp.UnprojectCell(20, 10)
	if x != 0 || ct != 0 {
		t.Errorf("center cell unprojects to (%v, %v), want (0, 0)", x, ct)
	}
}

func TestViewportProjectUnprojectRoundTrip(t *testing.T) {
	vp := NewViewport(40, 20, 0)
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {-2, 3}, {4.5, -4.5}} {
		dx, dy := vp.Project(p[0], p[1])
		x, ct := vp.Unproject(float64(dx), float64(dy))
		// Round trip is exact only to dot resolution.
		tol := 1 / vp.Scale
		if diff(x, p[0]) > tol || diff(ct, p[1]) > tol {
			t.Errorf("round trip (%v,%v) -> (%v,%v), tolerance %v", p[0], p[1], x, ct, tol)
		}
	}
}

func TestViewportCTIncreasesUpward(t *testing.T) {
	vp := NewViewport(40, 20, 0)
	_, dyLow := vp.Project(0, -1)
	_, dyHigh := vp.Project(0, 1)
	if dyHigh >= dyLow {
		t.Errorf("ct=+1 maps to row %d, ct=-1 to row %d; want flipped axis", dyHigh, dyLow)
	}
}

func TestViewportContains(t *testing.T) {
	vp := NewViewport(10, 5, 0)
	if !vp.Contains(0, 0) || !vp.Contains(9, 4) {
		t.Error("corner cells should be inside")
	}
	if vp.Contains(-1, 0) || vp.Contains(10, 0) || vp.Contains(0, 5) {
		t.Error("out-of-range cells should be outside")
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
