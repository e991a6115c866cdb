package canvas

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultHalfExtent is the half-width of the visible diagram area in
// natural units. Nine unit grid lines (n = -4..4) fit with a margin.
const DefaultHalfExtent = 5.5

// Viewport maps natural-unit diagram coordinates (x, ct) onto the dot
// grid of a canvas. The origin sits at the canvas center, ct increases
// upward (dot rows increase downward), and a single isotropic scale is
// used because Braille dot spacing is roughly square.
//
// A Viewport is transient per-draw state: it is recomputed from the cell
// dimensions whenever the host container resizes.
type Viewport struct {
	CellW, CellH int
	Scale        float64 // dots per natural unit
	OriginX      float64 // dot coordinates of (0, 0)
	OriginY      float64
}

// NewViewport derives the geometry for a canvas of the given cell
// dimensions, fitting halfExtent natural units along the smaller axis.
// halfExtent <= 0 selects DefaultHalfExtent.
func NewViewport(cellW, cellH int, halfExtent float64) Viewport {
	if halfExtent <= 0 {
		halfExtent = DefaultHalfExtent
	}
	dotsW := cellW * DotsPerCellX
	dotsH := cellH * DotsPerCellY
	minDots := dotsW
	if dotsH < minDots {
		minDots = dotsH
	}
	scale := float64(minDots) / (2 * halfExtent)
	if scale <= 0 {
		scale = 1
	}
	return Viewport{
		CellW:   cellW,
		CellH:   cellH,
		Scale:   scale,
		OriginX: cellCenter(cellW, DotsPerCellX),
		OriginY: cellCenter(cellH, DotsPerCellY),
	}
}

// cellCenter returns the dot coordinate of the center of the middle cell,
// so that the center cell unprojects to exactly zero.
func cellCenter(cells, dotsPer int) float64 {
	center := float64(cells-1) / 2
	return center*float64(dotsPer) + (float64(dotsPer)-1)/2
}

// Project maps a natural-unit point to integer dot coordinates.
func (vp Viewport) Project(x, ct float64) (dx, dy int) {
	fx := vp.OriginX + x*vp.Scale
	fy := vp.OriginY - ct*vp.Scale
	return int(math.Round(fx)), int(math.Round(fy))
}

// Unproject maps dot coordinates back to natural units, inverting the
// translate/scale/flip of Project.
func (vp Viewport) Unproject(dx, dy float64) (x, ct float64) {
	if vp.Scale == 0 {
		return 0, 0
	}
	return (dx - vp.OriginX) / vp.Scale, -(dy - vp.OriginY) / vp.Scale
}

// UnprojectCell maps a cell coordinate (for example a mouse click) to
// natural units using the center of that cell's dot block. The canvas's
// center cell yields exactly (0, 0).
func (vp Viewport) UnprojectCell(cx, cy int) (x, ct float64) {
	dx := float64(cx)*DotsPerCellX + (DotsPerCellX-1)/2.0
	dy := float64(cy)*DotsPerCellY + (DotsPerCellY-1)/2.0
	return vp.Unproject(dx, dy)
}

// Contains reports whether a cell coordinate lies strictly inside the
// canvas bounds.
func (vp Viewport) Contains(cx, cy int) bool {
	return cx >= 0 && cx < vp.CellW && cy >= 0 && cy < vp.CellH
}

// HalfDots returns half the dot width and height, the extents used when
// over-extending sheared lines past the visible area.
func (vp Viewport) HalfDots() (hw, hh float64) {
	return float64(vp.CellW*DotsPerCellX) / 2, float64(vp.CellH*DotsPerCellY) / 2
}

// String describes the viewport for debug logging.
func (vp Viewport) String() string {
	return fmt.Sprintf("viewport %dx%d cells scale=%.2f origin=(%.1f,%.1f)",
		vp.CellW, vp.CellH, vp.Scale, vp.OriginX, vp.OriginY)
}

// ansiFg builds a true-color foreground escape from "#RRGGBB" or
// "RRGGBB". Malformed colors produce no escape at all.
func ansiFg(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ""
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
