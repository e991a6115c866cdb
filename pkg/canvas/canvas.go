// Package canvas provides a Braille-dot drawing surface for terminal
// cells. Each cell holds a 2x4 dot grid composed into U+2800-block
// characters, which makes dot resolution roughly isotropic in a typical
// terminal font: two dots span a cell width and four dots span a cell
// height, and a cell is about twice as tall as it is wide.
//
// Drawing is last-writer-wins per cell for color, matching how the
// dashboard's chart components track series colors.
package canvas

import (
	"strings"
)

// DotsPerCellX and DotsPerCellY define the Braille sub-cell resolution.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// brailleBits maps a dot offset within a cell to its bit in the Braille
// block. Unicode dot numbering:
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
var brailleBits = [DotsPerCellX][DotsPerCellY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a fixed-size cell grid with Braille dot resolution and an
// overlay rune layer for labels. Dot coordinates run left-to-right and
// top-to-bottom; (0,0) is the top-left dot.
type Canvas struct {
	cellW, cellH int
	dots         [][]uint8  // [row][col] braille bitmask per cell
	colors       [][]string // [row][col] hex color of last dot/text write
	overlay      [][]rune   // [row][col] label runes; 0 = none
}

// New creates a canvas of the given cell dimensions. Zero or negative
// dimensions yield a canvas that renders to an empty string.
func New(cellW, cellH int) *Canvas {
	if cellW < 0 {
		cellW = 0
	}
	if cellH < 0 {
		cellH = 0
	}
	c := &Canvas{cellW: cellW, cellH: cellH}
	c.dots = make([][]uint8, cellH)
	c.colors = make([][]string, cellH)
	c.overlay = make([][]rune, cellH)
	for r := 0; r < cellH; r++ {
		c.dots[r] = make([]uint8, cellW)
		c.colors[r] = make([]string, cellW)
		c.overlay[r] = make([]rune, cellW)
	}
	return c
}

// CellSize returns the canvas dimensions in cells.
func (c *Canvas) CellSize() (w, h int) {
	return c.cellW, c.cellH
}

// DotSize returns the canvas dimensions in dots.
func (c *Canvas) DotSize() (w, h int) {
	return c.cellW * DotsPerCellX, c.cellH * DotsPerCellY
}

// SetDot turns on the dot at (dx, dy) with the given hex color. Dots
// outside the canvas are silently clipped.
func (c *Canvas) SetDot(dx, dy int, color string) {
	if dx < 0 || dy < 0 {
		return
	}
	col := dx / DotsPerCellX
	row := dy / DotsPerCellY
	if col >= c.cellW || row >= c.cellH {
		return
	}
	c.dots[row][col] |= brailleBits[dx%DotsPerCellX][dy%DotsPerCellY]
	c.colors[row][col] = color
}

// DotAt reports whether the dot at (dx, dy) is set.
func (c *Canvas) DotAt(dx, dy int) bool {
	if dx < 0 || dy < 0 {
		return false
	}
	col := dx / DotsPerCellX
	row := dy / DotsPerCellY
	if col >= c.cellW || row >= c.cellH {
		return false
	}
	return c.dots[row][col]&brailleBits[dx%DotsPerCellX][dy%DotsPerCellY] != 0
}

// DotCount returns the number of set dots, mostly for tests.
func (c *Canvas) DotCount() int {
	n := 0
	for r := 0; r < c.cellH; r++ {
		for col := 0; col < c.cellW; col++ {
			b := c.dots[r][col]
			for b != 0 {
				n += int(b & 1)
				b >>= 1
			}
		}
	}
	return n
}

// Line draws a straight dot line from (x0, y0) to (x1, y1) using integer
// Bresenham over the dot grid. Endpoints may lie far outside the canvas;
// only visible dots are written, so sheared axes can be over-extended to
// clip cleanly at the border.
func (c *Canvas) Line(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	// Guard against pathological spans: a line over-extended past the
	// visible area never needs more steps than the full dot perimeter of
	// its bounding box.
	for steps := dx - dy + 1; steps > 0; steps-- {
		c.SetDot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ThickLine draws a line doubled with a one-dot horizontal offset, used
// for the highlighted worldline.
func (c *Canvas) ThickLine(x0, y0, x1, y1 int, color string) {
	c.Line(x0, y0, x1, y1, color)
	c.Line(x0+1, y0, x1+1, y1, color)
}

// Marker draws a 2x2 dot block centered at (dx, dy), a visually solid
// point at Braille resolution.
func (c *Canvas) Marker(dx, dy int, color string) {
	c.SetDot(dx, dy, color)
	c.SetDot(dx+1, dy, color)
	c.SetDot(dx, dy+1, color)
	c.SetDot(dx+1, dy+1, color)
}

// FillTriangle fills the triangle (x0,y0)-(x1,y1)-(x2,y2) with a dot
// checkerboard, which reads as a translucent shade next to solid lines.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, color string) {
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	dotsW, dotsH := c.DotSize()
	if minY < 0 {
		minY = 0
	}
	if maxY >= dotsH {
		maxY = dotsH - 1
	}
	for y := minY; y <= maxY; y++ {
		lo, hi := dotsW, -1
		// Intersect the scanline with each edge.
		for _, e := range [3][4]int{{x0, y0, x1, y1}, {x1, y1, x2, y2}, {x2, y2, x0, y0}} {
			ex0, ey0, ex1, ey1 := e[0], e[1], e[2], e[3]
			if ey0 == ey1 {
				if ey0 == y {
					lo = min2(lo, min2(ex0, ex1))
					hi = max2(hi, max2(ex0, ex1))
				}
				continue
			}
			if (y < ey0 && y < ey1) || (y > ey0 && y > ey1) {
				continue
			}
			x := ex0 + (ex1-ex0)*(y-ey0)/(ey1-ey0)
			lo = min2(lo, x)
			hi = max2(hi, x)
		}
		if hi < lo {
			continue
		}
		if lo < 0 {
			lo = 0
		}
		if hi >= dotsW {
			hi = dotsW - 1
		}
		for x := lo; x <= hi; x++ {
			if (x+y)%2 == 0 {
				c.SetDot(x, y, color)
			}
		}
	}
}

// Text places a label starting at cell (cx, cy). Label runes replace the
// Braille content of the cells they cover and clip at the canvas edge.
func (c *Canvas) Text(cx, cy int, s string, color string) {
	if cy < 0 || cy >= c.cellH {
		return
	}
	for i, r := range []rune(s) {
		x := cx + i
		if x < 0 || x >= c.cellW {
			continue
		}
		c.overlay[cy][x] = r
		c.colors[cy][x] = color
	}
}

// Render composes the canvas into newline-separated lines with ANSI
// true-color sequences and no trailing whitespace, in the same output
// contract as the dashboard chart components.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.cellH)
	reset := "\x1b[0m"
	for r := 0; r < c.cellH; r++ {
		var sb strings.Builder
		for col := 0; col < c.cellW; col++ {
			ch := rune(0x2800 + int(c.dots[r][col]))
			if c.overlay[r][col] != 0 {
				ch = c.overlay[r][col]
			}
			if hex := c.colors[r][col]; hex != "" && ch != 0x2800 {
				sb.WriteString(ansiFg(hex))
				sb.WriteRune(ch)
				sb.WriteString(reset)
			} else {
				sb.WriteRune(ch)
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " \t"))
	}
	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3(a, b, c int) int { return min2(a, min2(b, c)) }
func max3(a, b, c int) int { return max2(a, max2(b, c)) }
