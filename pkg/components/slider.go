package components

import (
	"math"
	"strings"
)

// Eighth-block characters give sub-cell precision on slider tracks and
// contracted rulers (8 levels per cell).
var eighthBlocks = [9]rune{
	' ',
	'▏', // ▏
	'▎', // ▎
	'▍', // ▍
	'▌', // ▌
	'▋', // ▋
	'▊', // ▊
	'▉', // ▉
	'█', // █
}

// SliderStyle configures the bipolar velocity slider. The track is
// center-zero: negative velocities fill leftward from the middle and
// positive velocities rightward, with the thumb at the current value.
type SliderStyle struct {
	Width      int     // track width in cells (odd values center cleanly)
	Min, Max   float64 // value range, typically -0.999..0.999
	FillColor  string  // hex color of the filled span
	TrackColor string  // hex color of the empty track
	ThumbColor string  // hex color of the thumb cell
	ShowBounds bool    // flank the track with min/max captions
}

// DefaultSliderStyle returns the velocity slider used by every panel.
func DefaultSliderStyle() SliderStyle {
	return SliderStyle{
		Width:      41,
		Min:        -0.999,
		Max:        0.999,
		FillColor:  "#64B5F6",
		TrackColor: "#333333",
		ThumbColor: "#FFD54F",
	}
}

// Slider renders a horizontal bipolar slider track.
type Slider struct {
	style SliderStyle
}

// NewSlider creates a Slider with the given style.
func NewSlider(style SliderStyle) *Slider {
	return &Slider{style: style}
}

// Clamp bounds a value to the slider's range.
func (s *Slider) Clamp(v float64) float64 {
	if v < s.style.Min {
		return s.style.Min
	}
	if v > s.style.Max {
		return s.style.Max
	}
	return v
}

// Render draws the track for the given value at the given width (0 uses
// the style width). The center cell carries a zero tick; the span between
// center and the value is filled; the thumb sits on the value cell.
func (s *Slider) Render(value float64, width int) string {
	if width <= 0 {
		width = s.style.Width
	}
	if width < 3 {
		width = 3
	}
	value = s.Clamp(value)

	span := s.style.Max - s.style.Min
	if span <= 0 {
		span = 1
	}
	frac := (value - s.style.Min) / span
	center := float64(width-1) / 2
	thumb := int(math.Round(frac * float64(width-1)))

	track := []rune(strings.Repeat("─", width)) // ─
	track[int(center)] = '┼'                    // ┼ zero tick

	lo, hi := int(center), thumb
	if hi < lo {
		lo, hi = hi, lo
	}

	var b strings.Builder
	for i, r := range track {
		switch {
		case i == thumb:
			b.WriteString(Colored(s.style.ThumbColor, string(eighthBlocks[8])))
		case i > lo && i < hi:
			b.WriteString(Colored(s.style.FillColor, "━")) // ━
		default:
			b.WriteString(Colored(s.style.TrackColor, string(r)))
		}
	}

	if s.style.ShowBounds {
		return Dim("-c ") + b.String() + Dim(" +c")
	}
	return b.String()
}

// ValueAt inverts the track geometry: given a cell offset into the track,
// it returns the slider value there, clamped to the range. Used for
// click-to-set on the slider zone.
func (s *Slider) ValueAt(cell, width int) float64 {
	if width <= 1 {
		return 0
	}
	frac := float64(cell) / float64(width-1)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return s.Clamp(s.style.Min + frac*(s.style.Max-s.style.Min))
}

// Ruler renders a contracted-length ruler: a bar of proper length
// properCells whose drawn extent is properCells/gamma, with eighth-block
// precision at the shrinking edge.
func Ruler(properCells int, gamma float64, color string) string {
	if properCells <= 0 {
		return ""
	}
	if gamma < 1 || math.IsNaN(gamma) {
		gamma = 1
	}
	units := float64(properCells*8) / gamma
	if math.IsInf(gamma, 1) {
		units = 0
	}
	full := int(units) / 8
	part := int(units) % 8

	var b strings.Builder
	b.WriteString(strings.Repeat(string(eighthBlocks[8]), full))
	if part > 0 {
		b.WriteRune(eighthBlocks[part])
	}
	bar := Colored(color, b.String())
	rest := properCells - full
	if part > 0 {
		rest--
	}
	if rest > 0 {
		bar += Dim(strings.Repeat("░", rest)) // ░ ghost of the proper length
	}
	return bar
}
