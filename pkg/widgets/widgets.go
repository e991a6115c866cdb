// Package widgets implements the dashboard panels: the spacetime diagram
// and the five companion demonstrations (time dilation, length
// contraction, velocity addition, twin paradox, Doppler). Each widget is
// a pure view over the shared frame model plus whatever local state its
// demonstration needs; global state changes arrive as broadcast events
// from the app controller.
package widgets

import (
	"github.com/jajohns1/relativity-visualizer/pkg/diagram"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

// Widget IDs, used for focus tracking and mouse zones.
const (
	IDDiagram           = "diagram"
	IDTimeDilation      = "dilation"
	IDLengthContraction = "contraction"
	IDVelocityAddition  = "addition"
	IDTwinParadox       = "twins"
	IDDoppler           = "doppler"
)

// PaletteFromTheme maps the active theme's diagram colors onto the
// rasterizer's role palette.
func PaletteFromTheme(t theme.Theme) diagram.Palette {
	return diagram.Palette{
		LightCone:       t.LightCone,
		ConeFill:        t.ConeFill,
		Axis:            t.Axis,
		Grid:            t.Grid,
		ShearAxis:       t.ShearAxis,
		Simultaneity:    t.Simultaneity,
		ConstPosition:   t.ConstPosition,
		Worldline:       t.Worldline,
		RestWorldline:   t.RestWorldline,
		Event:           t.EventColor,
		EventLine:       t.EventLine,
		LabelStationary: t.StationaryText,
		LabelMoving:     t.MovingText,
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
