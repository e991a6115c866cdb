package widgets

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
)

func newDiagram() (*DiagramWidget, *frame.Model) {
	m := frame.New()
	return NewDiagram(m, zone.New(), 0), m
}

func TestDiagramViewShape(t *testing.T) {
	w, m := newDiagram()
	m.SetVelocity(0.6)

	out := w.View(41, 23)
	if out == "" {
		t.Fatal("empty view")
	}
	if got := strings.Count(out, "\n") + 1; got != 23 {
		t.Errorf("view has %d lines, want 23", got)
	}
	if !strings.Contains(out, "v = ") {
		t.Error("header readout missing")
	}
	if !strings.Contains(out, "┼") {
		t.Error("velocity slider track missing")
	}
}

func TestDiagramViewDegenerate(t *testing.T) {
	w, _ := newDiagram()
	if out := w.View(0, 0); out != "" {
		t.Errorf("0x0 view should be empty, got %q", out)
	}
	if out := w.View(30, 2); out != "" {
		t.Errorf("height 2 leaves no canvas row, got %q", out)
	}
}

func TestPlaceEventAtCenterIsOrigin(t *testing.T) {
	w, m := newDiagram()
	w.View(41, 23) // 41x21 canvas; center cell is (20, 10)

	cmd := w.placeEventAt(20, 10)
	if cmd == nil {
		t.Fatal("expected a command from an in-bounds click")
	}
	ev, ok := cmd().(app.EventsChangedEvent)
	if !ok || ev.Count != 1 {
		t.Errorf("expected EventsChangedEvent{1}, got %#v", cmd())
	}

	evs := m.Events()
	if len(evs) != 1 {
		t.Fatalf("%d events stored, want 1", len(evs))
	}
	if math.Abs(evs[0].X) > 1e-9 || math.Abs(evs[0].CT) > 1e-9 {
		t.Errorf("center click placed event at (%v, %v), want origin", evs[0].X, evs[0].CT)
	}
}

func TestPlaceEventOutsideCanvasIgnored(t *testing.T) {
	w, m := newDiagram()
	w.View(41, 23)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {41, 0}, {0, 21}} {
		if cmd := w.placeEventAt(c[0], c[1]); cmd != nil {
			t.Errorf("cell %v: expected nil command", c)
		}
	}
	if m.EventCount() != 0 {
		t.Errorf("%d events stored, want 0", m.EventCount())
	}
}

func TestSliderClickSetsVelocity(t *testing.T) {
	w, m := newDiagram()
	w.View(41, 23)

	cmd := w.dragSliderTo(40) // right end of the track
	if cmd == nil {
		t.Fatal("expected a command from a slider click")
	}
	ev, ok := cmd().(app.VelocityChangedEvent)
	if !ok {
		t.Fatalf("expected VelocityChangedEvent, got %#v", cmd())
	}
	if ev.V != 0.999 {
		t.Errorf("right end sets v = %v, want 0.999", ev.V)
	}
	if m.Velocity() != 0.999 {
		t.Errorf("model velocity = %v, want 0.999", m.Velocity())
	}

	if cmd := w.dragSliderTo(20); cmd == nil {
		t.Fatal("expected a command from the center click")
	} else if ev := cmd().(app.VelocityChangedEvent); ev.V != 0 {
		t.Errorf("center click sets v = %v, want 0", ev.V)
	}

	// Clicking the current value is silent.
	if cmd := w.dragSliderTo(20); cmd != nil {
		t.Error("re-clicking the current value should not re-broadcast")
	}
}

func TestDiagramClickBeforeFirstRenderIgnored(t *testing.T) {
	w, m := newDiagram()

	cmd := w.Update(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if cmd != nil {
		t.Error("click before first render should be a no-op")
	}
	if m.EventCount() != 0 {
		t.Errorf("%d events stored, want 0", m.EventCount())
	}
}

func TestDiagramUnitToggleReachesHeader(t *testing.T) {
	w, m := newDiagram()
	m.SetVelocity(0.5)

	w.Update(app.UnitModeChangedEvent{Mode: components.SI})
	if !strings.Contains(w.View(50, 10), "m/s") {
		t.Error("SI mode header should show m/s")
	}
}

func TestPaletteFromThemeCoversDiagramRoles(t *testing.T) {
	p := PaletteFromTheme(theme.Get("default"))
	if p.LightCone == "" || p.Event == "" || p.Worldline == "" || p.Simultaneity == "" {
		t.Errorf("default theme left diagram roles unmapped: %+v", p)
	}
}
